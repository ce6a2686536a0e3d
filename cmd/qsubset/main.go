package main

import (
	"os"

	"github.com/theapemachine/qsubset/cmd/qsubset/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
