package commands

import (
	"github.com/spf13/cobra"

	"github.com/theapemachine/qsubset"
)

var (
	seed      uint64
	maxQubits int
	workers   int
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "qsubset",
		Short:        "Subset-sum search with a simulated Grover circuit",
		SilenceUsage: true,
	}

	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "sampler seed (0 seeds from the clock)")
	root.PersistentFlags().IntVar(&maxQubits, "max-qubits", 0, "largest register to simulate (default 20)")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "goroutines per gate kernel (default GOMAXPROCS)")

	root.AddCommand(solveCmd(), batchCmd())
	return root
}

// baseConfig layers the persistent flags over the library defaults.
func baseConfig() *qsubset.Config {
	config := qsubset.NewConfig()
	config.Seed = seed
	if maxQubits > 0 {
		config.MaxQubits = maxQubits
	}
	if workers > 0 {
		config.Workers = workers
	}
	return config
}
