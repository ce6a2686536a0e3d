// Package commands holds the cobra command tree of the qsubset CLI.
package commands
