package commands

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/theapemachine/qsubset"
)

func solveCmd() *cobra.Command {
	var (
		numbers []int
		target  int
		shots   int
		output  string
		qasm    bool
		dump    bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search one instance and print the measurement report",
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := qsubset.NewSolver(numbers, target, qsubset.WithConfig(baseConfig()))
			if err != nil {
				return err
			}

			result, err := solver.Solve(shots, output)
			if result == nil {
				if errors.Is(err, qsubset.ErrNoSolution) {
					fmt.Fprintf(cmd.ErrOrStderr(), "No subset of %v sums to %d\n", numbers, target)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Report.String())
			if qasm {
				fmt.Fprintln(out)
				fmt.Fprint(out, result.Circuit.QASM())
			}
			if dump {
				fmt.Fprintln(out)
				spew.Fdump(out, result.State.Vector)
			}
			return err
		},
	}

	cmd.Flags().IntSliceVar(&numbers, "numbers", []int{1, 2, 3, 4, 5}, "comma separated non-negative integers")
	cmd.Flags().IntVar(&target, "target", 1, "target subset sum")
	cmd.Flags().IntVar(&shots, "shots", 4096, "number of measurements")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the report to this file")
	cmd.Flags().BoolVar(&qasm, "qasm", false, "print the circuit as OpenQASM 2.0")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the final amplitude vector")
	return cmd
}
