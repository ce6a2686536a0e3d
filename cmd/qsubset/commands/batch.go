package commands

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/theapemachine/qsubset"
)

/*
batchFile is the YAML layout read by the batch command:

	shots: 4096
	seed: 7
	instances:
	  - numbers: [1, 2, 3]
	    target: 3
	    output: 1.txt
*/
type batchFile struct {
	qsubset.Config `yaml:",inline"`
	Instances      []batchInstance `yaml:"instances"`
}

type batchInstance struct {
	qsubset.Instance `yaml:",inline"`
	Shots            int    `yaml:"shots"`
	Output           string `yaml:"output"`
}

func loadBatch(path string) (*batchFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var batch batchFile
	if err := yaml.Unmarshal(b, &batch); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(batch.Instances) == 0 {
		return nil, fmt.Errorf("%s: no instances", path)
	}
	return &batch, nil
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Solve every instance in a YAML file on independent solvers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loadBatch(args[0])
			if err != nil {
				return err
			}

			config := baseConfig()
			if batch.Shots > 0 {
				config.Shots = batch.Shots
			}
			if batch.Seed != 0 {
				config.Seed = batch.Seed
			}
			if batch.MaxQubits > 0 {
				config.MaxQubits = batch.MaxQubits
			}

			reports := make([]string, len(batch.Instances))
			errs := make([]error, len(batch.Instances))

			var g errgroup.Group
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, inst := range batch.Instances {
				g.Go(func() error {
					reports[i], errs[i] = solveOne(config, inst)
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			for i, report := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if report != "" {
					fmt.Fprintln(out, report)
				}
				if errs[i] != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "instance %d: %v\n", i, errs[i])
				}
			}
			return errors.Join(errs...)
		},
	}
	return cmd
}

func solveOne(config *qsubset.Config, inst batchInstance) (string, error) {
	solver, err := qsubset.NewSolver(inst.Numbers, inst.Target, qsubset.WithConfig(config))
	if err != nil {
		return "", err
	}

	shots := inst.Shots
	if shots <= 0 {
		shots = config.Shots
	}

	result, err := solver.Solve(shots, inst.Output)
	if result == nil {
		return "", err
	}
	return result.Report.String(), err
}
