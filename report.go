package qsubset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/theapemachine/errnie"
)

const (
	successMarker = "√"
	failureMarker = "X"
)

// Report is the aggregated outcome of one solve.
type Report struct {
	Instance    Instance
	N           int
	M           int
	Iterations  int
	GroverCalls int
	Shots       int
	Successes   int
	States      []State
}

/*
Aggregate resolves every observed pattern to its subset and sum, marks it
against the target, and orders the states by descending count. Equal counts
keep ascending pattern order. final may be nil, in which case probabilities
and amplitudes are left zero.
*/
func Aggregate(
	tally Tally,
	instance Instance,
	final *QuantumState,
	m, iterations, groverCalls int,
) *Report {
	report := &Report{
		Instance:    instance,
		N:           instance.StateSpace(),
		M:           m,
		Iterations:  iterations,
		GroverCalls: groverCalls,
		Shots:       tally.Total(),
		States:      make([]State, 0, len(tally)),
	}

	var probs []float64
	if final != nil {
		probs = final.Probabilities()
	}

	for _, pattern := range tally.Patterns() {
		sum := pattern.Sum(instance.Numbers)
		state := State{
			Pattern: pattern,
			Count:   tally[pattern],
			Subset:  pattern.Subset(instance.Numbers),
			Sum:     sum,
			Success: sum == instance.Target,
		}
		if final != nil {
			state.Probability = probs[pattern]
			state.Amplitude = final.Vector[pattern]
		}
		if state.Success {
			report.Successes += state.Count
		}
		report.States = append(report.States, state)
	}

	sort.SliceStable(report.States, func(i, j int) bool {
		return report.States[i].Count > report.States[j].Count
	})

	return report
}

// Accuracy is the share of successful shots, in percent.
func (r *Report) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Shots) * 100
}

func (r *Report) Lines() []string {
	width := r.Instance.Width()

	output := []string{
		"Test instance:",
		fmt.Sprintf("Numbers: %s", formatList(r.Instance.Numbers)),
		fmt.Sprintf("Target: %d", r.Instance.Target),
		fmt.Sprintf("N=%d, M=%d", r.N, r.M),
		"",
		"Results:",
	}

	for _, s := range r.States {
		marker := failureMarker
		if s.Success {
			marker = successMarker
		}
		output = append(output, fmt.Sprintf(
			"%s  %s: %4d times  ->  %s = %d",
			marker, s.Pattern.Format(width), s.Count, formatList(s.Subset), s.Sum,
		))
	}

	output = append(output,
		"",
		fmt.Sprintf("Accuracy: %.2f%% (%d/%d)", r.Accuracy(), r.Successes, r.Shots),
		fmt.Sprintf("Grover Call %d Times", r.GroverCalls),
	)
	return output
}

// String joins the report lines without a trailing newline.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

/*
WriteFile stores the report as UTF-8 text at path, replacing any existing
file. The text goes to a temp file in the same directory first and is
renamed into place, so a failed write never leaves a partial report.
*/
func (r *Report) WriteFile(path string) error {
	if err := writeFile(path, []byte(r.String()), 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteReport, path, err)
	}
	errnie.Info("report written to %s", path)
	return nil
}

func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Removing after a successful rename is a no-op.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
