package qsubset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

// Phase tracks where a solve is in the Grover pipeline.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInitialized
	PhaseIterating
	PhaseMeasured
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitialized:
		return "initialized"
	case PhaseIterating:
		return "iterating"
	case PhaseMeasured:
		return "measured"
	case PhaseTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

/*
Solver runs Grover's search over the subsets of one Instance. The solution
set is enumerated once at construction. Solves on the same Solver are
serialised; GroverCalls keeps counting across them.
*/
type Solver struct {
	mu sync.Mutex

	instance  Instance
	solutions []BitPattern
	config    *Config
	sampler   *Sampler
	metrics   *Metrics

	groverCalls int
	phase       Phase
}

type solverOptions struct {
	config *Config
	seed   uint64
	seeded bool
	source rand.Source
}

// SolverOption configures a Solver.
type SolverOption func(*solverOptions)

// WithConfig replaces the default configuration.
func WithConfig(config *Config) SolverOption {
	return func(o *solverOptions) {
		o.config = config
	}
}

// WithSeed fixes the sampler seed, overriding Config.Seed.
func WithSeed(seed uint64) SolverOption {
	return func(o *solverOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSource hands the sampler a caller-owned random source.
func WithSource(src rand.Source) SolverOption {
	return func(o *solverOptions) {
		o.source = src
	}
}

// Result is everything one solve produces.
type Result struct {
	Circuit    *Circuit
	State      *QuantumState
	Counts     Tally
	Report     *Report
	Iterations int
	Solutions  []BitPattern
}

// SuccessProbability is the Born probability of measuring any solution.
func (r *Result) SuccessProbability() float64 {
	probs := r.State.Probabilities()
	total := 0.0
	for _, s := range r.Solutions {
		total += probs[s]
	}
	return total
}

// NewSolver validates the instance and enumerates its solutions.
func NewSolver(numbers []int, target int, opts ...SolverOption) (*Solver, error) {
	options := &solverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	config := options.config.withDefaults()
	if options.seeded {
		config.Seed = options.seed
	}

	instance := Instance{
		Numbers: append([]int(nil), numbers...),
		Target:  target,
	}
	if err := instance.Validate(config.MaxQubits); err != nil {
		return nil, err
	}

	sampler := NewSeededSampler(config.Seed)
	if options.source != nil {
		sampler = NewSampler(options.source)
	}

	solutions := EnumerateSolutions(instance.Numbers, instance.Target)

	errnie.Info(
		"NewSolver - numbers %v, target %d, N %d, M %d",
		instance.Numbers,
		instance.Target,
		instance.StateSpace(),
		len(solutions),
	)

	return &Solver{
		instance:  instance,
		solutions: solutions,
		config:    config,
		sampler:   sampler,
		metrics:   NewMetrics(),
	}, nil
}

func (s *Solver) Instance() Instance {
	return s.instance
}

// Solutions returns a copy of the solution set.
func (s *Solver) Solutions() []BitPattern {
	return append([]BitPattern(nil), s.solutions...)
}

func (s *Solver) NumSolutions() int {
	return len(s.solutions)
}

func (s *Solver) StateSpace() int {
	return s.instance.StateSpace()
}

/*
Iterations is floor(π/4 · √(N/M)). It is zero when there are no solutions,
and can also be zero when solutions are dense, in which case a solve just
samples the uniform superposition.
*/
func (s *Solver) Iterations() int {
	m := len(s.solutions)
	if m == 0 {
		return 0
	}
	return int(math.Pi / 4 * math.Sqrt(float64(s.StateSpace())/float64(m)))
}

func (s *Solver) GroverCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groverCalls
}

func (s *Solver) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Solver) Metrics() *Metrics {
	return s.metrics
}

/*
Solve prepares the uniform superposition, applies the oracle and diffusion
Iterations times, and measures shots outcomes. An empty outputFile skips
the report file. When the file cannot be written the complete Result is
returned together with an error wrapping ErrWriteReport.
*/
func (s *Solver) Solve(shots int, outputFile string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	s.setPhase(PhaseIdle)

	if shots <= 0 {
		s.metrics.recordSolve(startTime, 0, false)
		return nil, fmt.Errorf("%w: shots must be positive, got %d", ErrInvalidInstance, shots)
	}

	if len(s.solutions) == 0 {
		s.metrics.recordSolve(startTime, 0, false)
		return nil, fmt.Errorf(
			"%w: numbers %s, target %d",
			ErrNoSolution, formatList(s.instance.Numbers), s.instance.Target,
		)
	}

	width := s.instance.Width()
	iterations := s.Iterations()

	circuit := NewCircuit(width)
	state := NewQuantumState(width, s.config)

	for q := 0; q < width; q++ {
		circuit.H(q)
	}
	circuit.Barrier()
	if err := s.run(state, circuit.Gates); err != nil {
		s.metrics.recordSolve(startTime, 0, false)
		return nil, err
	}
	s.setPhase(PhaseInitialized)

	oracle := OracleGates(width, s.solutions)
	diffusion := DiffusionGates(width)

	s.setPhase(PhaseIterating)
	for k := 0; k < iterations; k++ {
		circuit.Append(oracle...)
		circuit.Append(diffusion...)

		if err := s.run(state, oracle); err != nil {
			s.metrics.recordSolve(startTime, 0, false)
			return nil, fmt.Errorf("iteration %d oracle: %w", k, err)
		}
		if err := s.run(state, diffusion); err != nil {
			s.metrics.recordSolve(startTime, 0, false)
			return nil, fmt.Errorf("iteration %d diffusion: %w", k, err)
		}

		s.groverCalls++
		s.metrics.recordIteration()
	}

	tally := s.sampler.Sample(state, shots)
	s.setPhase(PhaseMeasured)

	report := Aggregate(tally, s.instance, state, len(s.solutions), iterations, s.groverCalls)
	s.setPhase(PhaseTerminal)
	s.metrics.recordSolve(startTime, shots, true)

	errnie.Info(
		"Solve - iterations %d, shots %d, accuracy %.2f%%, grover calls %d",
		iterations,
		shots,
		report.Accuracy(),
		s.groverCalls,
	)

	result := &Result{
		Circuit:    circuit,
		State:      state,
		Counts:     tally,
		Report:     report,
		Iterations: iterations,
		Solutions:  s.Solutions(),
	}

	if outputFile != "" {
		if err := report.WriteFile(outputFile); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *Solver) run(state *QuantumState, gates []Gate) error {
	if err := applyGates(state, gates); err != nil {
		return err
	}
	s.metrics.recordGates(gates)
	return nil
}

func (s *Solver) setPhase(p Phase) {
	if s.phase != p {
		errnie.Info("Solver phase %s -> %s", s.phase, p)
	}
	s.phase = p
}
