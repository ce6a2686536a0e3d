package qsubset

import "runtime"

// Config holds the tunables shared by every solve on a Solver.
type Config struct {
	// Shots is the default number of measurements when a caller passes 0
	// to the CLI layer.
	Shots int `yaml:"shots"`
	// Seed drives the sampler. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
	// MaxQubits bounds the register width, and with it the 2^n vector.
	MaxQubits int `yaml:"max_qubits"`
	// Workers is the goroutine limit for the gate kernels.
	Workers int `yaml:"workers"`
	// ParallelThreshold is the smallest state vector that gets split
	// across workers.
	ParallelThreshold int `yaml:"parallel_threshold"`
}

func NewConfig() *Config {
	return &Config{
		Shots:             1024,
		MaxQubits:         20,
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 1 << 14,
	}
}

// withDefaults fills any zero field from NewConfig.
func (c *Config) withDefaults() *Config {
	def := NewConfig()
	if c == nil {
		return def
	}

	out := *c
	if out.Shots <= 0 {
		out.Shots = def.Shots
	}
	if out.MaxQubits <= 0 {
		out.MaxQubits = def.MaxQubits
	}
	if out.Workers <= 0 {
		out.Workers = def.Workers
	}
	if out.ParallelThreshold <= 0 {
		out.ParallelThreshold = def.ParallelThreshold
	}
	return &out
}
