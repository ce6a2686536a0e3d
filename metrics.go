package qsubset

import (
	"sync"
	"time"
)

// Metrics accumulates counters across the solves of one Solver.
type Metrics struct {
	mu sync.RWMutex

	Solves            int
	FailedSolves      int
	GroverCalls       int
	ShotsDrawn        int
	GateApplications  map[GateKind]int
	LastSolveDuration time.Duration
	TotalSolveTime    time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{
		GateApplications: make(map[GateKind]int),
	}
}

func (m *Metrics) recordGates(gates []Gate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range gates {
		if g.Kind != GateBarrier {
			m.GateApplications[g.Kind]++
		}
	}
}

func (m *Metrics) recordIteration() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroverCalls++
}

func (m *Metrics) recordSolve(startTime time.Time, shots int, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastSolveDuration = duration
	m.TotalSolveTime += duration
	if !success {
		m.FailedSolves++
		return
	}
	m.Solves++
	m.ShotsDrawn += shots
}

// ExportMetrics returns a snapshot keyed by metric name.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	gates := make(map[string]int, len(m.GateApplications))
	for kind, count := range m.GateApplications {
		gates[kind.String()] = count
	}

	return map[string]interface{}{
		"solves":              m.Solves,
		"failed_solves":       m.FailedSolves,
		"grover_calls":        m.GroverCalls,
		"shots_drawn":         m.ShotsDrawn,
		"gate_applications":   gates,
		"last_solve_duration": m.LastSolveDuration.Milliseconds(),
		"total_solve_time":    m.TotalSolveTime.Milliseconds(),
	}
}
