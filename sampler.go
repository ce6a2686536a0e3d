package qsubset

import (
	"math/rand/v2"
	"sort"
	"time"
)

// Tally maps each observed pattern to how many shots landed on it.
type Tally map[BitPattern]int

// Total is the number of shots the tally holds.
func (t Tally) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Patterns returns the observed patterns in ascending order.
func (t Tally) Patterns() []BitPattern {
	patterns := make([]BitPattern, 0, len(t))
	for b := range t {
		patterns = append(patterns, b)
	}
	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i] < patterns[j]
	})
	return patterns
}

/*
Sampler draws measurement outcomes from a state's Born distribution. The
random source is injected so that a fixed seed reproduces a tally.
*/
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler uses PCG with seed, or the clock when seed is zero.
func NewSeededSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample measures qs shots times without collapsing it.
func (s *Sampler) Sample(qs *QuantumState, shots int) Tally {
	probs := qs.Probabilities()

	cdf := make([]float64, len(probs))
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		cdf[i] = cumulative
	}
	cdf[len(cdf)-1] = 1

	tally := make(Tally)
	for shot := 0; shot < shots; shot++ {
		r := s.rng.Float64()
		idx := sort.Search(len(cdf), func(i int) bool {
			return cdf[i] > r
		})
		tally[BitPattern(idx)]++
	}
	return tally
}
