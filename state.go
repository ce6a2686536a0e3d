package qsubset

/*
State is one measured basis state in a report, with the subset it stands
for and how often it was observed.
*/
type State struct {
	Pattern     BitPattern
	Count       int
	Subset      []int
	Sum         int
	Success     bool
	Probability float64    // Born probability in the final state
	Amplitude   complex128 // final amplitude before measurement
}
