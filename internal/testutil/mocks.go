package testutil

// ScriptedSource is a deterministic random source for shuffle tests. Intn
// returns the scripted values in order (reduced modulo n) and records every
// bound it was asked for.
type ScriptedSource struct {
	Values []int
	Calls  []int

	next int
}

// Intn returns the next scripted value in [0, n)
func (s *ScriptedSource) Intn(n int) int {
	s.Calls = append(s.Calls, n)
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// LastSource always picks the largest allowed index, which leaves a
// Fisher-Yates shuffle as the identity permutation
type LastSource struct{}

// Intn returns n-1
func (LastSource) Intn(n int) int {
	return n - 1
}
