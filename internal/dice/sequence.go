package dice

// Sequence is a scripted Source that replays fixed rolls in order.
// Float64 and Intn draw from separate queues; an exhausted queue returns
// Fallback (for Float64) or 0 (for Intn).
type Sequence struct {
	Floats   []float64
	Ints     []int
	Fallback float64
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.Fallback
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn returns the next scripted int, reduced modulo n.
func (s *Sequence) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}

// Remaining reports how many scripted rolls have not been consumed.
func (s *Sequence) Remaining() int {
	return len(s.Floats) + len(s.Ints)
}

var _ Source = (*Sequence)(nil)
