package words

import (
	"math/rand/v2"
	"time"
)

// Source supplies random indexes for word selection. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed is replaced with the current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedSource replays a fixed sequence of values, wrapping around at the end.
// Each value is reduced modulo n.
type FixedSource struct {
	Values []int
	pos    int
}

func (s *FixedSource) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
