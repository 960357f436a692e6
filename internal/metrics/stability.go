package metrics

import "github.com/san-kum/lifesim/internal/life"

// Stability is the fraction of observed generations whose population equals
// the previous one.
type Stability struct {
	name      string
	last      int
	steady    int
	samples   int
	hasSample bool
}

func NewStability() *Stability {
	return &Stability{
		name: "stability",
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(snap life.Snapshot) {
	pop := snap.Population()
	if s.hasSample {
		s.samples++
		if pop == s.last {
			s.steady++
		}
	}
	s.last = pop
	s.hasSample = true
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.steady) / float64(s.samples)
}

func (s *Stability) Reset() {
	s.last = 0
	s.steady = 0
	s.samples = 0
	s.hasSample = false
}
