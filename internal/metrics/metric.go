package metrics

import "github.com/san-kum/lifesim/internal/life"

// Metric accumulates a scalar over the generations of a run.
type Metric interface {
	Name() string
	Observe(snap life.Snapshot)
	Value() float64
	Reset()
}

// Default returns the metric set reported by the CLI and the TUI.
func Default() []Metric {
	return []Metric{
		NewPopulation(),
		NewDensity(),
		NewChurn(),
		NewStability(),
	}
}
