package metrics

import "github.com/san-kum/lifesim/internal/life"

// DefaultHistory is the number of population samples a Recorder keeps.
const DefaultHistory = 600

// Recorder feeds every generation of a session into a metric set and keeps a
// bounded population history for plotting.
type Recorder struct {
	metrics  []Metric
	history  []float64
	capacity int
}

func NewRecorder(capacity int, metrics ...Metric) *Recorder {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	if len(metrics) == 0 {
		metrics = Default()
	}
	return &Recorder{
		metrics:  metrics,
		history:  make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// OnGeneration satisfies session.Observer.
func (r *Recorder) OnGeneration(snap life.Snapshot, iteration int) {
	r.Observe(snap)
}

func (r *Recorder) Observe(snap life.Snapshot) {
	for _, m := range r.metrics {
		m.Observe(snap)
	}
	r.history = append(r.history, float64(snap.Population()))
	if len(r.history) > r.capacity {
		r.history = r.history[1:]
	}
}

// History returns the recorded population series, oldest first.
func (r *Recorder) History() []float64 {
	out := make([]float64, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Recorder) Metrics() []Metric { return r.metrics }

// Values maps metric names to their current value.
func (r *Recorder) Values() map[string]float64 {
	values := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		values[m.Name()] = m.Value()
	}
	return values
}

func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
	}
	r.history = r.history[:0]
}
