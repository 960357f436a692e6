package metrics

import "github.com/san-kum/lifesim/internal/life"

// Population is the live cell count of the latest generation.
type Population struct {
	value float64
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(snap life.Snapshot) {
	p.value = float64(snap.Population())
}

func (p *Population) Value() float64 { return p.value }

func (p *Population) Reset() { p.value = 0 }

// Density is the live fraction of the latest generation.
type Density struct {
	value float64
}

func NewDensity() *Density { return &Density{} }

func (d *Density) Name() string { return "density" }

func (d *Density) Observe(snap life.Snapshot) {
	total := snap.Columns() * snap.Rows()
	if total == 0 {
		d.value = 0
		return
	}
	d.value = float64(snap.Population()) / float64(total)
}

func (d *Density) Value() float64 { return d.value }

func (d *Density) Reset() { d.value = 0 }

// Churn is the mean number of births plus deaths per generation.
type Churn struct {
	total   int
	samples int
}

func NewChurn() *Churn { return &Churn{} }

func (c *Churn) Name() string { return "churn" }

func (c *Churn) Observe(snap life.Snapshot) {
	c.samples++
	c.total += snap.Births() + snap.Deaths()
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.total = 0
	c.samples = 0
}
