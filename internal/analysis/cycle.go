package analysis

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/san-kum/lifesim/internal/life"
)

// Kind classifies the long-run behaviour seen so far.
type Kind int

const (
	Evolving Kind = iota
	Extinct
	StillLife
	Oscillating
)

func (k Kind) String() string {
	switch k {
	case Extinct:
		return "extinct"
	case StillLife:
		return "still life"
	case Oscillating:
		return "oscillating"
	}
	return "evolving"
}

// Cycle is the detector verdict. Since is the first generation of the
// repeating sequence.
type Cycle struct {
	Kind   Kind
	Period int
	Since  int
}

func (c Cycle) String() string {
	switch c.Kind {
	case Oscillating:
		return fmt.Sprintf("oscillating (period %d since generation %d)", c.Period, c.Since)
	case StillLife, Extinct:
		return fmt.Sprintf("%s since generation %d", c.Kind, c.Since)
	}
	return c.Kind.String()
}

// Settled reports whether the run has entered a cycle.
func (c Cycle) Settled() bool { return c.Kind != Evolving }

type entry struct {
	hash uint64
	snap life.Snapshot
}

// CycleDetector remembers the last window generations and reports the first
// exact repeat. Snapshots are immutable, so keeping them is safe.
type CycleDetector struct {
	window int
	recent []entry
	result Cycle
}

func NewCycleDetector(window int) *CycleDetector {
	if window < 1 {
		window = 1
	}
	return &CycleDetector{window: window, recent: make([]entry, 0, window)}
}

// OnGeneration lets the detector observe a session directly.
func (d *CycleDetector) OnGeneration(snap life.Snapshot, iteration int) {
	d.Observe(snap)
}

// Observe records a generation. Once a cycle is found further generations are
// ignored.
func (d *CycleDetector) Observe(snap life.Snapshot) {
	if d.result.Settled() {
		return
	}

	if snap.Population() == 0 {
		d.result = Cycle{Kind: Extinct, Period: 1, Since: snap.Generation()}
		return
	}

	h := Hash(snap)
	for i := len(d.recent) - 1; i >= 0; i-- {
		e := d.recent[i]
		if e.hash != h || !e.snap.Equal(snap) {
			continue
		}
		period := snap.Generation() - e.snap.Generation()
		kind := Oscillating
		if period == 1 {
			kind = StillLife
		}
		d.result = Cycle{Kind: kind, Period: period, Since: e.snap.Generation()}
		return
	}

	if len(d.recent) == d.window {
		copy(d.recent, d.recent[1:])
		d.recent = d.recent[:len(d.recent)-1]
	}
	d.recent = append(d.recent, entry{hash: h, snap: snap})
}

func (d *CycleDetector) Result() Cycle { return d.result }

func (d *CycleDetector) Reset() {
	d.recent = d.recent[:0]
	d.result = Cycle{}
}

// Hash fingerprints the live cells of a snapshot with FNV-1a.
func Hash(snap life.Snapshot) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(snap.Columns()))
	binary.LittleEndian.PutUint32(buf[4:], uint32(snap.Rows()))
	h.Write(buf[:])

	var bits byte
	n := 0
	for col := 0; col < snap.Columns(); col++ {
		for row := 0; row < snap.Rows(); row++ {
			bits <<= 1
			if snap.Alive(col, row) {
				bits |= 1
			}
			n++
			if n == 8 {
				h.Write([]byte{bits})
				bits, n = 0, 0
			}
		}
	}
	if n > 0 {
		h.Write([]byte{bits})
	}
	return h.Sum64()
}
