package analysis

import (
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

func run(t *testing.T, det *CycleDetector, g *life.Grid, steps int) {
	t.Helper()
	det.Observe(g.Snapshot())
	for i := 0; i < steps; i++ {
		g.Advance()
		det.Observe(g.Snapshot())
	}
}

func pattern(t *testing.T, lines ...string) *life.Grid {
	t.Helper()
	g, err := life.FromPattern(lines, 10, false)
	if err != nil {
		t.Fatalf("pattern failed: %v", err)
	}
	return g
}

func TestCycleDetector(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		kind   Kind
		period int
	}{
		{"block", []string{"....", ".OO.", ".OO.", "...."}, StillLife, 1},
		{"blinker", []string{".....", ".....", ".OOO.", ".....", "....."}, Oscillating, 2},
		{"lone cell", []string{"...", ".O.", "..."}, Extinct, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := NewCycleDetector(16)
			run(t, det, pattern(t, tt.lines...), 6)

			got := det.Result()
			if got.Kind != tt.kind || got.Period != tt.period {
				t.Errorf("got %v, want %v period %d", got, tt.kind, tt.period)
			}
			if !got.Settled() {
				t.Error("expected settled result")
			}
		})
	}
}

func TestCycleDetectorWindow(t *testing.T) {
	det := NewCycleDetector(1)
	run(t, det, pattern(t, ".....", ".....", ".OOO.", ".....", "....."), 6)
	if det.Result().Settled() {
		t.Errorf("period-2 cycle detected with a window of 1: %v", det.Result())
	}

	det.Reset()
	if det.Result().Kind != Evolving {
		t.Error("reset did not clear the verdict")
	}
}

func TestHash(t *testing.T) {
	a := pattern(t, "O..", "...")
	b := pattern(t, "O..", "...")
	c := pattern(t, ".O.", "...")
	if Hash(a.Snapshot()) != Hash(b.Snapshot()) {
		t.Error("equal boards hashed differently")
	}
	if Hash(a.Snapshot()) == Hash(c.Snapshot()) {
		t.Error("different boards hashed equally")
	}
}

func TestCycleString(t *testing.T) {
	c := Cycle{Kind: Oscillating, Period: 2, Since: 3}
	if got := c.String(); got != "oscillating (period 2 since generation 3)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Cycle{}).String(); got != "evolving" {
		t.Errorf("zero String() = %q", got)
	}
}
