package life

import (
	"errors"
	"testing"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{255, 255, 255}, "#ffffff"},
		{Color{0x12, 0xab, 0x0f}, "#12ab0f"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestNewPalette(t *testing.T) {
	for _, name := range PaletteNames() {
		p, err := NewPalette(name, 1)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		_ = p.Color(0, 0)
	}

	if _, err := NewPalette("sepia", 1); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestPaletteNamesSorted(t *testing.T) {
	names := PaletteNames()
	if len(names) < 2 {
		t.Fatalf("expected built-in palettes, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

type solidPalette struct{ c Color }

func (p solidPalette) Color(col, row int) Color { return p.c }

func TestRegisterPalette(t *testing.T) {
	RegisterPalette("solid-test", func(seed int64) Palette { return solidPalette{Color{1, 2, 3}} })
	defer delete(palettes, "solid-test")

	p, err := NewPalette("solid-test", 0)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	g, _ := New(50, 50, 10, true, WithSeed(1), WithPalette(p))
	if c := g.Snapshot().At(2, 2).Color; c != (Color{1, 2, 3}) {
		t.Errorf("palette not used: %v", c)
	}
}

func TestNoisePaletteDeterministic(t *testing.T) {
	a, b := NewNoisePalette(8), NewNoisePalette(8)
	for _, pos := range [][2]int{{0, 0}, {10, 10}, {37, 5}} {
		if a.Color(pos[0], pos[1]) != b.Color(pos[0], pos[1]) {
			t.Errorf("colour at %v differs for the same seed", pos)
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h    float64
		want Color
	}{
		{0, Color{255, 0, 0}},
		{120, Color{0, 255, 0}},
		{240, Color{0, 0, 255}},
	}
	for _, tt := range tests {
		if got := hsv(tt.h, 1, 1); got != tt.want {
			t.Errorf("hsv(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}
