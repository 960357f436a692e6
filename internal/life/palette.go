package life

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/aquilax/go-perlin"
)

// Palette assigns the seed colour of a cell when colour mode is on. It is
// consulted once per cell at construction time only.
type Palette interface {
	Color(col, row int) Color
}

// PaletteFactory builds a palette from a seed.
type PaletteFactory func(seed int64) Palette

var palettes = map[string]PaletteFactory{
	"random": func(seed int64) Palette { return NewRandomPalette(seed) },
	"noise":  func(seed int64) Palette { return NewNoisePalette(seed) },
}

// RegisterPalette adds a palette factory under the provided name.
func RegisterPalette(name string, f PaletteFactory) {
	if name == "" || f == nil {
		return
	}
	palettes[name] = f
}

// NewPalette looks up a registered palette by name.
func NewPalette(name string, seed int64) (Palette, error) {
	f, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return f(seed), nil
}

// PaletteNames lists the registered palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomPalette draws an independent uniform RGB colour for every cell.
type RandomPalette struct {
	rng *rand.Rand
}

func NewRandomPalette(seed int64) *RandomPalette {
	return &RandomPalette{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPalette) Color(col, row int) Color {
	v := p.rng.Uint32()
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// NoisePalette maps 2-D Perlin noise onto hue so nearby cells share related
// colours.
type NoisePalette struct {
	noise *perlin.Perlin
	scale float64
}

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.08
)

func NewNoisePalette(seed int64) *NoisePalette {
	return &NoisePalette{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed),
		scale: noiseScale,
	}
}

func (p *NoisePalette) Color(col, row int) Color {
	n := p.noise.Noise2D(float64(col)*p.scale, float64(row)*p.scale)
	// Noise2D stays roughly inside [-1, 1]; stretch it so the hue wheel is
	// actually covered on typical boards.
	hue := math.Mod((n+1)*270, 360)
	if hue < 0 {
		hue += 360
	}
	return hsv(hue, 0.75, 0.9)
}

func hsv(h, s, v float64) Color {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}
