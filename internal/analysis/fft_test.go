package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumPadding(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	if len(ps) != 64 {
		t.Errorf("expected 64 bins for 100 samples, got %d", len(ps))
	}
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period float64
	}{
		{"period 4", 4},
		{"period 8", 8},
		{"period 16", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := make([]float64, 256)
			for i := range series {
				series[i] = 100 + 10*math.Cos(2*math.Pi*float64(i)/tt.period)
			}
			if got := DominantPeriod(series); math.Abs(got-tt.period) > 1e-9 {
				t.Errorf("DominantPeriod = %v, want %v", got, tt.period)
			}
		})
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	series := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	if got := DominantPeriod(series); got != 0 {
		t.Errorf("flat series period = %v, want 0", got)
	}
	if got := DominantPeriod([]float64{1, 2}); got != 0 {
		t.Errorf("short series period = %v, want 0", got)
	}
}

func TestFFTPadsOddLength(t *testing.T) {
	out := FFT([]float64{1, 2, 3})
	if len(out) != 4 {
		t.Fatalf("expected 4 coefficients, got %d", len(out))
	}
	if real(out[0]) != 6 || imag(out[0]) != 0 {
		t.Errorf("DC term = %v, want 6", out[0])
	}
}
