package viz

import (
	"testing"
	"unicode/utf8"

	"github.com/san-kum/lifesim/internal/config"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{2, "████"},
		{-1, "░░░░"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.fraction, 4); got != tt.want {
			t.Errorf("ProgressBar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := Sparkline([]float64{0, 1, 2, 3, 4}, 3); got != "▁▄█" {
		t.Errorf("sparkline = %q, want last three values", got)
	}
	if got := Sparkline([]float64{5, 5}, 10); utf8.RuneCountInString(got) != 2 {
		t.Errorf("flat sparkline = %q", got)
	}
}

func TestThemesCoverConfig(t *testing.T) {
	names := ThemeNames()
	for _, want := range config.Themes {
		found := false
		for _, n := range names {
			found = found || n == want
		}
		if !found {
			t.Errorf("theme %q accepted by config but missing", want)
		}
	}
	if GetTheme("nope").Name != "light" {
		t.Error("unknown theme should fall back to light")
	}
}
