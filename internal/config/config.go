package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/session"
)

const (
	DefaultWidth    = 700
	DefaultHeight   = 700
	DefaultCellSize = 10
	DefaultFPS      = 30
	DefaultTheme    = "light"
	DefaultView     = "block"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Themes and Views are the names the front-ends understand.
var (
	Themes = []string{"light", "dark", "retro", "ocean"}
	Views  = []string{"block", "braille"}
)

type Config struct {
	Grid    GridConfig `yaml:"grid"`
	Run     RunConfig  `yaml:"run"`
	View    ViewConfig `yaml:"view"`
	Pattern []string   `yaml:"pattern,omitempty"`
}

type GridConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	CellSize  int    `yaml:"cell_size"`
	ColorMode bool   `yaml:"color_mode"`
	Palette   string `yaml:"palette"`
	Workers   int    `yaml:"workers"`
}

type RunConfig struct {
	Iterations int   `yaml:"iterations"`
	Seed       int64 `yaml:"seed"`
	FPS        int   `yaml:"fps"`
}

type ViewConfig struct {
	Theme string `yaml:"theme"`
	Mode  string `yaml:"mode"`
	Timer bool   `yaml:"timer"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			CellSize: DefaultCellSize,
			Palette:  session.DefaultPalette,
			Workers:  1,
		},
		Run: RunConfig{
			FPS: DefaultFPS,
		},
		View: ViewConfig{
			Theme: DefaultTheme,
			Mode:  DefaultView,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, so keys missing from the file keep
// the base values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	g := c.Grid
	if len(c.Pattern) == 0 {
		if g.Width <= 0 || g.Height <= 0 || g.CellSize <= 0 || g.Width < g.CellSize || g.Height < g.CellSize {
			return &life.ConfigError{Width: g.Width, Height: g.Height, CellSize: g.CellSize, Wrapped: life.ErrInvalidDimensions}
		}
	} else if g.CellSize <= 0 {
		return &life.ConfigError{Width: g.Width, Height: g.Height, CellSize: g.CellSize, Wrapped: life.ErrInvalidDimensions}
	}
	if g.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, g.Workers)
	}
	if _, err := life.NewPalette(g.Palette, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Run.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d", ErrInvalidConfig, c.Run.Iterations)
	}
	if c.Run.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.Run.FPS)
	}
	if !contains(Themes, c.View.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.View.Theme)
	}
	if !contains(Views, c.View.Mode) {
		return fmt.Errorf("%w: unknown view %q", ErrInvalidConfig, c.View.Mode)
	}
	return nil
}

func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Width:     c.Grid.Width,
		Height:    c.Grid.Height,
		CellSize:  c.Grid.CellSize,
		ColorMode: c.Grid.ColorMode,
		Palette:   c.Grid.Palette,
		Target:    c.Run.Iterations,
		Seed:      c.Run.Seed,
		Workers:   c.Grid.Workers,
		Pattern:   append([]string(nil), c.Pattern...),
	}
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Clone returns a deep copy so presets can be handed out safely.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Pattern = append([]string(nil), c.Pattern...)
	return &cp
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
