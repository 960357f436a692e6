package config

import "sort"

func withGrid(fn func(c *Config)) *Config {
	c := DefaultConfig()
	fn(c)
	return c
}

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"colorful": withGrid(func(c *Config) {
		c.Grid.ColorMode = true
		c.View.Theme = "dark"
	}),
	"noise": withGrid(func(c *Config) {
		c.Grid.ColorMode = true
		c.Grid.Palette = "noise"
		c.View.Theme = "dark"
	}),
	"dense": withGrid(func(c *Config) {
		c.Grid.Width, c.Grid.Height, c.Grid.CellSize = 1600, 1600, 4
		c.Grid.Workers = 4
		c.View.Mode = "braille"
	}),
	"blinker": withGrid(func(c *Config) {
		c.Grid.Width, c.Grid.Height = 50, 50
		c.Pattern = []string{
			"OOO",
		}
	}),
	"glider": withGrid(func(c *Config) {
		c.Grid.Width, c.Grid.Height = 200, 200
		c.Pattern = []string{
			".O.",
			"..O",
			"OOO",
		}
	}),
	"pulsar": withGrid(func(c *Config) {
		c.Grid.Width, c.Grid.Height = 170, 170
		c.View.Theme = "ocean"
		c.Pattern = []string{
			"..OOO...OOO..",
			".............",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			"..OOO...OOO..",
			".............",
			"..OOO...OOO..",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			".............",
			"..OOO...OOO..",
		}
	}),
	"gosper": withGrid(func(c *Config) {
		c.Grid.Width, c.Grid.Height = 400, 250
		c.View.Theme = "retro"
		c.Pattern = []string{
			"!Name: Gosper glider gun",
			"........................O...........",
			"......................O.O...........",
			"............OO......OO............OO",
			"...........O...O....OO............OO",
			"OO........O.....O...OO..............",
			"OO........O...O.OO....O.O...........",
			"..........O.....O.......O...........",
			"...........O...O....................",
			"............OO......................",
		}
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
