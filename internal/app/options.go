package app

import "github.com/san-kum/lifesim/internal/render"

const DefaultTPS = 30

// Options configures the window front-end.
type Options struct {
	TPS     int
	Title   string
	Palette render.Palette
}

func (o Options) withDefaults() Options {
	if o.TPS <= 0 {
		o.TPS = DefaultTPS
	}
	if o.Title == "" {
		o.Title = "lifesim"
	}
	if o.Palette == (render.Palette{}) {
		o.Palette = render.DefaultPalette
	}
	return o
}
