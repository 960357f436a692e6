package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

// DefaultPalette is used in colour mode when Options.Palette is empty.
const DefaultPalette = "random"

// Options configures a session. Width and Height are the drawing extent and
// CellSize the side of one cell, in the same units. Target 0 runs unbounded.
type Options struct {
	Width     int
	Height    int
	CellSize  int
	ColorMode bool
	Palette   string
	Target    int
	Seed      int64
	// Seeded makes Seed authoritative even when it is zero. Otherwise a zero
	// Seed draws one from the clock.
	Seeded  bool
	Workers int
	// Pattern, when set, replaces random seeding. It is centred on the
	// Width × Height board.
	Pattern []string
}

type Session struct {
	opts      Options
	state     State
	grid      *life.Grid
	iteration int
	target    int
	colorMode bool
	unbounded bool
	seeds     *rand.Rand
	observers []Observer
}

// New builds the first grid and returns an idle session. Invalid dimensions,
// an unknown palette or a negative target are configuration errors.
func New(opts Options) (*Session, error) {
	if opts.Target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, opts.Target)
	}
	if opts.Palette == "" {
		opts.Palette = DefaultPalette
	}
	if _, err := life.NewPalette(opts.Palette, 0); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 && !opts.Seeded {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		opts:      opts,
		state:     Idle,
		target:    opts.Target,
		colorMode: opts.ColorMode,
		seeds:     rand.New(rand.NewSource(seed)),
		observers: make([]Observer, 0),
	}

	g, err := s.build()
	if err != nil {
		return nil, err
	}
	s.grid = g
	return s, nil
}

func (s *Session) build() (*life.Grid, error) {
	seed := s.seeds.Int63()
	opts := []life.Option{life.WithSeed(seed), life.WithWorkers(s.opts.Workers)}
	if s.colorMode {
		p, err := life.NewPalette(s.opts.Palette, seed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, life.WithPalette(p))
	}

	if len(s.opts.Pattern) > 0 {
		if s.opts.CellSize > 0 {
			opts = append(opts, life.WithBounds(s.opts.Width/s.opts.CellSize, s.opts.Height/s.opts.CellSize))
		}
		return life.FromPattern(s.opts.Pattern, s.opts.CellSize, s.colorMode, opts...)
	}
	return life.New(s.opts.Width, s.opts.Height, s.opts.CellSize, s.colorMode, opts...)
}

func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Session) State() State            { return s.state }
func (s *Session) Iteration() int          { return s.iteration }
func (s *Session) Target() int             { return s.target }
func (s *Session) ColorMode() bool         { return s.colorMode }
func (s *Session) Unbounded() bool         { return s.target == 0 }
func (s *Session) Grid() *life.Grid        { return s.grid }
func (s *Session) Snapshot() life.Snapshot { return s.grid.Snapshot() }

func (s *Session) reject(cmd Command, err error) error {
	return &Rejection{Command: cmd.commandName(), State: s.state, Err: err}
}

// Dispatch applies a command message.
func (s *Session) Dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case StartCmd:
		return s.Start()
	case StopCmd:
		return s.Stop()
	case ResetCmd:
		return s.Reset()
	case TargetCmd:
		return s.SetIterationTarget(c.N)
	case ColorModeCmd:
		return s.SetColorMode(c.On)
	}
	return fmt.Errorf("session: unknown command %T", cmd)
}

// Start begins stepping. With a zero target the session runs until stopped;
// otherwise it performs exactly Target generations and stops by itself.
func (s *Session) Start() error {
	if s.state == Running {
		return s.reject(StartCmd{}, ErrAlreadyRunning)
	}

	s.unbounded = s.target == 0
	if !s.unbounded || s.iteration == 0 {
		s.iteration = 1
	}
	s.state = Running
	return nil
}

// Stop cancels any further steps. A step already in progress completes.
func (s *Session) Stop() error {
	if s.state != Running {
		return s.reject(StopCmd{}, ErrNotRunning)
	}
	s.state = Stopped
	return nil
}

// Reset replaces the grid with a freshly seeded one of the same size and
// returns the session to Idle.
func (s *Session) Reset() error {
	if s.state == Running {
		return s.reject(ResetCmd{}, ErrResetWhileRunning)
	}

	g, err := s.build()
	if err != nil {
		return err
	}
	s.grid = g
	s.iteration = 0
	s.state = Idle
	return nil
}

// SetIterationTarget sets the generation count for the next Start.
func (s *Session) SetIterationTarget(n int) error {
	if s.state == Running {
		return s.reject(TargetCmd{N: n}, ErrBusy)
	}
	if n < 0 {
		return s.reject(TargetCmd{N: n}, ErrInvalidTarget)
	}
	s.target = n
	return nil
}

// SetColorMode selects colour seeding for grids built by later resets. The
// current grid keeps its colours.
func (s *Session) SetColorMode(on bool) error {
	if s.state == Running {
		return s.reject(ColorModeCmd{On: on}, ErrBusy)
	}
	s.colorMode = on
	return nil
}

// Step performs one scheduler tick and reports whether a generation was
// produced.
func (s *Session) Step() bool {
	if s.state != Running {
		return false
	}

	s.grid.Advance()
	snap := s.grid.Snapshot()
	iteration := s.iteration
	s.iteration++

	for _, obs := range s.observers {
		obs.OnGeneration(snap, iteration)
	}

	if !s.unbounded && s.iteration > s.target {
		s.state = Stopped
	}
	return true
}

// Run starts the session if needed and steps it until it stops by itself or
// ctx is cancelled. A positive interval paces the steps. An unbounded session
// only returns on cancellation.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	if s.state != Running {
		if err := s.Start(); err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for s.state == Running {
		select {
		case <-ctx.Done():
			_ = s.Stop()
			return ctx.Err()
		default:
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				_ = s.Stop()
				return ctx.Err()
			case <-tick:
			}
		}

		s.Step()
	}

	return nil
}
