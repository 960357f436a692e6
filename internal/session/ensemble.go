package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/lifesim/internal/analysis"
)

// cycleWindow bounds how many generations each ensemble run remembers.
const cycleWindow = 64

// Summary describes one finished ensemble run.
type Summary struct {
	Seed            int64
	Generations     int
	FinalPopulation int
	Cycle           analysis.Cycle
}

// Ensemble runs independent bounded sessions that differ only by seed.
type Ensemble struct {
	opts      Options
	numRuns   int
	seedStart int64
}

func NewEnsemble(opts Options, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{opts: opts, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]Summary, error) {
	if e.opts.Target <= 0 {
		return nil, fmt.Errorf("%w: ensemble runs need a positive target, got %d", ErrInvalidTarget, e.opts.Target)
	}
	if e.numRuns <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRuns, e.numRuns)
	}

	results := make([]Summary, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			opts := e.opts
			opts.Seed = e.seedStart + int64(idx)
			opts.Seeded = true

			s, err := New(opts)
			if err != nil {
				errs[idx] = err
				return
			}
			det := analysis.NewCycleDetector(cycleWindow)
			det.Observe(s.Snapshot())
			s.AddObserver(det)

			if err := s.Run(ctx, 0); err != nil {
				errs[idx] = err
				return
			}

			snap := s.Snapshot()
			results[idx] = Summary{
				Seed:            opts.Seed,
				Generations:     snap.Generation(),
				FinalPopulation: snap.Population(),
				Cycle:           det.Result(),
			}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
