package session_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/session"
)

func newSession(target int) *session.Session {
	s, err := session.New(session.Options{
		Width: 200, Height: 150, CellSize: 10, Target: target, Seed: 42,
	})
	Expect(err).NotTo(HaveOccurred())
	return s
}

// countingObserver records every iteration it is told about.
type countingObserver struct {
	iterations []int
}

func (c *countingObserver) OnGeneration(_ life.Snapshot, iteration int) {
	c.iterations = append(c.iterations, iteration)
}

var _ = Describe("Session", func() {
	Describe("construction", func() {
		It("starts idle with the configured grid", func() {
			s := newSession(5)
			Expect(s.State()).To(Equal(session.Idle))
			Expect(s.Iteration()).To(BeZero())
			Expect(s.Grid().Columns()).To(Equal(20))
			Expect(s.Grid().Rows()).To(Equal(15))
		})

		DescribeTable("rejects invalid configuration",
			func(opts session.Options, target error) {
				s, err := session.New(opts)
				Expect(s).To(BeNil())
				Expect(err).To(MatchError(target))
			},
			Entry("zero cell size", session.Options{Width: 100, Height: 100}, life.ErrInvalidDimensions),
			Entry("negative extent", session.Options{Width: -1, Height: 100, CellSize: 10}, life.ErrInvalidDimensions),
			Entry("negative target", session.Options{Width: 100, Height: 100, CellSize: 10, Target: -1}, session.ErrInvalidTarget),
			Entry("unknown palette", session.Options{Width: 100, Height: 100, CellSize: 10, Palette: "sepia"}, life.ErrUnknownPalette),
		)

		It("seeds from a pattern when one is given", func() {
			s, err := session.New(session.Options{
				Width: 50, Height: 50, CellSize: 10, Seed: 1,
				Pattern: []string{"OOO"},
			})
			Expect(err).NotTo(HaveOccurred())
			snap := s.Snapshot()
			Expect(snap.Columns()).To(Equal(5))
			Expect(snap.Population()).To(Equal(3))
			Expect(snap.Alive(1, 2) && snap.Alive(2, 2) && snap.Alive(3, 2)).To(BeTrue())
		})
	})

	Describe("bounded mode", func() {
		It("performs exactly the target number of advances then stops", func() {
			s := newSession(5)
			obs := &countingObserver{}
			s.AddObserver(obs)

			Expect(s.Start()).To(Succeed())
			Expect(s.Iteration()).To(Equal(1))

			steps := 0
			for s.Step() {
				steps++
				Expect(steps).To(BeNumerically("<=", 5))
			}

			Expect(steps).To(Equal(5))
			Expect(s.State()).To(Equal(session.Stopped))
			Expect(s.Grid().Generation()).To(Equal(5))
			Expect(obs.iterations).To(Equal([]int{1, 2, 3, 4, 5}))
		})

		It("does nothing on ticks once stopped", func() {
			s := newSession(1)
			Expect(s.Start()).To(Succeed())
			Expect(s.Step()).To(BeTrue())
			Expect(s.State()).To(Equal(session.Stopped))
			Expect(s.Step()).To(BeFalse())
			Expect(s.Grid().Generation()).To(Equal(1))
		})

		It("runs another full batch when restarted", func() {
			s := newSession(3)
			Expect(s.Run(context.Background(), 0)).To(Succeed())
			Expect(s.Grid().Generation()).To(Equal(3))

			Expect(s.Start()).To(Succeed())
			Expect(s.Run(context.Background(), 0)).To(Succeed())
			Expect(s.Grid().Generation()).To(Equal(6))
		})
	})

	Describe("unbounded mode", func() {
		It("keeps running until stopped", func() {
			s := newSession(0)
			Expect(s.Start()).To(Succeed())
			for i := 0; i < 50; i++ {
				Expect(s.Step()).To(BeTrue())
			}
			Expect(s.State()).To(Equal(session.Running))

			Expect(s.Stop()).To(Succeed())
			Expect(s.State()).To(Equal(session.Stopped))
			Expect(s.Step()).To(BeFalse())
			Expect(s.Grid().Generation()).To(Equal(50))
		})

		It("stops when the run context is cancelled", func() {
			s := newSession(0)
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			err := s.Run(ctx, time.Millisecond)
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(s.State()).To(Equal(session.Stopped))
			Expect(s.Grid().Generation()).To(BeNumerically(">", 0))
		})
	})

	Describe("rejections", func() {
		It("rejects a second start without changing state", func() {
			s := newSession(5)
			Expect(s.Start()).To(Succeed())
			Expect(s.Step()).To(BeTrue())
			iteration, gen := s.Iteration(), s.Grid().Generation()

			err := s.Start()
			Expect(err).To(MatchError(session.ErrAlreadyRunning))
			Expect(session.IsRejection(err)).To(BeTrue())
			Expect(s.State()).To(Equal(session.Running))
			Expect(s.Iteration()).To(Equal(iteration))
			Expect(s.Grid().Generation()).To(Equal(gen))
		})

		It("rejects stop while idle or stopped", func() {
			s := newSession(5)
			Expect(s.Stop()).To(MatchError(session.ErrNotRunning))
			Expect(s.State()).To(Equal(session.Idle))

			Expect(s.Start()).To(Succeed())
			Expect(s.Stop()).To(Succeed())
			Expect(s.Stop()).To(MatchError(session.ErrNotRunning))
		})

		It("rejects reset and reconfiguration while running", func() {
			s := newSession(5)
			Expect(s.Start()).To(Succeed())
			grid := s.Grid()

			Expect(s.Reset()).To(MatchError(session.ErrResetWhileRunning))
			Expect(s.SetIterationTarget(9)).To(MatchError(session.ErrBusy))
			Expect(s.SetColorMode(true)).To(MatchError(session.ErrBusy))

			Expect(s.Grid()).To(BeIdenticalTo(grid))
			Expect(s.Target()).To(Equal(5))
			Expect(s.ColorMode()).To(BeFalse())
		})

		It("rejects a negative target", func() {
			s := newSession(5)
			Expect(s.SetIterationTarget(-3)).To(MatchError(session.ErrInvalidTarget))
			Expect(s.Target()).To(Equal(5))
		})

		It("describes the refused command", func() {
			s := newSession(5)
			err := s.Stop()
			Expect(err.Error()).To(ContainSubstring("stop rejected (idle)"))
		})
	})

	Describe("reset", func() {
		It("rebuilds a fresh grid of the same size", func() {
			s := newSession(2)
			before := s.Snapshot()
			Expect(s.Run(context.Background(), 0)).To(Succeed())

			Expect(s.Reset()).To(Succeed())
			after := s.Snapshot()

			Expect(s.State()).To(Equal(session.Idle))
			Expect(s.Iteration()).To(BeZero())
			Expect(after.Generation()).To(BeZero())
			Expect(after.Columns()).To(Equal(before.Columns()))
			Expect(after.Rows()).To(Equal(before.Rows()))
			Expect(after.Equal(before)).To(BeFalse())
		})

		It("applies colour mode to the rebuilt grid", func() {
			s := newSession(0)
			Expect(s.SetColorMode(true)).To(Succeed())
			Expect(s.Snapshot().At(0, 0).Colored).To(BeFalse())

			Expect(s.Reset()).To(Succeed())
			Expect(s.Snapshot().At(0, 0).Colored).To(BeTrue())
		})

		It("switches between bounded and unbounded mode via the target", func() {
			s := newSession(0)
			Expect(s.Unbounded()).To(BeTrue())
			Expect(s.SetIterationTarget(2)).To(Succeed())
			Expect(s.Unbounded()).To(BeFalse())
			Expect(s.Run(context.Background(), 0)).To(Succeed())
			Expect(s.Grid().Generation()).To(Equal(2))
		})
	})

	Describe("dispatch", func() {
		It("routes command messages", func() {
			s := newSession(0)
			Expect(s.Dispatch(session.TargetCmd{N: 3})).To(Succeed())
			Expect(s.Dispatch(session.ColorModeCmd{On: true})).To(Succeed())
			Expect(s.Dispatch(session.StartCmd{})).To(Succeed())
			Expect(s.Dispatch(session.StartCmd{})).To(MatchError(session.ErrAlreadyRunning))
			Expect(s.Dispatch(session.ResetCmd{})).To(MatchError(session.ErrResetWhileRunning))
			Expect(s.Dispatch(session.StopCmd{})).To(Succeed())
			Expect(s.Dispatch(session.ResetCmd{})).To(Succeed())

			Expect(s.Target()).To(Equal(3))
			Expect(s.Snapshot().At(0, 0).Colored).To(BeTrue())
		})
	})

	Describe("state names", func() {
		It("prints each state", func() {
			Expect(session.Idle.String()).To(Equal("idle"))
			Expect(session.Running.String()).To(Equal("running"))
			Expect(session.Stopped.String()).To(Equal("stopped"))
		})
	})
})

var _ = Describe("Ensemble", func() {
	It("runs one bounded session per seed", func() {
		opts := session.Options{Width: 100, Height: 100, CellSize: 10, Target: 20}
		results, err := session.NewEnsemble(opts, 4, 10).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		for i, r := range results {
			Expect(r.Seed).To(Equal(int64(10 + i)))
			Expect(r.Generations).To(Equal(20))
			Expect(r.FinalPopulation).To(BeNumerically(">=", 0))
		}
	})

	It("refuses unbounded runs", func() {
		opts := session.Options{Width: 100, Height: 100, CellSize: 10}
		_, err := session.NewEnsemble(opts, 2, 1).Run(context.Background())
		Expect(err).To(MatchError(session.ErrInvalidTarget))
	})

	DescribeTable("refuses empty ensembles",
		func(runs int) {
			opts := session.Options{Width: 100, Height: 100, CellSize: 10, Target: 5}
			results, err := session.NewEnsemble(opts, runs, 1).Run(context.Background())
			Expect(err).To(MatchError(session.ErrInvalidRuns))
			Expect(results).To(BeNil())
		},
		Entry("zero runs", 0),
		Entry("negative runs", -1),
	)

	It("counts the starting board as generation 0 of the cycle", func() {
		opts := session.Options{Width: 50, Height: 50, CellSize: 10, Target: 4, Pattern: []string{"OOO"}}
		results, err := session.NewEnsemble(opts, 1, 1).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Cycle.Period).To(Equal(2))
		Expect(results[0].Cycle.Since).To(Equal(0))
	})

	It("reproduces every run from the same seed start, including seed 0", func() {
		opts := session.Options{Width: 150, Height: 150, CellSize: 10, Target: 15}
		first, err := session.NewEnsemble(opts, 3, -1).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		second, err := session.NewEnsemble(opts, 3, -1).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(first[1].Seed).To(Equal(int64(0)))
		Expect(second).To(Equal(first))
	})
})

var _ = Describe("Seeding", func() {
	It("treats an explicit zero seed as a real seed", func() {
		opts := session.Options{Width: 150, Height: 150, CellSize: 10, Seed: 0, Seeded: true}
		a, err := session.New(opts)
		Expect(err).NotTo(HaveOccurred())
		b, err := session.New(opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Snapshot().Equal(b.Snapshot())).To(BeTrue())
		Expect(a.Reset()).To(Succeed())
		Expect(b.Reset()).To(Succeed())
		Expect(a.Snapshot().Equal(b.Snapshot())).To(BeTrue())
	})
})
