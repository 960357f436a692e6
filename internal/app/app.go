//go:build ebiten

package app

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/lifesim/internal/render"
	"github.com/san-kum/lifesim/internal/session"
)

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	palette render.Palette
	hud     bool
	status  string
	ttl     int
	tps     int
}

// New constructs a Game for the provided session.
func New(s *session.Session, opts Options) *Game {
	opts = opts.withDefaults()
	snap := s.Snapshot()
	return &Game{
		sess:    s,
		painter: render.NewGridPainter(snap.Columns(), snap.Rows()),
		palette: opts.Palette,
		hud:     true,
		tps:     opts.TPS,
	}
}

// Update maps keys to session commands and performs at most one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.report(g.sess.Start())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.report(g.sess.Stop())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(g.sess.Reset())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.sess.SetColorMode(!g.sess.ColorMode()); err != nil {
			g.report(err)
		} else {
			g.report(g.sess.Reset())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.report(g.sess.SetIterationTarget(g.sess.Target() + 10))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.sess.Target() > 0 {
		g.report(g.sess.SetIterationTarget(max(g.sess.Target()-10, 0)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	if g.ttl > 0 {
		g.ttl--
		if g.ttl == 0 {
			g.status = ""
		}
	}

	g.sess.Step()
	return nil
}

func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.status = err.Error()
	g.ttl = 2 * g.tps
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sess.Snapshot(), g.palette)
	if !g.hud {
		return
	}

	target := "∞"
	if !g.sess.Unbounded() {
		target = fmt.Sprint(g.sess.Target())
	}
	msg := fmt.Sprintf("%s  gen %d  target %s  pop %d\nS start  X stop  R reset  C colour  +/- target  H hud  Q quit",
		g.sess.State(), g.sess.Snapshot().Generation(), target, g.sess.Snapshot().Population())
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := g.sess.Snapshot()
	return snap.Columns() * snap.CellSize(), snap.Rows() * snap.CellSize()
}

// Run opens a window and blocks until it is closed.
func Run(s *session.Session, opts Options) error {
	opts = opts.withDefaults()
	game := New(s, opts)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
