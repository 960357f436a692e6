package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/session"
)

const (
	DefaultFPS   = 30
	targetStep   = 10
	cycleWindow  = 64
	panelWidth   = 60
	toastSeconds = 2
	sparkWidth   = 30
)

type View int

const (
	BlockView View = iota
	BrailleView
)

func (v View) String() string {
	if v == BrailleView {
		return "braille"
	}
	return "block"
}

// ParseView maps a view name to a View; unknown names select the block view.
func ParseView(name string) View {
	if name == "braille" {
		return BrailleView
	}
	return BlockView
}

type Options struct {
	FPS   int
	Theme string
	View  string
	Title string
	// Timer shows the running time of the current board in the panel.
	Timer bool
}

type TickMsg time.Time

// Model wraps a session with the scheduler, metrics and input handling.
type Model struct {
	sess     *session.Session
	recorder *metrics.Recorder
	cycles   *analysis.CycleDetector
	fps      int
	theme    Theme
	styles   styles
	view     View
	title    string
	showHelp bool
	toast    string
	toastTTL int
	width    int
	height   int
	quitting bool
	timer    bool
	elapsed  time.Duration
}

func NewModel(s *session.Session, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Title == "" {
		opts.Title = "GAME OF LIFE"
	}
	theme := GetTheme(opts.Theme)

	m := Model{
		sess:     s,
		recorder: metrics.NewRecorder(metrics.DefaultHistory),
		cycles:   analysis.NewCycleDetector(cycleWindow),
		fps:      opts.FPS,
		theme:    theme,
		styles:   newStyles(theme),
		view:     ParseView(opts.View),
		title:    opts.Title,
		timer:    opts.Timer,
	}
	m.observeCurrent()
	s.AddObserver(m.recorder)
	s.AddObserver(m.cycles)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.sess.Step() {
			m.elapsed += m.frame()
		}
		if m.toastTTL > 0 {
			m.toastTTL--
			if m.toastTTL == 0 {
				m.toast = ""
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "s":
		m.report(m.sess.Start())
	case "x":
		m.report(m.sess.Stop())
	case "r":
		m.reset()
	case "c":
		if err := m.sess.SetColorMode(!m.sess.ColorMode()); err != nil {
			m.report(err)
			break
		}
		m.reset()
	case "+", "=":
		m.report(m.sess.SetIterationTarget(m.sess.Target() + targetStep))
	case "-", "_":
		n := m.sess.Target() - targetStep
		if n < 0 {
			n = 0
		}
		m.report(m.sess.SetIterationTarget(n))
	case "t":
		m.theme = nextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case "v":
		if m.view == BlockView {
			m.view = BrailleView
		} else {
			m.view = BlockView
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) reset() {
	if err := m.sess.Reset(); err != nil {
		m.report(err)
		return
	}
	m.recorder.Reset()
	m.cycles.Reset()
	m.elapsed = 0
	m.observeCurrent()
}

// observeCurrent records the board as generation 0 of a run.
func (m *Model) observeCurrent() {
	snap := m.sess.Snapshot()
	m.recorder.Observe(snap)
	m.cycles.Observe(snap)
}

func (m Model) frame() time.Duration {
	return time.Second / time.Duration(m.fps)
}

// Elapsed is the running time of the current board at the configured frame
// rate.
func (m Model) Elapsed() time.Duration { return m.elapsed }

func (m *Model) report(err error) {
	if err == nil {
		return
	}
	m.toast = err.Error()
	m.toastTTL = toastSeconds * m.fps
}

// Toast is the current status message, empty when none is shown.
func (m Model) Toast() string { return m.toast }

func (m Model) Session() *session.Session { return m.sess }

func (m Model) Theme() Theme { return m.theme }

func (m Model) ViewMode() View { return m.view }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.board(), m.styles.panel.Render(m.panel()))
	if m.toast != "" {
		main += "\n" + m.styles.toast.Render("! "+m.toast)
	}
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

func (m Model) board() string {
	snap := m.sess.Snapshot()
	if m.view == BrailleView {
		c := CanvasFor(snap)
		c.Plot(snap)
		return m.styles.board.Render(c.String())
	}

	maxCols, maxRows := 0, 0
	if m.width > 0 {
		maxCols = (m.width - panelWidth) / 2
		if maxCols < 1 {
			maxCols = 1
		}
	}
	if m.height > 0 {
		maxRows = m.height - 2
		if maxRows < 1 {
			maxRows = 1
		}
	}
	return blockBoard(snap, m.theme.Board, maxCols, maxRows)
}

func (m Model) panel() string {
	st := m.styles
	snap := m.sess.Snapshot()

	var s strings.Builder
	s.WriteString(st.header.Render(m.title) + "\n\n")

	state := m.sess.State()
	switch state {
	case session.Running:
		s.WriteString(st.running.Render(strings.ToUpper(state.String())))
	case session.Stopped:
		s.WriteString(st.stopped.Render(strings.ToUpper(state.String())))
	default:
		s.WriteString(st.idle.Render(strings.ToUpper(state.String())))
	}
	s.WriteString("\n\n")

	done := m.sess.Iteration() - 1
	if done < 0 {
		done = 0
	}
	if m.sess.Unbounded() {
		s.WriteString(row(st, "Iteration", fmt.Sprintf("%d / ∞", done)))
	} else {
		target := m.sess.Target()
		s.WriteString(row(st, "Iteration", fmt.Sprintf("%d / %d", done, target)))
		s.WriteString(st.bar.Render(ProgressBar(float64(done)/float64(target), sparkWidth)) + "\n")
	}
	s.WriteString(row(st, "Generation", fmt.Sprintf("%d", snap.Generation())))
	if m.timer {
		s.WriteString(row(st, "Elapsed", m.elapsed.Round(time.Millisecond).String()))
	}
	s.WriteString(row(st, "Grid", fmt.Sprintf("%d×%d @%d", snap.Columns(), snap.Rows(), snap.CellSize())))
	s.WriteString(row(st, "Colour", onOff(m.sess.ColorMode())))
	s.WriteString("\n")

	for _, metric := range m.recorder.Metrics() {
		s.WriteString(row(st, metric.Name(), formatValue(metric.Value())))
	}
	s.WriteString(row(st, "cycle", m.cycles.Result().String()))
	s.WriteString("\n" + st.spark.Render(Sparkline(m.recorder.History(), sparkWidth)) + "\n")

	s.WriteString("\n" + st.help.Render(fmt.Sprintf("theme %s · view %s", m.theme.Name, m.view)))
	s.WriteString("\n" + st.help.Render("s:Start x:Stop r:Reset c:Colour\n+/-:Target t:Theme v:View ?:Help q:Quit"))
	return s.String()
}

func row(st styles, label, value string) string {
	return st.label.Render(label) + st.value.Render(value) + "\n"
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  s        - Start                    ║
║  x        - Stop                     ║
║  r        - Reset (when stopped)     ║
║  c        - Toggle colour and reset  ║
║  + / -    - Iteration target ±10     ║
║  t        - Cycle themes             ║
║  v        - Block / braille view     ║
║  ?        - Toggle this help         ║
║  q        - Quit                     ║
╚══════════════════════════════════════╝`

// RunInteractive runs the TUI until the user quits.
func RunInteractive(s *session.Session, opts Options) error {
	_, err := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen()).Run()
	return err
}
