package app

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"netfield.klederson.com/internal/canvas"
	"netfield.klederson.com/internal/config"
	"netfield.klederson.com/internal/demo"
	"netfield.klederson.com/internal/field"
	"netfield.klederson.com/internal/shapes"
	"netfield.klederson.com/internal/theme"
	"netfield.klederson.com/internal/typewriter"
	"netfield.klederson.com/internal/ui"
)

// Options configures a new AppModel.
type Options struct {
	FPS      int
	Seed     int64
	Title    string
	Subtitle string
	Demo     bool
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	rng    *rand.Rand
	sched  *teaScheduler
	canvas *canvas.Canvas
	loop   *field.Loop
	shapes *shapes.Set
	typer  *typewriter.Typewriter
	frames *FrameRing
	themes *theme.Store
	styles ui.Styles
	demo   *demo.Pointer

	lastFrame time.Time
	log       logrus.FieldLogger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	opts     Options
	keys     keyMap
	help     help.Model
	showHelp bool

	shared *shared
}

// New creates an AppModel. The field itself is built on the first window
// size message, once the surface extent is known.
func New(opts Options, themes *theme.Store, log logrus.FieldLogger) AppModel {
	if opts.FPS < config.MinFPS || opts.FPS > config.MaxFPS {
		opts.FPS = config.DefaultFPS
	}
	th := theme.Get(themes.Current())
	rng := rand.New(rand.NewSource(opts.Seed))
	typer := typewriter.New(config.TypeStartDelay, config.CursorBlinkPeriod,
		typewriter.Line{Text: opts.Title, Speed: config.TypeTitleSpeed},
		typewriter.Line{Text: opts.Subtitle, Speed: config.TypeSubtitleSpeed},
	)

	m := AppModel{
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
		shared: &shared{
			rng:    rng,
			sched:  newTeaScheduler(opts.FPS),
			canvas: canvas.New(0, 0, th.Background),
			typer:  typer,
			frames: NewFrameRing(config.FrameHistorySize),
			themes: themes,
			log:    log,
		},
	}
	m.applyTheme()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.resize()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Canvas rows start below the menu bar.
		m.pointerMove(canvas.CellCenter(msg.X, msg.Y-1))
		return m, nil

	case tea.BlurMsg:
		// The pointer left the terminal; let the shapes settle home.
		if m.shared.shapes != nil {
			m.shared.shapes.Reset()
		}
		return m, nil

	case demo.PointerMsg:
		w, h := m.shared.canvas.Extent()
		m.pointerMove(field.Vec{X: msg.U * w, Y: msg.V * h})
		return m, nil

	case FrameMsg:
		m.frame(time.Time(msg))
		return m, m.shared.sched.Cmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		name := m.shared.themes.Toggle()
		m.applyTheme()
		m.shared.log.WithField("theme", name).Info("theme toggled")

	case key.Matches(msg, m.keys.Pause):
		loop := m.shared.loop
		if loop == nil {
			return m, nil
		}
		if loop.Running() {
			loop.Stop()
			m.shared.log.WithField("frames", loop.Frames()).Info("loop paused")
			return m, nil
		}
		loop.Start()
		m.shared.lastFrame = time.Time{}
		m.shared.log.Info("loop resumed")
		return m, m.shared.sched.Cmd()

	case key.Matches(msg, m.keys.Reseed):
		if m.shared.loop == nil {
			return m, nil
		}
		return m, m.startField()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// resize creates the field on the first size message and resizes it after.
func (m *AppModel) resize() tea.Cmd {
	s := m.shared
	rows := m.height - ui.BarRows
	if rows < 0 {
		rows = 0
	}
	s.canvas.Resize(m.width, rows)
	w, h := s.canvas.Extent()

	if s.loop == nil {
		s.shapes = shapes.New(m.opts.FPS, w, h)
		return m.startField()
	}

	s.loop.Field().Resize(w, h)
	s.shapes.Resize(w, h)
	s.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("surface resized")
	return nil
}

// startField replaces any running field with a freshly seeded one sized to
// the canvas and starts its loop.
func (m *AppModel) startField() tea.Cmd {
	s := m.shared
	var pointer field.Vec
	if s.loop != nil {
		pointer = s.loop.Field().Pointer()
		s.loop.Stop()
	}

	w, h := s.canvas.Extent()
	f := field.New(w, h, s.rng)
	f.PointerMove(pointer.X, pointer.Y)
	s.loop = field.NewLoop(f, s.canvas, s.sched)
	s.loop.Start()
	s.lastFrame = time.Time{}

	s.log.WithFields(logrus.Fields{
		"particles": f.Len(),
		"width":     w,
		"height":    h,
	}).Info("particle field created")
	return s.sched.Cmd()
}

func (m *AppModel) pointerMove(p field.Vec) {
	s := m.shared
	if s.loop == nil {
		return
	}
	s.loop.Field().PointerMove(p.X, p.Y)
	s.shapes.PointerMove(p)
}

// frame advances the per-frame effects and runs the pending field tick.
func (m *AppModel) frame(now time.Time) {
	s := m.shared
	if s.loop == nil {
		return
	}
	if !s.lastFrame.IsZero() {
		dt := now.Sub(s.lastFrame)
		s.frames.Push(dt)
		s.typer.Advance(dt)
	}
	s.lastFrame = now

	s.shapes.Step()
	before := s.loop.Frames()
	s.sched.Fire()
	if s.loop.Frames() != before {
		s.shapes.Draw(s.canvas, s.styles.Theme.Shape)
	}
}

func (m *AppModel) applyTheme() {
	th := theme.Get(m.shared.themes.Current())
	m.shared.styles = ui.NewStyles(th)
	m.shared.canvas.SetBackground(th.Background)

	m.help.Styles.ShortKey = m.shared.styles.HelpKey
	m.help.Styles.ShortDesc = m.shared.styles.HelpDesc
	m.help.Styles.ShortSeparator = m.shared.styles.HelpDesc
	m.help.Styles.FullKey = m.shared.styles.HelpKey
	m.help.Styles.FullDesc = m.shared.styles.HelpDesc
	m.help.Styles.FullSeparator = m.shared.styles.HelpDesc
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}
	s := m.shared
	st := s.styles

	heading := ui.Heading{
		Title:      s.typer.Visible(0),
		Subtitle:   s.typer.Visible(1),
		CursorLine: s.typer.Typing(),
		CursorOn:   s.typer.CursorOn(),
	}
	running := s.loop != nil && s.loop.Running()
	menuBar := ui.RenderMenuBar(st, m.width, heading, running)

	stats := ui.Stats{
		FPS:   s.frames.FPS(),
		Theme: string(s.themes.Current()),
	}
	if s.loop != nil {
		f := s.loop.Field()
		p := f.Pointer()
		stats.Particles = f.Len()
		stats.Links = len(s.loop.Links())
		stats.PointerX, stats.PointerY = p.X, p.Y
	}
	helpLine := ""
	if m.showHelp {
		helpLine = m.help.View(m.keys)
	}
	statusBar := ui.RenderStatusBar(st, m.width, stats, helpLine)

	return ui.ComposeLayout(menuBar, s.canvas.View(), statusBar)
}

// StartDemo drives the pointer from a synthetic path. Must be called before
// p.Run().
func (m *AppModel) StartDemo(p demo.Sender) {
	if !m.opts.Demo {
		return
	}
	m.shared.demo = demo.NewPointer(config.DemoPointerInterval, m.shared.rng)
	m.shared.demo.Start(p)
}

// Stop halts the field loop and cancels the demo pointer. It never blocks,
// so the quit key can call it from Update.
func (m AppModel) Stop() {
	if m.shared.loop != nil {
		m.shared.loop.Stop()
	}
	if m.shared.demo != nil {
		m.shared.demo.Stop()
	}
}

// Wait blocks until the demo pointer goroutine has exited. Call it after
// p.Run() returns.
func (m AppModel) Wait() {
	if m.shared.demo != nil {
		m.shared.demo.Wait()
	}
}
