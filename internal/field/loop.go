package field

// Scheduler runs fn on the host's next frame opportunity. Implementations
// must not call fn synchronously from RequestNextTick.
type Scheduler interface {
	RequestNextTick(fn func())
}

// Loop drives a Field against a Surface, one Step and Render per tick.
// Each tick re-requests itself until Stop is called.
type Loop struct {
	field   *Field
	surface Surface
	sched   Scheduler
	links   []Link

	running bool
	gen     uint64 // bumped by Stop so pending ticks from a prior run are dropped
	frames  uint64
}

// NewLoop wires a field, surface and scheduler. Nothing runs until Start.
func NewLoop(f *Field, s Surface, sched Scheduler) *Loop {
	return &Loop{field: f, surface: s, sched: sched}
}

// Start requests the first tick. Calling Start on a running loop is a no-op.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.request()
}

// Stop prevents any further tick from running or being requested.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

// Running reports whether the loop will keep ticking.
func (l *Loop) Running() bool { return l.running }

// Frames returns the number of ticks run so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Links returns the connections drawn on the last frame.
func (l *Loop) Links() []Link { return l.links }

// Field returns the simulated field.
func (l *Loop) Field() *Field { return l.field }

func (l *Loop) request() {
	gen := l.gen
	l.sched.RequestNextTick(func() { l.tick(gen) })
}

func (l *Loop) tick(gen uint64) {
	if !l.running || gen != l.gen {
		return
	}
	l.field.Step()
	l.links = l.field.Render(l.surface, l.links)
	l.frames++
	l.request()
}

// ManualScheduler queues ticks until Advance runs them. It lets callers
// drive a Loop synchronously.
type ManualScheduler struct {
	pending []func()
}

// RequestNextTick queues fn.
func (m *ManualScheduler) RequestNextTick(fn func()) {
	m.pending = append(m.pending, fn)
}

// Pending returns the number of queued ticks.
func (m *ManualScheduler) Pending() int { return len(m.pending) }

// Advance runs up to n frames. Ticks requested while a frame runs are
// deferred to the next frame. It returns the number of frames that had
// work queued.
func (m *ManualScheduler) Advance(n int) int {
	ran := 0
	for i := 0; i < n && len(m.pending) > 0; i++ {
		batch := m.pending
		m.pending = nil
		for _, fn := range batch {
			fn()
		}
		ran++
	}
	return ran
}
