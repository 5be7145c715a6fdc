package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaScheduler adapts Bubble Tea's tick command to field.Scheduler. The
// requested callback is held until the matching FrameMsg arrives, so it
// always runs on the program goroutine between other messages.
type teaScheduler struct {
	interval time.Duration
	pending  func()
	inFlight bool
}

func newTeaScheduler(fps int) *teaScheduler {
	return &teaScheduler{interval: time.Second / time.Duration(fps)}
}

// RequestNextTick stores fn for the next frame. A newer request replaces
// an older one still waiting.
func (s *teaScheduler) RequestNextTick(fn func()) {
	s.pending = fn
}

// Cmd returns a tick command when a callback is waiting and no tick is
// already on its way.
func (s *teaScheduler) Cmd() tea.Cmd {
	if s.pending == nil || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Fire runs the waiting callback, if any.
func (s *teaScheduler) Fire() {
	s.inFlight = false
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}
