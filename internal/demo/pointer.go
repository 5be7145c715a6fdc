package demo

import (
	"context"
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PointerMsg carries a synthetic pointer position as a fraction of the
// surface extent, 0..1 on each axis.
type PointerMsg struct {
	U, V float64
}

// Sender is the part of *tea.Program the pointer needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Pointer walks a Lissajous path over the surface so the field has
// something to react to without a mouse.
type Pointer struct {
	interval time.Duration
	fx, fy   float64 // path frequencies in radians per second
	phase    float64
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPointer creates a demo pointer that reports every interval.
func NewPointer(interval time.Duration, rng *rand.Rand) *Pointer {
	return &Pointer{
		interval: interval,
		fx:       0.31 + rng.Float64()*0.1,
		fy:       0.47 + rng.Float64()*0.1,
		phase:    rng.Float64() * 2 * math.Pi,
	}
}

// At returns the path position t seconds in.
func (p *Pointer) At(t float64) PointerMsg {
	return PointerMsg{
		U: 0.5 + 0.42*math.Sin(t*p.fx+p.phase),
		V: 0.5 + 0.42*math.Sin(t*p.fy),
	}
}

// Start begins sending PointerMsg to s until Stop.
func (p *Pointer) Start(s Sender) {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(ctx, s)
}

func (p *Pointer) loop(ctx context.Context, s Sender) {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += p.interval.Seconds()
			s.Send(p.At(t))
		}
	}
}

// Stop cancels the pointer without waiting. It is safe to call from inside
// the program's Update, where a goroutine blocked in Send cannot finish.
func (p *Pointer) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
}

// Wait blocks until the pointer goroutine has exited. Call it after Stop,
// once the program is no longer reading messages.
func (p *Pointer) Wait() {
	if p.done == nil {
		return
	}
	<-p.done
}
