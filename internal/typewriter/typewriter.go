package typewriter

import "time"

// Line is text typed at one rune per Speed.
type Line struct {
	Text  string
	Speed time.Duration
}

// Typewriter reveals a sequence of lines one after another. It has no clock
// of its own; the caller feeds elapsed time through Advance.
type Typewriter struct {
	lines   [][]rune
	speeds  []time.Duration
	starts  []time.Duration // offset of each line after the initial delay
	total   time.Duration
	delay   time.Duration
	blink   time.Duration
	elapsed time.Duration
}

// New creates a typewriter that starts after delay. blink is the cursor
// period; zero keeps the cursor solid.
func New(delay, blink time.Duration, lines ...Line) *Typewriter {
	t := &Typewriter{delay: delay, blink: blink}
	var at time.Duration
	for _, l := range lines {
		r := []rune(l.Text)
		speed := l.Speed
		if speed < 0 {
			speed = 0
		}
		t.lines = append(t.lines, r)
		t.speeds = append(t.speeds, speed)
		t.starts = append(t.starts, at)
		at += time.Duration(len(r)) * speed
	}
	t.total = at
	return t
}

// Advance moves the clock forward by dt.
func (t *Typewriter) Advance(dt time.Duration) {
	if dt > 0 {
		t.elapsed += dt
	}
}

// Elapsed returns the accumulated time.
func (t *Typewriter) Elapsed() time.Duration { return t.elapsed }

// Visible returns the typed portion of line i.
func (t *Typewriter) Visible(i int) string {
	if i < 0 || i >= len(t.lines) {
		return ""
	}
	return string(t.lines[i][:t.typed(i)])
}

func (t *Typewriter) typed(i int) int {
	s := t.elapsed - t.delay
	n := len(t.lines[i])
	if s < t.starts[i] {
		return 0
	}
	if t.speeds[i] == 0 {
		return n
	}
	// First rune appears as soon as the line starts.
	k := int((s-t.starts[i])/t.speeds[i]) + 1
	if k > n {
		k = n
	}
	return k
}

// Typing returns the index of the line currently being typed, or -1 before
// the start delay and after the last line completes.
func (t *Typewriter) Typing() int {
	s := t.elapsed - t.delay
	if s < 0 || t.done() {
		return -1
	}
	for i := range t.lines {
		end := t.starts[i] + time.Duration(len(t.lines[i]))*t.speeds[i]
		if s >= t.starts[i] && s < end {
			return i
		}
	}
	return -1
}

// done reports whether every line is fully typed.
func (t *Typewriter) done() bool {
	return t.elapsed-t.delay >= t.total
}

// CursorOn reports whether the blinking cursor is in its visible half.
func (t *Typewriter) CursorOn() bool {
	if t.blink <= 0 {
		return true
	}
	return t.elapsed%t.blink >= t.blink/2
}
