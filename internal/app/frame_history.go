package app

import "time"

// FrameRing is a circular buffer of recent frame durations.
type FrameRing struct {
	buf   []time.Duration
	pos   int
	count int
	sum   time.Duration
}

// NewFrameRing creates a ring holding the last capacity frame times.
func NewFrameRing(capacity int) *FrameRing {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameRing{
		buf: make([]time.Duration, capacity),
	}
}

// Push records one frame duration, evicting the oldest when full.
func (r *FrameRing) Push(d time.Duration) {
	if r.count == len(r.buf) {
		r.sum -= r.buf[r.pos]
	} else {
		r.count++
	}
	r.buf[r.pos] = d
	r.sum += d
	r.pos = (r.pos + 1) % len(r.buf)
}

// values returns all stored durations in chronological order.
func (r *FrameRing) values() []time.Duration {
	if r.count == 0 {
		return nil
	}
	result := make([]time.Duration, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// FPS returns the average frame rate over the stored frames, or 0 if empty.
func (r *FrameRing) FPS() float64 {
	if r.count == 0 || r.sum <= 0 {
		return 0
	}
	return float64(r.count) / r.sum.Seconds()
}

// Len returns the number of stored frames.
func (r *FrameRing) Len() int {
	return r.count
}
