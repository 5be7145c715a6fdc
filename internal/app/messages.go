package app

import "time"

// FrameMsg fires when the next display frame is due.
type FrameMsg time.Time
