package core

// ReferenceFrameMs is the duration of one reference frame at 60 Hz.
// Delta-time is expressed in multiples of it.
const ReferenceFrameMs = 1000.0 / 60.0

// Ticker converts absolute timestamps into normalized delta-time.
// A delta of 1.0 means exactly one 60 Hz frame elapsed.
type Ticker struct {
	prevMs   float64
	seeded   bool
	maxDelta float64 // 0 disables clamping
}

// NewTicker creates a ticker. maxDelta caps a single step's delta;
// pass 0 to disable the cap.
func NewTicker(maxDelta float64) *Ticker {
	if maxDelta < 0 {
		maxDelta = 0
	}
	return &Ticker{maxDelta: maxDelta}
}

// Reset forgets the previous timestamp. The next Tick only seeds it.
func (t *Ticker) Reset() {
	t.seeded = false
	t.prevMs = 0
}

// Tick records a timestamp in milliseconds and returns the delta since the
// previous one. ok is false on the first call after a reset, when no step
// should run. Clocks going backwards yield a zero delta.
func (t *Ticker) Tick(nowMs float64) (dt float64, ok bool) {
	if !t.seeded {
		t.prevMs = nowMs
		t.seeded = true
		return 0, false
	}

	dt = (nowMs - t.prevMs) / ReferenceFrameMs
	t.prevMs = nowMs

	if dt < 0 {
		dt = 0
	}
	if t.maxDelta > 0 && dt > t.maxDelta {
		dt = t.maxDelta
	}
	return dt, true
}

// MaxDelta returns the configured delta cap (0 = uncapped).
func (t *Ticker) MaxDelta() float64 {
	return t.maxDelta
}
