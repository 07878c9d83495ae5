// Package timing paces the frame loop and measures its rate.
package timing

import "time"

// Limiter caps the loop at a target frame rate by sleeping off whatever is
// left of each frame's budget.
type Limiter struct {
	budget time.Duration
	start  time.Time
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter creates a limiter for fps frames per second. A non-positive
// fps disables the sleep but still measures frame deltas.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		l.budget = time.Second / time.Duration(fps)
	}
	return l
}

// Budget returns the time allotted to one frame, or 0 when unlimited.
func (l *Limiter) Budget() time.Duration {
	return l.budget
}

// Begin marks the start of a frame and returns the seconds since the
// previous Begin. The first call returns 0.
func (l *Limiter) Begin() float32 {
	now := l.now()
	var dt float32
	if !l.last.IsZero() {
		dt = float32(now.Sub(l.last).Seconds())
	}
	l.last = now
	l.start = now
	return dt
}

// Wait sleeps until the frame budget since Begin is used up. It returns
// immediately when the frame ran over.
func (l *Limiter) Wait() {
	if l.budget == 0 {
		return
	}
	if remaining := l.budget - l.now().Sub(l.start); remaining > 0 {
		l.sleep(remaining)
	}
}
