package timing

import (
	"fmt"
	"time"
)

// FPSCounter counts frames over one-second windows.
type FPSCounter struct {
	window time.Duration
	start  time.Time
	frames int
	fps    int
}

// NewFPSCounter creates a counter that reports once per second.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{window: time.Second}
}

// Tick records a frame finished at now. It returns true when a window
// closed and FPS holds a fresh value.
func (c *FPSCounter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
		return false
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return false
	}
	c.fps = int(float64(c.frames) / elapsed.Seconds())
	c.frames = 0
	c.start = now
	return true
}

// FPS returns the rate measured over the last closed window.
func (c *FPSCounter) FPS() int {
	return c.fps
}

func (c *FPSCounter) String() string {
	return fmt.Sprintf("%d fps", c.fps)
}
