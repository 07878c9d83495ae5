package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func newTestLimiter(fps int) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := NewLimiter(fps)
	l.now = clock.now
	l.sleep = clock.sleep
	return l, clock
}

func TestLimiterSleepsRemainder(t *testing.T) {
	l, clock := newTestLimiter(50)
	assert.Equal(t, 20*time.Millisecond, l.Budget())

	assert.Zero(t, l.Begin())
	clock.t = clock.t.Add(5 * time.Millisecond)
	l.Wait()

	assert.Equal(t, []time.Duration{15 * time.Millisecond}, clock.slept)
	assert.InDelta(t, 0.02, l.Begin(), 1e-6)
}

func TestLimiterOverrun(t *testing.T) {
	l, clock := newTestLimiter(60)

	l.Begin()
	clock.t = clock.t.Add(40 * time.Millisecond)
	l.Wait()

	assert.Empty(t, clock.slept)
}

func TestLimiterUnlimited(t *testing.T) {
	l, clock := newTestLimiter(0)

	l.Begin()
	l.Wait()

	assert.Zero(t, l.Budget())
	assert.Empty(t, clock.slept)
}

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter()
	start := time.Unix(0, 0)

	// The first tick opens the window, then 60 frames fill one second.
	var reported bool
	for i := 0; i <= 60; i++ {
		reported = c.Tick(start.Add(time.Duration(i) * time.Second / 60))
		if i < 60 {
			assert.False(t, reported, "frame %d", i)
		}
	}
	assert.True(t, reported)
	assert.Equal(t, 60, c.FPS())
	assert.Equal(t, "60 fps", c.String())
}
