package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	t time.Duration
}

func (f *fakeSource) now() time.Duration { return f.t }

func TestClock(t *testing.T) {
	src := &fakeSource{t: time.Second}
	c := NewClockWithSource(src.now)

	assert.Zero(t, c.Delta())
	assert.Zero(t, c.Total())

	src.t += 16 * time.Millisecond
	assert.Equal(t, 16*time.Millisecond, c.SinceUpdate())

	c.Update()
	assert.InDelta(t, 0.016, c.Delta(), 1e-9)
	assert.Zero(t, c.SinceUpdate())

	src.t += 34 * time.Millisecond
	c.Update()
	assert.InDelta(t, 0.034, c.Delta(), 1e-9)
	assert.InDelta(t, 0.050, c.Total(), 1e-9)
	assert.Equal(t, uint64(2), c.FrameCount())
	assert.Equal(t, 50*time.Millisecond, c.Elapsed())

	c.Reset()
	assert.Zero(t, c.Total())
	assert.Zero(t, c.FrameCount())
}

func TestNewClockUsesMonotonicSource(t *testing.T) {
	c := NewClock()
	time.Sleep(time.Millisecond)
	c.Update()
	assert.Greater(t, c.Delta(), 0.0)
}
