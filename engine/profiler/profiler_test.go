package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/stretchr/testify/assert"
)

func TestTick(t *testing.T) {
	original := logger.Logger()
	t.Cleanup(func() { logger.SetLogger(original) })
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	var now time.Duration
	p := newProfilerWithSource(func() time.Duration { return now }, WithInterval(500*time.Millisecond))

	for range 9 {
		now += 50 * time.Millisecond
		assert.False(t, p.Tick(3))
	}
	assert.Empty(t, buf.String())

	now += 50 * time.Millisecond
	assert.True(t, p.Tick(7))
	assert.InDelta(t, 20, p.Last().FPS, 1e-6)
	assert.Equal(t, 7, p.Last().DrawCalls)
	assert.Contains(t, buf.String(), "msg=profiler")
	assert.Contains(t, buf.String(), "draw_calls=7")

	now += 10 * time.Millisecond
	assert.False(t, p.Tick(1))
}

func TestWithInterval(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	assert.Equal(t, time.Second, p.updateInterval)

	p = NewProfiler(WithInterval(250 * time.Millisecond))
	assert.Equal(t, 250*time.Millisecond, p.updateInterval)
}
