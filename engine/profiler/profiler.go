// Package profiler logs frame rate, memory and draw call statistics at a fixed interval.
package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/loov/hrtime"
)

// Stats is one interval's worth of measurements.
type Stats struct {
	FPS float64

	// DrawCalls is the draw call count of the last tick.
	DrawCalls int

	// HeapMB is the live heap, SysMB the memory obtained from the OS.
	HeapMB, SysMB float64

	// AllocRateMB is the allocation rate over the interval in MB/s.
	AllocRateMB float64
	GCCount     uint32

	// MaxPauseUs is the longest GC pause since the previous report.
	LastPauseUs, MaxPauseUs uint64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the engine logger at a configurable interval.
type Profiler struct {
	now            func() time.Duration
	frameCount     int
	lastTime       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// NewProfiler creates a new Profiler backed by hrtime.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options such as WithInterval
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	return newProfilerWithSource(hrtime.Now, options...)
}

func newProfilerWithSource(now func() time.Duration, options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		now:            now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = now()
	return p
}

// Last returns the statistics of the most recent report.
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - drawCalls: the number of draw calls issued this frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(drawCalls int) bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime - p.lastTime
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	stats := Stats{
		FPS:         float64(p.frameCount) / elapsed.Seconds(),
		DrawCalls:   drawCalls,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:     p.memStats.NumGC,
	}

	// PauseNs is a circular buffer of the last 256 GC pauses
	if gcCount := stats.GCCount; gcCount > 0 {
		stats.LastPauseUs = p.memStats.PauseNs[(gcCount+255)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			stats.MaxPauseUs = max(stats.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	logger.Logger().Info("profiler",
		"fps", stats.FPS,
		"draw_calls", stats.DrawCalls,
		"heap_mb", stats.HeapMB,
		"alloc_rate_mb_s", stats.AllocRateMB,
		"gc", stats.GCCount,
		"gc_last_us", stats.LastPauseUs,
		"gc_max_us", stats.MaxPauseUs,
		"sys_mb", stats.SysMB,
	)

	p.last = stats
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = stats.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
