package profiler

import "time"

type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often statistics are logged. Non-positive values keep the default of one second.
//
// Parameters:
//   - interval: the time between reports
//
// Returns:
//   - ProfilerBuilderOption: a function that sets the report interval
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}
