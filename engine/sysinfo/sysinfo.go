// Package sysinfo gathers a best-effort description of the host machine for start-up logging.
package sysinfo

import (
	"log/slog"
	"runtime"
)

// Info describes the host the engine is running on.
type Info struct {
	// CPU is the processor model name, or "unknown".
	CPU string
	// MemoryGB is the total physical memory in gigabytes, or 0 when it cannot be determined.
	MemoryGB float64
	// Threads is the number of logical CPUs usable by the process.
	Threads int
	// OS is the operating system and architecture, e.g. "linux/amd64".
	OS string
}

// Collect returns information about the current host. Fields the platform cannot report are left at
// their fallback values; Collect never fails.
//
// Returns:
//   - Info: the collected host information
func Collect() Info {
	info := Info{
		CPU:     "unknown",
		Threads: runtime.NumCPU(),
		OS:      runtime.GOOS + "/" + runtime.GOARCH,
	}
	if name := cpuName(); name != "" {
		info.CPU = name
	}
	if total := totalMemory(); total > 0 {
		info.MemoryGB = float64(total) / (1 << 30)
	}
	return info
}

// LogValue renders the info as a slog group.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("cpu", i.CPU),
		slog.Float64("memory_gb", i.MemoryGB),
		slog.Int("threads", i.Threads),
		slog.String("os", i.OS),
	)
}
