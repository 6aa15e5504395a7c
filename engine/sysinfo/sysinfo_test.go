package sysinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	info := Collect()
	assert.NotEmpty(t, info.CPU)
	assert.Equal(t, runtime.NumCPU(), info.Threads)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.OS)
	assert.GreaterOrEqual(t, info.MemoryGB, 0.0)
}
