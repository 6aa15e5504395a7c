//go:build !windows

package window

import "unsafe"

// moduleHandle is only meaningful on Windows.
func moduleHandle() unsafe.Pointer {
	return nil
}
