//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// moduleHandle returns the HINSTANCE of the running executable for Win32 surface creation.
func moduleHandle() unsafe.Pointer {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return nil
	}
	return unsafe.Pointer(h)
}
