package window

import (
	"fmt"
	"strings"
)

// WindowState is a set of flags describing how the window is presented.
type WindowState uint32

// StateNone is the empty flag set.
const StateNone WindowState = 0

const (
	StateResizable WindowState = 1 << iota
	StateFullScreen
	StateBorderlessFullScreen
	StateMaximized
	StateMinimized
	StateHidden
	StateCaptureMouse
	StateAlwaysOnTop
)

var stateNames = []struct {
	state WindowState
	name  string
}{
	{StateResizable, "resizable"},
	{StateFullScreen, "fullscreen"},
	{StateBorderlessFullScreen, "borderless_fullscreen"},
	{StateMaximized, "maximized"},
	{StateMinimized, "minimized"},
	{StateHidden, "hidden"},
	{StateCaptureMouse, "capture_mouse"},
	{StateAlwaysOnTop, "always_on_top"},
}

// Has reports whether every flag in flags is set in s.
func (s WindowState) Has(flags WindowState) bool {
	return s&flags == flags
}

// String joins the names of the set flags with "|".
func (s WindowState) String() string {
	if s == StateNone {
		return "none"
	}
	var parts []string
	for _, n := range stateNames {
		if s.Has(n.state) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseWindowState combines flag names as they appear in a settings file.
//
// Parameters:
//   - names: flag names such as "resizable" or "always_on_top"; matching is case-insensitive
//
// Returns:
//   - WindowState: the combined flags
//   - error: an error naming the first unknown flag
func ParseWindowState(names []string) (WindowState, error) {
	s := StateNone
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, n := range stateNames {
			if n.name == name {
				s |= n.state
				found = true
				break
			}
		}
		if !found {
			return StateNone, fmt.Errorf("unknown window state %q", raw)
		}
	}
	return s, nil
}
