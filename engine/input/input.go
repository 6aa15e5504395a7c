// Package input turns the window's event stream into per-frame keyboard and mouse snapshots.
//
// Events arrive while the window pumps its native queue. Begin is called once per frame after pumping,
// queries are answered for the rest of the frame, and End clears the per-frame sets.
package input

import (
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/Carmen-Shannon/bliss/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
)

// Input answers keyboard and mouse queries for the current frame.
type Input interface {
	// Begin marks the start of a frame. Call it after the window has pumped its events.
	Begin()

	// End clears the per-frame sets: pressed and released keys and buttons, scroll, moves and drops.
	End()

	// Destroy unsubscribes from the window. The Input must not be used afterwards.
	Destroy()

	// IsKeyPressed reports whether key went down during this frame. Auto-repeat does not count.
	//
	// Parameters:
	//   - key: the key to check
	//
	// Returns:
	//   - bool: true if the key was pressed this frame
	IsKeyPressed(key common.KeyboardKey) bool

	// IsKeyDown reports whether key is currently held.
	IsKeyDown(key common.KeyboardKey) bool

	// IsKeyReleased reports whether key went up during this frame.
	IsKeyReleased(key common.KeyboardKey) bool

	// IsKeyUp reports whether key is currently not held.
	IsKeyUp(key common.KeyboardKey) bool

	// IsMouseButtonPressed reports whether button went down during this frame.
	IsMouseButtonPressed(button common.MouseButton) bool

	// IsMouseButtonDown reports whether button is currently held.
	IsMouseButtonDown(button common.MouseButton) bool

	// IsMouseButtonReleased reports whether button went up during this frame.
	IsMouseButtonReleased(button common.MouseButton) bool

	// IsMouseButtonUp reports whether button is currently not held.
	IsMouseButtonUp(button common.MouseButton) bool

	// IsMouseMoving reports whether the mouse moved during this frame.
	//
	// Returns:
	//   - mgl32.Vec2: the last position reported this frame, or the zero vector
	//   - bool: true if the mouse moved
	IsMouseMoving() (mgl32.Vec2, bool)

	// IsMouseScrolling reports whether the wheel moved during this frame.
	//
	// Returns:
	//   - mgl32.Vec2: the summed wheel delta of this frame, or the zero vector
	//   - bool: true if the wheel moved
	IsMouseScrolling() (mgl32.Vec2, bool)

	// IsFileDragDropped reports whether files were dropped onto the window during this frame.
	//
	// Returns:
	//   - string: the first dropped path, or an empty string
	//   - bool: true if at least one file was dropped
	IsFileDragDropped() (string, bool)

	// DroppedFiles returns every path dropped onto the window during this frame.
	DroppedFiles() []string

	// MousePosition returns the mouse position in window coordinates.
	MousePosition() mgl32.Vec2

	// SetMousePosition warps the mouse to a position in window coordinates.
	SetMousePosition(pos mgl32.Vec2)

	// IsCursorShown reports whether the mouse cursor is visible.
	IsCursorShown() bool

	// ShowCursor makes the mouse cursor visible.
	ShowCursor()

	// HideCursor hides the mouse cursor.
	HideCursor()

	// MouseCursor returns the current system cursor shape.
	MouseCursor() common.MouseCursor

	// SetMouseCursor switches to a system cursor shape.
	SetMouseCursor(cursor common.MouseCursor)

	// IsRelativeMouseModeEnabled reports whether relative mouse mode is on.
	IsRelativeMouseModeEnabled() bool

	// SetRelativeMouseMode toggles relative mouse mode. Failures are logged as errors.
	SetRelativeMouseMode(enabled bool)

	// ClipboardText returns the clipboard text.
	ClipboardText() string

	// SetClipboardText replaces the clipboard text.
	SetClipboardText(text string)
}

type keySet = *intmap.Map[common.KeyboardKey, struct{}]
type buttonSet = *intmap.Map[common.MouseButton, struct{}]

// input is the implementation of the Input interface.
type input struct {
	window window.Window
	unsubs []func()

	keysPressed  keySet
	keysDown     keySet
	keysReleased keySet

	buttonsPressed  buttonSet
	buttonsDown     buttonSet
	buttonsReleased buttonSet

	moved    bool
	lastMove mgl32.Vec2
	scrolled bool
	scroll   mgl32.Vec2
	dropped  []string
}

var _ Input = &input{}

// NewInput creates an Input bound to w and subscribes to its keyboard, mouse and drop events.
//
// Parameters:
//   - w: the window whose events feed the snapshots
//
// Returns:
//   - Input: the new input instance
func NewInput(w window.Window) Input {
	in := &input{
		window:          w,
		keysPressed:     intmap.New[common.KeyboardKey, struct{}](16),
		keysDown:        intmap.New[common.KeyboardKey, struct{}](16),
		keysReleased:    intmap.New[common.KeyboardKey, struct{}](16),
		buttonsPressed:  intmap.New[common.MouseButton, struct{}](8),
		buttonsDown:     intmap.New[common.MouseButton, struct{}](8),
		buttonsReleased: intmap.New[common.MouseButton, struct{}](8),
	}

	ev := w.Events()
	in.unsubs = append(in.unsubs,
		ev.KeyDown.Subscribe(in.onKeyDown),
		ev.KeyUp.Subscribe(in.onKeyUp),
		ev.MouseDown.Subscribe(in.onMouseDown),
		ev.MouseUp.Subscribe(in.onMouseUp),
		ev.MouseMove.Subscribe(in.onMouseMove),
		ev.MouseWheel.Subscribe(in.onMouseWheel),
		ev.DragDrop.Subscribe(in.onDragDrop),
		ev.FocusLost.Subscribe(in.onFocusLost),
	)
	return in
}

func (in *input) Begin() {}

func (in *input) End() {
	in.keysPressed.Clear()
	in.keysReleased.Clear()
	in.buttonsPressed.Clear()
	in.buttonsReleased.Clear()
	in.moved = false
	in.scrolled = false
	in.scroll = mgl32.Vec2{}
	in.dropped = in.dropped[:0]
}

func (in *input) Destroy() {
	for _, unsub := range in.unsubs {
		unsub()
	}
	in.unsubs = nil
}

func hasKey(m keySet, k common.KeyboardKey) bool {
	_, ok := m.Get(k)
	return ok
}

func hasButton(m buttonSet, b common.MouseButton) bool {
	_, ok := m.Get(b)
	return ok
}

func (in *input) IsKeyPressed(key common.KeyboardKey) bool {
	return hasKey(in.keysPressed, key)
}

func (in *input) IsKeyDown(key common.KeyboardKey) bool {
	return hasKey(in.keysDown, key)
}

func (in *input) IsKeyReleased(key common.KeyboardKey) bool {
	return hasKey(in.keysReleased, key)
}

func (in *input) IsKeyUp(key common.KeyboardKey) bool {
	return !hasKey(in.keysDown, key)
}

func (in *input) IsMouseButtonPressed(button common.MouseButton) bool {
	return hasButton(in.buttonsPressed, button)
}

func (in *input) IsMouseButtonDown(button common.MouseButton) bool {
	return hasButton(in.buttonsDown, button)
}

func (in *input) IsMouseButtonReleased(button common.MouseButton) bool {
	return hasButton(in.buttonsReleased, button)
}

func (in *input) IsMouseButtonUp(button common.MouseButton) bool {
	return !hasButton(in.buttonsDown, button)
}

func (in *input) IsMouseMoving() (mgl32.Vec2, bool) {
	if !in.moved {
		return mgl32.Vec2{}, false
	}
	return in.lastMove, true
}

func (in *input) IsMouseScrolling() (mgl32.Vec2, bool) {
	if !in.scrolled {
		return mgl32.Vec2{}, false
	}
	return in.scroll, true
}

func (in *input) IsFileDragDropped() (string, bool) {
	if len(in.dropped) == 0 {
		return "", false
	}
	return in.dropped[0], true
}

func (in *input) DroppedFiles() []string {
	if len(in.dropped) == 0 {
		return nil
	}
	out := make([]string, len(in.dropped))
	copy(out, in.dropped)
	return out
}

func (in *input) MousePosition() mgl32.Vec2 {
	return in.window.MousePosition()
}

func (in *input) SetMousePosition(pos mgl32.Vec2) {
	in.window.SetMousePosition(pos)
}

func (in *input) IsCursorShown() bool {
	return in.window.IsCursorShown()
}

func (in *input) ShowCursor() {
	in.window.ShowCursor()
}

func (in *input) HideCursor() {
	in.window.HideCursor()
}

func (in *input) MouseCursor() common.MouseCursor {
	return in.window.MouseCursor()
}

func (in *input) SetMouseCursor(cursor common.MouseCursor) {
	in.window.SetMouseCursor(cursor)
}

func (in *input) IsRelativeMouseModeEnabled() bool {
	return in.window.IsRelativeMouseMode()
}

func (in *input) SetRelativeMouseMode(enabled bool) {
	if err := in.window.SetRelativeMouseMode(enabled); err != nil {
		logger.Logger().Error("relative mouse mode is not supported", "enabled", enabled, "error", err)
	}
}

func (in *input) ClipboardText() string {
	return in.window.ClipboardText()
}

func (in *input) SetClipboardText(text string) {
	in.window.SetClipboardText(text)
}

func (in *input) onKeyDown(e window.KeyEvent) {
	if e.Repeat {
		return
	}
	in.keysPressed.Put(e.Key, struct{}{})
	in.keysDown.Put(e.Key, struct{}{})
}

func (in *input) onKeyUp(e window.KeyEvent) {
	in.keysDown.Del(e.Key)
	in.keysReleased.Put(e.Key, struct{}{})
}

func (in *input) onMouseDown(e window.MouseEvent) {
	in.buttonsPressed.Put(e.Button, struct{}{})
	in.buttonsDown.Put(e.Button, struct{}{})
}

func (in *input) onMouseUp(e window.MouseEvent) {
	in.buttonsDown.Del(e.Button)
	in.buttonsReleased.Put(e.Button, struct{}{})
}

func (in *input) onMouseMove(pos mgl32.Vec2) {
	in.moved = true
	in.lastMove = pos
}

func (in *input) onMouseWheel(delta mgl32.Vec2) {
	in.scrolled = true
	in.scroll = in.scroll.Add(delta)
}

func (in *input) onDragDrop(e window.DragDropEvent) {
	in.dropped = append(in.dropped, e.Path)
}

// onFocusLost releases held keys and buttons, since their up events go to another window.
func (in *input) onFocusLost() {
	if in.keysDown.Len() > 0 {
		for k := common.KeyUnknown; k < common.KeyLastKey; k++ {
			if hasKey(in.keysDown, k) {
				in.keysReleased.Put(k, struct{}{})
			}
		}
		in.keysDown.Clear()
	}
	if in.buttonsDown.Len() > 0 {
		for b := common.MouseButtonLeft; b <= common.MouseButtonX2; b++ {
			if hasButton(in.buttonsDown, b) {
				in.buttonsReleased.Put(b, struct{}{})
			}
		}
		in.buttonsDown.Clear()
	}
}
