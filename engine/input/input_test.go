package input_test

import (
	"testing"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/input"
	"github.com/Carmen-Shannon/bliss/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWindow provides real events and records pass-through calls. Methods it does not override
// panic through the nil embedded interface.
type stubWindow struct {
	window.Window
	events    window.Events
	mouse     mgl32.Vec2
	shown     bool
	cursor    common.MouseCursor
	relative  bool
	relErr    error
	clipboard string
}

func (s *stubWindow) Events() *window.Events { return &s.events }
func (s *stubWindow) MousePosition() mgl32.Vec2 { return s.mouse }
func (s *stubWindow) SetMousePosition(p mgl32.Vec2) { s.mouse = p }
func (s *stubWindow) IsCursorShown() bool { return s.shown }
func (s *stubWindow) ShowCursor() { s.shown = true }
func (s *stubWindow) HideCursor() { s.shown = false }
func (s *stubWindow) MouseCursor() common.MouseCursor { return s.cursor }
func (s *stubWindow) SetMouseCursor(c common.MouseCursor) { s.cursor = c }
func (s *stubWindow) IsRelativeMouseMode() bool { return s.relative }
func (s *stubWindow) ClipboardText() string { return s.clipboard }
func (s *stubWindow) SetClipboardText(t string) { s.clipboard = t }
func (s *stubWindow) SetRelativeMouseMode(enabled bool) error {
	if s.relErr != nil {
		return s.relErr
	}
	s.relative = enabled
	return nil
}

func TestKeyboardSnapshots(t *testing.T) {
	w := &stubWindow{}
	in := input.NewInput(w)
	ev := w.Events()

	ev.KeyDown.Emit(window.KeyEvent{Key: common.KeySpace, Down: true})
	in.Begin()
	assert.True(t, in.IsKeyPressed(common.KeySpace))
	assert.True(t, in.IsKeyDown(common.KeySpace))
	assert.False(t, in.IsKeyUp(common.KeySpace))
	assert.False(t, in.IsKeyReleased(common.KeySpace))
	in.End()

	t.Run("held key is down but no longer pressed", func(t *testing.T) {
		ev.KeyDown.Emit(window.KeyEvent{Key: common.KeySpace, Down: true, Repeat: true})
		in.Begin()
		assert.False(t, in.IsKeyPressed(common.KeySpace))
		assert.True(t, in.IsKeyDown(common.KeySpace))
		in.End()
	})

	t.Run("release", func(t *testing.T) {
		ev.KeyUp.Emit(window.KeyEvent{Key: common.KeySpace})
		in.Begin()
		assert.True(t, in.IsKeyReleased(common.KeySpace))
		assert.False(t, in.IsKeyDown(common.KeySpace))
		assert.True(t, in.IsKeyUp(common.KeySpace))
		in.End()
		assert.False(t, in.IsKeyReleased(common.KeySpace))
	})

	t.Run("repeat without prior press is ignored", func(t *testing.T) {
		ev.KeyDown.Emit(window.KeyEvent{Key: common.KeyA, Down: true, Repeat: true})
		assert.False(t, in.IsKeyDown(common.KeyA))
	})
}

func TestMouseButtonSnapshots(t *testing.T) {
	w := &stubWindow{}
	in := input.NewInput(w)
	ev := w.Events()

	ev.MouseDown.Emit(window.MouseEvent{Button: common.MouseButtonRight, Down: true})
	assert.True(t, in.IsMouseButtonPressed(common.MouseButtonRight))
	assert.True(t, in.IsMouseButtonDown(common.MouseButtonRight))
	assert.True(t, in.IsMouseButtonUp(common.MouseButtonLeft))
	in.End()
	assert.False(t, in.IsMouseButtonPressed(common.MouseButtonRight))
	assert.True(t, in.IsMouseButtonDown(common.MouseButtonRight))

	ev.MouseUp.Emit(window.MouseEvent{Button: common.MouseButtonRight})
	assert.True(t, in.IsMouseButtonReleased(common.MouseButtonRight))
	assert.True(t, in.IsMouseButtonUp(common.MouseButtonRight))
}

func TestMouseMotionAndScroll(t *testing.T) {
	w := &stubWindow{}
	in := input.NewInput(w)
	ev := w.Events()

	_, moving := in.IsMouseMoving()
	assert.False(t, moving)
	_, scrolling := in.IsMouseScrolling()
	assert.False(t, scrolling)

	ev.MouseMove.Emit(mgl32.Vec2{1, 2})
	ev.MouseMove.Emit(mgl32.Vec2{5, 6})
	ev.MouseWheel.Emit(mgl32.Vec2{0, 1})
	ev.MouseWheel.Emit(mgl32.Vec2{0, 2})

	pos, moving := in.IsMouseMoving()
	assert.True(t, moving)
	assert.Equal(t, mgl32.Vec2{5, 6}, pos)
	delta, scrolling := in.IsMouseScrolling()
	assert.True(t, scrolling)
	assert.Equal(t, mgl32.Vec2{0, 3}, delta)

	in.End()
	_, moving = in.IsMouseMoving()
	assert.False(t, moving)
	delta, scrolling = in.IsMouseScrolling()
	assert.False(t, scrolling)
	assert.Equal(t, mgl32.Vec2{}, delta)
}

func TestDroppedFiles(t *testing.T) {
	w := &stubWindow{}
	in := input.NewInput(w)

	_, ok := in.IsFileDragDropped()
	assert.False(t, ok)

	w.Events().DragDrop.Emit(window.DragDropEvent{Path: "/tmp/a.png"})
	w.Events().DragDrop.Emit(window.DragDropEvent{Path: "/tmp/b.png"})
	first, ok := in.IsFileDragDropped()
	require.True(t, ok)
	assert.Equal(t, "/tmp/a.png", first)
	assert.Equal(t, []string{"/tmp/a.png", "/tmp/b.png"}, in.DroppedFiles())

	in.End()
	assert.Nil(t, in.DroppedFiles())
}

func TestFocusLostReleasesHeldInput(t *testing.T) {
	w := &stubWindow{}
	in := input.NewInput(w)
	ev := w.Events()

	ev.KeyDown.Emit(window.KeyEvent{Key: common.KeyW, Down: true})
	ev.MouseDown.Emit(window.MouseEvent{Button: common.MouseButtonLeft, Down: true})
	in.End()

	ev.FocusLost.Emit()
	assert.False(t, in.IsKeyDown(common.KeyW))
	assert.True(t, in.IsKeyReleased(common.KeyW))
	assert.False(t, in.IsMouseButtonDown(common.MouseButtonLeft))
	assert.True(t, in.IsMouseButtonReleased(common.MouseButtonLeft))
}

func TestDestroyUnsubscribes(t *testing.T) {
	w := &stubWindow{}
	in := input.NewInput(w)
	assert.Equal(t, 1, w.events.KeyDown.Len())

	in.Destroy()
	assert.Zero(t, w.events.KeyDown.Len())
	assert.Zero(t, w.events.FocusLost.Len())

	w.Events().KeyDown.Emit(window.KeyEvent{Key: common.KeyQ, Down: true})
	assert.False(t, in.IsKeyDown(common.KeyQ))
}

func TestPassThrough(t *testing.T) {
	w := &stubWindow{shown: true}
	in := input.NewInput(w)

	in.SetMousePosition(mgl32.Vec2{10, 20})
	assert.Equal(t, mgl32.Vec2{10, 20}, in.MousePosition())

	in.HideCursor()
	assert.False(t, in.IsCursorShown())
	in.ShowCursor()
	assert.True(t, in.IsCursorShown())

	in.SetMouseCursor(common.MouseCursorIBeam)
	assert.Equal(t, common.MouseCursorIBeam, in.MouseCursor())

	in.SetRelativeMouseMode(true)
	assert.True(t, in.IsRelativeMouseModeEnabled())
	w.relErr = window.ErrNotSupported
	in.SetRelativeMouseMode(false)
	assert.True(t, in.IsRelativeMouseModeEnabled())

	in.SetClipboardText("hello")
	assert.Equal(t, "hello", in.ClipboardText())
}
