package window

import (
	"errors"
	"fmt"
	"image"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Backend selects the native windowing library a Window is built on.
type Backend string

const (
	// BackendGLFW builds the window on GLFW 3.3.
	BackendGLFW Backend = "glfw"
	// BackendSDL builds the window on SDL2.
	BackendSDL Backend = "sdl"
)

var (
	// ErrUnsupportedDriver is returned when a WebGPU surface cannot be created for the active video driver.
	ErrUnsupportedDriver = errors.New("unsupported video driver")
	// ErrUnsupportedBackend is returned by NewWindow for an unknown Backend value.
	ErrUnsupportedBackend = errors.New("unsupported window backend")
	// ErrNotSupported is returned when the backend cannot perform the requested operation.
	ErrNotSupported = errors.New("operation not supported by window backend")
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// Events returns the window's event set. Subscribe to its fields to receive window and input events.
	//
	// Returns:
	//   - *Events: the events raised by PumpEvents
	Events() *Events

	// PumpEvents drains all pending native events and dispatches them synchronously to subscribers.
	PumpEvents()

	// Exists reports whether the window is still open. It becomes false after a quit or close request.
	//
	// Returns:
	//   - bool: true while the window is open
	Exists() bool

	// IsFocused reports whether the window currently has input focus.
	//
	// Returns:
	//   - bool: true if focused
	IsFocused() bool

	// Backend returns the native windowing library this window runs on.
	Backend() Backend

	// State returns the current state flags.
	State() WindowState

	// SetState sets the state flags and applies each set flag to the native window.
	//
	// Parameters:
	//   - state: the flags to apply
	SetState(state WindowState)

	// HasState reports whether all of the given flags are set.
	//
	// Parameters:
	//   - state: the flags to check
	//
	// Returns:
	//   - bool: true if every flag is set
	HasState(state WindowState) bool

	// ClearState resets the window to a plain, visible, non-resizable, windowed state.
	ClearState()

	// Title returns the window title.
	Title() string

	// SetTitle sets the window title. Failures are logged as warnings.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// Size returns the drawable size of the window in pixels.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetSize resizes the window.
	//
	// Parameters:
	//   - width, height: the new size in pixels
	SetSize(width, height int)

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Position returns the window position in screen coordinates.
	Position() common.Point

	// SetPosition moves the window.
	//
	// Parameters:
	//   - p: the new top-left position in screen coordinates
	SetPosition(p common.Point)

	// X returns the horizontal window position in screen coordinates.
	X() int

	// Y returns the vertical window position in screen coordinates.
	Y() int

	// SetIcon sets the window icon. The backend may scale the image to the sizes it needs.
	//
	// Parameters:
	//   - img: the icon image
	//
	// Returns:
	//   - error: error if the backend rejects the icon
	SetIcon(img image.Image) error

	// ClientToScreen converts a point in window coordinates into screen coordinates.
	ClientToScreen(p common.Point) common.Point

	// ScreenToClient converts a point in screen coordinates into window coordinates.
	ScreenToClient(p common.Point) common.Point

	// IsCursorShown reports whether the mouse cursor is visible.
	IsCursorShown() bool

	// ShowCursor makes the mouse cursor visible.
	ShowCursor()

	// HideCursor hides the mouse cursor while it is over the window.
	HideCursor()

	// MouseCursor returns the current system cursor shape.
	MouseCursor() common.MouseCursor

	// SetMouseCursor switches to a system cursor shape.
	//
	// Parameters:
	//   - cursor: the cursor shape
	SetMouseCursor(cursor common.MouseCursor)

	// IsRelativeMouseMode reports whether relative mouse mode is enabled.
	IsRelativeMouseMode() bool

	// SetRelativeMouseMode hides and confines the cursor and reports unbounded relative motion.
	//
	// Parameters:
	//   - enabled: whether relative mode should be on
	//
	// Returns:
	//   - error: ErrNotSupported (wrapped) if the backend cannot provide relative mode
	SetRelativeMouseMode(enabled bool) error

	// MousePosition returns the mouse position in window coordinates.
	MousePosition() mgl32.Vec2

	// SetMousePosition warps the mouse to a position in window coordinates.
	SetMousePosition(pos mgl32.Vec2)

	// ClipboardText returns the clipboard contents, or an empty string if it holds no text.
	ClipboardText() string

	// SetClipboardText replaces the clipboard contents.
	SetClipboardText(text string)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor
	//   - error: ErrUnsupportedDriver (wrapped) if the active video driver has no WebGPU surface mapping
	SurfaceDescriptor() (*wgpu.SurfaceDescriptor, error)

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error
}

// platformWindow is implemented once per Backend. It performs the native calls; engineWindow owns the
// engine-side state and the events.
type platformWindow interface {
	pumpEvents()
	title() string
	setTitle(title string) error
	size() (int, int)
	setSize(width, height int)
	position() (int, int)
	setPosition(x, y int)
	applyState(state WindowState)
	clearState()
	setIcon(images []image.Image) error
	cursorShown() bool
	showCursor(show bool)
	setCursor(cursor common.MouseCursor) error
	relativeMouseMode() bool
	setRelativeMouseMode(enabled bool) error
	mousePosition() mgl32.Vec2
	setMousePosition(pos mgl32.Vec2)
	clipboardText() string
	setClipboardText(text string) error
	surfaceDescriptor() (*wgpu.SurfaceDescriptor, error)
	destroy() error
}

// platformFactory creates the platform window for w after options have been applied.
type platformFactory func(w *engineWindow) (platformWindow, error)

var platformFactories = map[Backend]platformFactory{
	BackendGLFW: newGLFWWindow,
	BackendSDL:  newSDLWindow,
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, engine-side state, and events.
type engineWindow struct {
	// title is the initial window title displayed in the title bar.
	title string

	// maxWidth and maxHeight bound user resizing. Zero means unbounded.
	maxWidth, maxHeight int

	// minWidth and minHeight bound user resizing. Zero means unbounded.
	minWidth, minHeight int

	// width and height are the initial client area size in pixels.
	width, height int

	backend Backend
	state   WindowState
	icon    image.Image

	events  Events
	exists  bool
	closed  bool
	focused bool
	cursor  common.MouseCursor

	// platform performs the native calls for the selected backend.
	platform platformWindow
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if the backend is unknown or the native window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)

	factory, ok := platformFactories[w.backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, w.backend)
	}
	p, err := factory(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s window: %w", w.backend, err)
	}
	w.attach(p)
	return w, nil
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:   "Bliss",
		width:   1280,
		height:  720,
		backend: BackendGLFW,
		state:   StateResizable,
		cursor:  common.MouseCursorArrow,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// attach binds the native window and applies the icon. State flags are passed to the backend at creation.
func (w *engineWindow) attach(p platformWindow) {
	w.platform = p
	w.exists = true
	w.focused = true
	if w.icon != nil {
		if err := w.SetIcon(w.icon); err != nil {
			logger.Logger().Warn("failed to set window icon", "error", err)
		}
	}
}

func (w *engineWindow) Events() *Events {
	return &w.events
}

func (w *engineWindow) PumpEvents() {
	if !w.exists {
		return
	}
	w.platform.pumpEvents()
}

func (w *engineWindow) Exists() bool {
	return w.exists
}

func (w *engineWindow) IsFocused() bool {
	return w.focused
}

func (w *engineWindow) Backend() Backend {
	return w.backend
}

func (w *engineWindow) State() WindowState {
	return w.state
}

func (w *engineWindow) SetState(state WindowState) {
	w.state = state
	w.platform.applyState(state)
}

func (w *engineWindow) HasState(state WindowState) bool {
	return w.state.Has(state)
}

func (w *engineWindow) ClearState() {
	w.state = StateNone
	w.platform.clearState()
}

func (w *engineWindow) Title() string {
	return w.platform.title()
}

func (w *engineWindow) SetTitle(title string) {
	if err := w.platform.setTitle(title); err != nil {
		logger.Logger().Warn("failed to set window title", "backend", w.backend, "error", err)
	}
}

func (w *engineWindow) Size() (int, int) {
	return w.platform.size()
}

func (w *engineWindow) SetSize(width, height int) {
	w.platform.setSize(width, height)
}

func (w *engineWindow) Width() int {
	width, _ := w.Size()
	return width
}

func (w *engineWindow) Height() int {
	_, height := w.Size()
	return height
}

func (w *engineWindow) Position() common.Point {
	x, y := w.platform.position()
	return common.Point{X: x, Y: y}
}

func (w *engineWindow) SetPosition(p common.Point) {
	w.platform.setPosition(p.X, p.Y)
}

func (w *engineWindow) X() int {
	return w.Position().X
}

func (w *engineWindow) Y() int {
	return w.Position().Y
}

func (w *engineWindow) SetIcon(img image.Image) error {
	return w.platform.setIcon(iconSet(img))
}

func (w *engineWindow) ClientToScreen(p common.Point) common.Point {
	return p.Add(w.Position())
}

func (w *engineWindow) ScreenToClient(p common.Point) common.Point {
	return p.Sub(w.Position())
}

func (w *engineWindow) IsCursorShown() bool {
	return w.platform.cursorShown()
}

func (w *engineWindow) ShowCursor() {
	w.platform.showCursor(true)
}

func (w *engineWindow) HideCursor() {
	w.platform.showCursor(false)
}

func (w *engineWindow) MouseCursor() common.MouseCursor {
	return w.cursor
}

func (w *engineWindow) SetMouseCursor(cursor common.MouseCursor) {
	if err := w.platform.setCursor(cursor); err != nil {
		logger.Logger().Warn("failed to set mouse cursor", "cursor", cursor, "error", err)
		return
	}
	w.cursor = cursor
}

func (w *engineWindow) IsRelativeMouseMode() bool {
	return w.platform.relativeMouseMode()
}

func (w *engineWindow) SetRelativeMouseMode(enabled bool) error {
	return w.platform.setRelativeMouseMode(enabled)
}

func (w *engineWindow) MousePosition() mgl32.Vec2 {
	return w.platform.mousePosition()
}

func (w *engineWindow) SetMousePosition(pos mgl32.Vec2) {
	w.platform.setMousePosition(pos)
}

func (w *engineWindow) ClipboardText() string {
	return w.platform.clipboardText()
}

func (w *engineWindow) SetClipboardText(text string) {
	if err := w.platform.setClipboardText(text); err != nil {
		logger.Logger().Warn("failed to set clipboard text", "error", err)
	}
}

func (w *engineWindow) SurfaceDescriptor() (*wgpu.SurfaceDescriptor, error) {
	return w.platform.surfaceDescriptor()
}

func (w *engineWindow) Close() error {
	if w.platform == nil {
		return fmt.Errorf("window is not initialized")
	}
	if w.closed {
		return nil
	}
	w.closed = true
	w.exists = false
	return w.platform.destroy()
}

// The on* methods are called by backends while pumping events.

func (w *engineWindow) onQuit() {
	if !w.exists {
		return
	}
	w.exists = false
	w.events.Closed.Emit()
}

func (w *engineWindow) onFocus(focused bool) {
	w.focused = focused
	if focused {
		w.events.FocusGained.Emit()
		return
	}
	w.events.FocusLost.Emit()
}
