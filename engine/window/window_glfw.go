package window

import (
	"fmt"
	"image"
	"runtime"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent     *engineWindow
	window     *glfw.Window
	caption    string
	cursors    map[common.MouseCursor]*glfw.Cursor
	borderless bool

	// windowed remembers the placement to restore when leaving full screen.
	windowedX, windowedY, windowedW, windowedH int
}

var _ platformWindow = &glfwWindow{}

// newGLFWWindow creates the GLFW window with input callbacks.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newGLFWWindow(w *engineWindow) (platformWindow, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfwBool(w.state.Has(StateResizable)))
	glfw.WindowHint(glfw.Maximized, glfwBool(w.state.Has(StateMaximized)))
	glfw.WindowHint(glfw.Visible, glfwBool(!w.state.Has(StateHidden)))
	glfw.WindowHint(glfw.Floating, glfwBool(w.state.Has(StateAlwaysOnTop)))
	glfw.WindowHint(glfw.Decorated, glfwBool(!w.state.Has(StateBorderlessFullScreen)))

	var monitor *glfw.Monitor
	width, height := w.width, w.height
	if w.state.Has(StateFullScreen) {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, w.title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	gw := &glfwWindow{
		parent:    w,
		window:    win,
		caption:   w.title,
		cursors:   make(map[common.MouseCursor]*glfw.Cursor),
		windowedW: w.width,
		windowedH: w.height,
	}
	gw.windowedX, gw.windowedY = win.GetPos()
	gw.applyLimits()
	gw.registerCallbacks()

	if w.state.Has(StateBorderlessFullScreen) {
		gw.enterBorderless()
	}
	if w.state.Has(StateMinimized) {
		win.Iconify()
	}

	return gw, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (gw *glfwWindow) applyLimits() {
	limit := func(v int) int {
		if v <= 0 {
			return glfw.DontCare
		}
		return v
	}
	p := gw.parent
	gw.window.SetSizeLimits(limit(p.minWidth), limit(p.minHeight), limit(p.maxWidth), limit(p.maxHeight))
}

// registerCallbacks wires GLFW callbacks to the parent window's events. GLFW invokes them from
// glfw.PollEvents, so dispatch stays on the pumping goroutine.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
func (gw *glfwWindow) registerCallbacks() {
	win := gw.window
	ev := &gw.parent.events

	win.SetCloseCallback(func(_ *glfw.Window) {
		gw.parent.onQuit()
	})

	// Use framebuffer size callback for pixel-accurate resize events.
	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs from window size.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) {
		ev.Resized.Emit()
	})
	win.SetIconifyCallback(func(_ *glfw.Window, _ bool) {
		ev.Resized.Emit()
	})
	win.SetMaximizeCallback(func(_ *glfw.Window, _ bool) {
		ev.Resized.Emit()
	})

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		gw.parent.onFocus(focused)
	})
	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		ev.Moved.Emit(common.Point{X: x, Y: y})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		ev.Exposed.Emit()
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			ev.MouseEntered.Emit()
			return
		}
		ev.MouseLeft.Emit()
	})

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := mapGLFWKey(key)
		switch action {
		case glfw.Press:
			ev.KeyDown.Emit(KeyEvent{Key: k, Down: true})
		case glfw.Repeat:
			ev.KeyDown.Emit(KeyEvent{Key: k, Down: true, Repeat: true})
		case glfw.Release:
			ev.KeyUp.Emit(KeyEvent{Key: k})
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		ev.MouseWheel.Emit(mgl32.Vec2{float32(xoff), float32(yoff)})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mapGLFWMouseButton(button)
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			ev.MouseDown.Emit(MouseEvent{Button: b, Down: true})
		case glfw.Release:
			ev.MouseUp.Emit(MouseEvent{Button: b})
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		ev.MouseMove.Emit(mgl32.Vec2{float32(xpos), float32(ypos)})
	})

	win.SetDropCallback(func(_ *glfw.Window, names []string) {
		x, y := win.GetCursorPos()
		for _, name := range names {
			ev.DragDrop.Emit(DragDropEvent{X: int(x), Y: int(y), Path: name})
		}
	})
}

// pumpEvents polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func (gw *glfwWindow) pumpEvents() {
	glfw.PollEvents()
	if gw.window.ShouldClose() {
		gw.parent.onQuit()
	}
}

// title returns the last title set, since GLFW 3.3 has no getter.
func (gw *glfwWindow) title() string {
	return gw.caption
}

func (gw *glfwWindow) setTitle(title string) error {
	gw.window.SetTitle(title)
	gw.caption = title
	return nil
}

func (gw *glfwWindow) size() (int, int) {
	return gw.window.GetFramebufferSize()
}

func (gw *glfwWindow) setSize(width, height int) {
	gw.window.SetSize(width, height)
}

func (gw *glfwWindow) position() (int, int) {
	return gw.window.GetPos()
}

func (gw *glfwWindow) setPosition(x, y int) {
	gw.window.SetPos(x, y)
}

func (gw *glfwWindow) applyState(state WindowState) {
	win := gw.window
	if state.Has(StateResizable) {
		win.SetAttrib(glfw.Resizable, glfw.True)
	}
	if state.Has(StateFullScreen) {
		gw.rememberWindowed()
		monitor := glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		}
	}
	if state.Has(StateBorderlessFullScreen) {
		gw.rememberWindowed()
		gw.enterBorderless()
	}
	if state.Has(StateMaximized) {
		win.Maximize()
	}
	if state.Has(StateMinimized) {
		win.Iconify()
	}
	if state.Has(StateHidden) {
		win.Hide()
	}
	if state.Has(StateCaptureMouse) {
		logger.Logger().Debug("GLFW captures the mouse implicitly while a button is held")
	}
	if state.Has(StateAlwaysOnTop) {
		win.SetAttrib(glfw.Floating, glfw.True)
	}
}

func (gw *glfwWindow) clearState() {
	win := gw.window
	if win.GetMonitor() != nil || gw.borderless {
		win.SetMonitor(nil, gw.windowedX, gw.windowedY, gw.windowedW, gw.windowedH, 0)
	}
	gw.borderless = false
	win.SetAttrib(glfw.Resizable, glfw.False)
	win.SetAttrib(glfw.Decorated, glfw.True)
	win.SetAttrib(glfw.Floating, glfw.False)
	win.Restore()
	win.Show()
}

func (gw *glfwWindow) rememberWindowed() {
	if gw.window.GetMonitor() != nil || gw.borderless {
		return
	}
	gw.windowedX, gw.windowedY = gw.window.GetPos()
	gw.windowedW, gw.windowedH = gw.window.GetSize()
}

// enterBorderless covers the primary monitor with an undecorated window.
func (gw *glfwWindow) enterBorderless() {
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	if mode == nil {
		return
	}
	mx, my := monitor.GetPos()
	gw.borderless = true
	gw.window.SetAttrib(glfw.Decorated, glfw.False)
	gw.window.SetPos(mx, my)
	gw.window.SetSize(mode.Width, mode.Height)
}

func (gw *glfwWindow) setIcon(images []image.Image) error {
	gw.window.SetIcon(images)
	return nil
}

func (gw *glfwWindow) cursorShown() bool {
	return gw.window.GetInputMode(glfw.CursorMode) == glfw.CursorNormal
}

func (gw *glfwWindow) showCursor(show bool) {
	if show {
		gw.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	gw.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
}

func (gw *glfwWindow) setCursor(cursor common.MouseCursor) error {
	c, ok := gw.cursors[cursor]
	if !ok {
		shape, ok := glfwCursorShapes[cursor]
		if !ok {
			return fmt.Errorf("%w: cursor %d", ErrNotSupported, cursor)
		}
		c = glfw.CreateStandardCursor(shape)
		if c == nil {
			return fmt.Errorf("failed to create GLFW cursor %d", cursor)
		}
		gw.cursors[cursor] = c
	}
	gw.window.SetCursor(c)
	return nil
}

// glfwCursorShapes maps cursors onto the six standard shapes GLFW 3.3 provides.
var glfwCursorShapes = map[common.MouseCursor]glfw.StandardCursor{
	common.MouseCursorArrow:     glfw.ArrowCursor,
	common.MouseCursorIBeam:     glfw.IBeamCursor,
	common.MouseCursorCrosshair: glfw.CrosshairCursor,
	common.MouseCursorHand:      glfw.HandCursor,
	common.MouseCursorSizeWE:    glfw.HResizeCursor,
	common.MouseCursorSizeNS:    glfw.VResizeCursor,
}

func (gw *glfwWindow) relativeMouseMode() bool {
	return gw.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
}

func (gw *glfwWindow) setRelativeMouseMode(enabled bool) error {
	if !enabled {
		if glfw.RawMouseMotionSupported() {
			gw.window.SetInputMode(glfw.RawMouseMotion, glfw.False)
		}
		gw.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return nil
	}
	gw.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if !glfw.RawMouseMotionSupported() {
		return fmt.Errorf("%w: raw mouse motion", ErrNotSupported)
	}
	gw.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	return nil
}

func (gw *glfwWindow) mousePosition() mgl32.Vec2 {
	x, y := gw.window.GetCursorPos()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (gw *glfwWindow) setMousePosition(pos mgl32.Vec2) {
	gw.window.SetCursorPos(float64(pos.X()), float64(pos.Y()))
}

func (gw *glfwWindow) clipboardText() string {
	return glfw.GetClipboardString()
}

func (gw *glfwWindow) setClipboardText(text string) error {
	glfw.SetClipboardString(text)
	return nil
}

// surfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func (gw *glfwWindow) surfaceDescriptor() (*wgpu.SurfaceDescriptor, error) {
	desc := wgpuglfw.GetSurfaceDescriptor(gw.window)
	if desc == nil {
		return nil, fmt.Errorf("%w: glfw on %s", ErrUnsupportedDriver, runtime.GOOS)
	}
	return desc, nil
}

// destroy destroys the GLFW window and terminates the GLFW library.
func (gw *glfwWindow) destroy() error {
	for _, c := range gw.cursors {
		c.Destroy()
	}
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}
