package window

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlEventsPerPeep is the number of events drained from the SDL queue per PeepEvents call.
const sdlEventsPerPeep = 64

// sdlWindow holds the SDL2-specific window state.
type sdlWindow struct {
	parent  *engineWindow
	window  *sdl.Window
	id      uint32
	events  []sdl.Event
	cursors map[common.MouseCursor]*sdl.Cursor
}

var _ platformWindow = &sdlWindow{}

// newSDLWindow initializes the SDL video subsystem and opens the window.
//
// go-sdl2: https://pkg.go.dev/github.com/veandco/go-sdl2/sdl
func newSDLWindow(w *engineWindow) (platformWindow, error) {
	runtime.LockOSThread()

	sdl.SetHint(sdl.HINT_MOUSE_FOCUS_CLICKTHROUGH, "1")
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	win, err := sdl.CreateWindow(w.title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(w.width), int32(w.height), sdlWindowFlags(w.state))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create SDL window: %w", err)
	}

	id, err := win.GetID()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to query SDL window id: %w", err)
	}

	if w.minWidth > 0 || w.minHeight > 0 {
		win.SetMinimumSize(int32(w.minWidth), int32(w.minHeight))
	}
	if w.maxWidth > 0 || w.maxHeight > 0 {
		win.SetMaximumSize(int32(w.maxWidth), int32(w.maxHeight))
	}

	return &sdlWindow{
		parent:  w,
		window:  win,
		id:      id,
		events:  make([]sdl.Event, sdlEventsPerPeep),
		cursors: make(map[common.MouseCursor]*sdl.Cursor),
	}, nil
}

// sdlWindowFlags combines the SDL creation flags for every set state flag.
func sdlWindowFlags(state WindowState) uint32 {
	var flags uint32
	if state.Has(StateResizable) {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if state.Has(StateFullScreen) {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if state.Has(StateBorderlessFullScreen) {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if state.Has(StateMaximized) {
		flags |= sdl.WINDOW_MAXIMIZED
	}
	if state.Has(StateMinimized) {
		flags |= sdl.WINDOW_MINIMIZED
	}
	if state.Has(StateHidden) {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}
	if state.Has(StateCaptureMouse) {
		flags |= sdl.WINDOW_MOUSE_CAPTURE
	}
	if state.Has(StateAlwaysOnTop) {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	return flags
}

// pumpEvents pumps the SDL queue and drains it in batches until a batch comes back short.
func (sw *sdlWindow) pumpEvents() {
	sdl.PumpEvents()
	for {
		n, err := sdl.PeepEvents(sw.events, sdl.GETEVENT, sdl.FIRSTEVENT, sdl.LASTEVENT)
		if err != nil {
			logger.Logger().Error("failed to peep SDL events", "error", err)
			return
		}
		for i := 0; i < n; i++ {
			sw.handleEvent(sw.events[i])
		}
		if n < sdlEventsPerPeep {
			return
		}
	}
}

func (sw *sdlWindow) handleEvent(event sdl.Event) {
	if id, ok := eventWindowID(event); ok && id != sw.id {
		return
	}

	ev := &sw.parent.events
	switch e := event.(type) {
	case *sdl.QuitEvent:
		sw.parent.onQuit()

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_MINIMIZED,
			sdl.WINDOWEVENT_MAXIMIZED, sdl.WINDOWEVENT_RESTORED:
			ev.Resized.Emit()
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			sw.parent.onFocus(true)
		case sdl.WINDOWEVENT_FOCUS_LOST:
			sw.parent.onFocus(false)
		case sdl.WINDOWEVENT_SHOWN:
			ev.Shown.Emit()
		case sdl.WINDOWEVENT_HIDDEN:
			ev.Hidden.Emit()
		case sdl.WINDOWEVENT_ENTER:
			ev.MouseEntered.Emit()
		case sdl.WINDOWEVENT_LEAVE:
			ev.MouseLeft.Emit()
		case sdl.WINDOWEVENT_EXPOSED:
			ev.Exposed.Emit()
		case sdl.WINDOWEVENT_MOVED:
			ev.Moved.Emit(common.Point{X: int(e.Data1), Y: int(e.Data2)})
		case sdl.WINDOWEVENT_CLOSE:
			sw.parent.onQuit()
		}

	case *sdl.MouseWheelEvent:
		delta := mgl32.Vec2{float32(e.X), float32(e.Y)}
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = delta.Mul(-1)
		}
		ev.MouseWheel.Emit(delta)

	case *sdl.MouseMotionEvent:
		ev.MouseMove.Emit(mgl32.Vec2{float32(e.X), float32(e.Y)})

	case *sdl.MouseButtonEvent:
		b, ok := mapSDLMouseButton(e.Button)
		if !ok {
			return
		}
		me := MouseEvent{Button: b, Down: e.State == sdl.PRESSED}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.MouseDown.Emit(me)
		} else {
			ev.MouseUp.Emit(me)
		}

	case *sdl.KeyboardEvent:
		ke := KeyEvent{
			Key:    mapSDLScancode(e.Keysym.Scancode),
			Down:   e.State == sdl.PRESSED,
			Repeat: e.Repeat != 0,
		}
		if e.Type == sdl.KEYDOWN {
			ev.KeyDown.Emit(ke)
		} else {
			ev.KeyUp.Emit(ke)
		}

	case *sdl.DropEvent:
		if e.Type != sdl.DROPFILE {
			return
		}
		x, y, _ := sdl.GetMouseState()
		ev.DragDrop.Emit(DragDropEvent{X: int(x), Y: int(y), Path: e.File})
	}
}

// eventWindowID returns the window an event is addressed to.
// ok is false for events that are not tied to a window, such as SDL_QUIT.
func eventWindowID(event sdl.Event) (id uint32, ok bool) {
	switch e := event.(type) {
	case *sdl.WindowEvent:
		return e.WindowID, true
	case *sdl.MouseWheelEvent:
		return e.WindowID, true
	case *sdl.MouseMotionEvent:
		return e.WindowID, true
	case *sdl.MouseButtonEvent:
		return e.WindowID, true
	case *sdl.KeyboardEvent:
		return e.WindowID, true
	case *sdl.DropEvent:
		return e.WindowID, true
	}
	return 0, false
}

func (sw *sdlWindow) title() string {
	return sw.window.GetTitle()
}

func (sw *sdlWindow) setTitle(title string) error {
	sw.window.SetTitle(title)
	if got := sw.window.GetTitle(); got != title {
		return fmt.Errorf("window %d kept title %q: %v", sw.id, got, sdl.GetError())
	}
	return nil
}

func (sw *sdlWindow) size() (int, int) {
	w, h := sw.window.GetSize()
	return int(w), int(h)
}

func (sw *sdlWindow) setSize(width, height int) {
	sw.window.SetSize(int32(width), int32(height))
}

func (sw *sdlWindow) position() (int, int) {
	x, y := sw.window.GetPosition()
	return int(x), int(y)
}

func (sw *sdlWindow) setPosition(x, y int) {
	sw.window.SetPosition(int32(x), int32(y))
}

func (sw *sdlWindow) applyState(state WindowState) {
	win := sw.window
	if state.Has(StateResizable) {
		win.SetResizable(true)
	}
	if state.Has(StateFullScreen) {
		if err := win.SetFullscreen(sdl.WINDOW_FULLSCREEN); err != nil {
			logger.Logger().Warn("failed to enter full screen", "window", sw.id, "error", err)
		}
	}
	if state.Has(StateBorderlessFullScreen) {
		if err := win.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			logger.Logger().Warn("failed to enter borderless full screen", "window", sw.id, "error", err)
		}
	}
	if state.Has(StateMaximized) {
		win.Maximize()
	}
	if state.Has(StateMinimized) {
		win.Minimize()
	}
	if state.Has(StateHidden) {
		win.Hide()
	}
	if state.Has(StateCaptureMouse) {
		if err := sdl.CaptureMouse(true); err != nil {
			logger.Logger().Warn("failed to capture mouse", "window", sw.id, "error", err)
		}
	}
	if state.Has(StateAlwaysOnTop) {
		win.SetAlwaysOnTop(true)
	}
}

func (sw *sdlWindow) clearState() {
	win := sw.window
	win.SetResizable(false)
	if err := win.SetFullscreen(0); err != nil {
		logger.Logger().Warn("failed to leave full screen", "window", sw.id, "error", err)
	}
	win.SetBordered(true)
	win.Show()
	_ = sdl.CaptureMouse(false)
	win.SetAlwaysOnTop(false)
}

// setIcon uploads the largest image of the set. SDL picks its own scaled variants.
func (sw *sdlWindow) setIcon(images []image.Image) error {
	if len(images) == 0 {
		return nil
	}
	img := toNRGBA(images[0])
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride), sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return fmt.Errorf("failed to create SDL icon surface: %w", err)
	}
	sw.window.SetIcon(surface)
	surface.Free()
	runtime.KeepAlive(img)
	return nil
}

func (sw *sdlWindow) cursorShown() bool {
	shown, err := sdl.ShowCursor(sdl.QUERY)
	return err == nil && shown == sdl.ENABLE
}

func (sw *sdlWindow) showCursor(show bool) {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		logger.Logger().Warn("failed to toggle cursor", "show", show, "error", err)
	}
}

var sdlSystemCursors = map[common.MouseCursor]sdl.SystemCursor{
	common.MouseCursorArrow:     sdl.SYSTEM_CURSOR_ARROW,
	common.MouseCursorIBeam:     sdl.SYSTEM_CURSOR_IBEAM,
	common.MouseCursorWait:      sdl.SYSTEM_CURSOR_WAIT,
	common.MouseCursorCrosshair: sdl.SYSTEM_CURSOR_CROSSHAIR,
	common.MouseCursorWaitArrow: sdl.SYSTEM_CURSOR_WAITARROW,
	common.MouseCursorSizeNWSE:  sdl.SYSTEM_CURSOR_SIZENWSE,
	common.MouseCursorSizeNESW:  sdl.SYSTEM_CURSOR_SIZENESW,
	common.MouseCursorSizeWE:    sdl.SYSTEM_CURSOR_SIZEWE,
	common.MouseCursorSizeNS:    sdl.SYSTEM_CURSOR_SIZENS,
	common.MouseCursorSizeAll:   sdl.SYSTEM_CURSOR_SIZEALL,
	common.MouseCursorNo:        sdl.SYSTEM_CURSOR_NO,
	common.MouseCursorHand:      sdl.SYSTEM_CURSOR_HAND,
}

func (sw *sdlWindow) setCursor(cursor common.MouseCursor) error {
	c, ok := sw.cursors[cursor]
	if !ok {
		id, ok := sdlSystemCursors[cursor]
		if !ok {
			return fmt.Errorf("%w: cursor %d", ErrNotSupported, cursor)
		}
		c = sdl.CreateSystemCursor(id)
		if c == nil {
			return fmt.Errorf("failed to create SDL cursor %d: %v", cursor, sdl.GetError())
		}
		sw.cursors[cursor] = c
	}
	sdl.SetCursor(c)
	return nil
}

func (sw *sdlWindow) relativeMouseMode() bool {
	return sdl.GetRelativeMouseMode()
}

func (sw *sdlWindow) setRelativeMouseMode(enabled bool) error {
	if sdl.SetRelativeMouseMode(enabled) < 0 {
		return fmt.Errorf("%w: relative mouse mode: %v", ErrNotSupported, sdl.GetError())
	}
	return nil
}

func (sw *sdlWindow) mousePosition() mgl32.Vec2 {
	x, y, _ := sdl.GetMouseState()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (sw *sdlWindow) setMousePosition(pos mgl32.Vec2) {
	sw.window.WarpMouseInWindow(int32(pos.X()), int32(pos.Y()))
}

func (sw *sdlWindow) clipboardText() string {
	text, err := sdl.GetClipboardText()
	if err != nil {
		return ""
	}
	return text
}

func (sw *sdlWindow) setClipboardText(text string) error {
	return sdl.SetClipboardText(text)
}

// surfaceDescriptor maps the SDL window manager handles onto a WebGPU surface.
// X11 and Win32 are supported; other drivers return ErrUnsupportedDriver.
func (sw *sdlWindow) surfaceDescriptor() (*wgpu.SurfaceDescriptor, error) {
	info, err := sw.window.GetWMInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to query SDL window manager info: %w", err)
	}
	switch info.Subsystem {
	case sdl.SYSWM_X11:
		x11 := info.GetX11Info()
		return &wgpu.SurfaceDescriptor{
			XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{
				Display: x11.Display,
				Window:  uint32(x11.Window),
			},
		}, nil
	case sdl.SYSWM_WINDOWS:
		win := info.GetWindowsInfo()
		return &wgpu.SurfaceDescriptor{
			WindowsHWND: &wgpu.SurfaceDescriptorFromWindowsHWND{
				Hinstance: moduleHandle(),
				Hwnd:      win.Window,
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: SDL subsystem %d", ErrUnsupportedDriver, info.Subsystem)
}

func (sw *sdlWindow) destroy() error {
	for _, c := range sw.cursors {
		sdl.FreeCursor(c)
	}
	err := sw.window.Destroy()
	sdl.Quit()
	if err != nil {
		return fmt.Errorf("failed to destroy SDL window: %w", err)
	}
	return nil
}
