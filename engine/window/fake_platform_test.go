package window

import (
	"errors"
	"image"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// fakePlatform records calls made by engineWindow so its behavior can be checked without a display.
type fakePlatform struct {
	caption   string
	titleErr  error
	w, h      int
	x, y      int
	applied   []WindowState
	cleared   int
	icons     []image.Image
	shown     bool
	cursor    common.MouseCursor
	relative  bool
	mouse     mgl32.Vec2
	clipboard string
	destroyed int
	pumpFn    func()
	relErr    error
	cursorErr error
}

var _ platformWindow = &fakePlatform{}

func (f *fakePlatform) pumpEvents() {
	if f.pumpFn != nil {
		f.pumpFn()
	}
}
func (f *fakePlatform) title() string { return f.caption }
func (f *fakePlatform) setTitle(title string) error {
	if f.titleErr != nil {
		return f.titleErr
	}
	f.caption = title
	return nil
}
func (f *fakePlatform) size() (int, int) { return f.w, f.h }
func (f *fakePlatform) setSize(width, height int) { f.w, f.h = width, height }
func (f *fakePlatform) position() (int, int) { return f.x, f.y }
func (f *fakePlatform) setPosition(x, y int) { f.x, f.y = x, y }
func (f *fakePlatform) applyState(state WindowState) { f.applied = append(f.applied, state) }
func (f *fakePlatform) clearState() { f.cleared++ }
func (f *fakePlatform) setIcon(imgs []image.Image) error {
	f.icons = imgs
	return nil
}
func (f *fakePlatform) cursorShown() bool { return f.shown }
func (f *fakePlatform) showCursor(s bool) { f.shown = s }
func (f *fakePlatform) setCursor(c common.MouseCursor) error {
	if f.cursorErr != nil {
		return f.cursorErr
	}
	f.cursor = c
	return nil
}
func (f *fakePlatform) relativeMouseMode() bool { return f.relative }
func (f *fakePlatform) setRelativeMouseMode(enabled bool) error {
	if f.relErr != nil {
		return f.relErr
	}
	f.relative = enabled
	return nil
}
func (f *fakePlatform) mousePosition() mgl32.Vec2 { return f.mouse }
func (f *fakePlatform) setMousePosition(pos mgl32.Vec2) { f.mouse = pos }
func (f *fakePlatform) clipboardText() string { return f.clipboard }
func (f *fakePlatform) setClipboardText(t string) error {
	f.clipboard = t
	return nil
}
func (f *fakePlatform) surfaceDescriptor() (*wgpu.SurfaceDescriptor, error) {
	return nil, errors.Join(ErrUnsupportedDriver, errors.New("fake"))
}
func (f *fakePlatform) destroy() error {
	f.destroyed++
	return nil
}

func newFakeWindow(options ...WindowBuilderOption) (*engineWindow, *fakePlatform) {
	w := newEngineWindow(options...)
	p := &fakePlatform{caption: w.title, w: w.width, h: w.height, shown: true}
	w.attach(p)
	return w, p
}
