package window

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSDLHandleEventIgnoresOtherWindows(t *testing.T) {
	w, _ := newFakeWindow(WithBackend(BackendSDL))
	sw := &sdlWindow{parent: w, id: 7}

	keys, moves, resizes := 0, 0, 0
	w.Events().KeyDown.Subscribe(func(KeyEvent) { keys++ })
	w.Events().MouseMove.Subscribe(func(mgl32.Vec2) { moves++ })
	w.Events().Resized.Subscribe(func() { resizes++ })

	for _, id := range []uint32{8, 7} {
		sw.handleEvent(&sdl.KeyboardEvent{
			Type:     sdl.KEYDOWN,
			WindowID: id,
			State:    sdl.PRESSED,
			Keysym:   sdl.Keysym{Scancode: sdl.SCANCODE_A},
		})
		sw.handleEvent(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, WindowID: id, X: 10, Y: 20})
		sw.handleEvent(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: id, Event: sdl.WINDOWEVENT_RESIZED})
	}

	assert.Equal(t, 1, keys)
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, resizes)
}

func TestEventWindowID(t *testing.T) {
	id, ok := eventWindowID(&sdl.DropEvent{Type: sdl.DROPFILE, WindowID: 3})
	assert.True(t, ok)
	assert.Equal(t, uint32(3), id)

	_, ok = eventWindowID(&sdl.QuitEvent{Type: sdl.QUIT})
	assert.False(t, ok)
}
