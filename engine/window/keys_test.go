package window

import (
	"testing"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestMapGLFWKey(t *testing.T) {
	assert.Equal(t, common.KeyA, mapGLFWKey(glfw.KeyA))
	assert.Equal(t, common.KeyPlus, mapGLFWKey(glfw.KeyEqual))
	assert.Equal(t, common.KeyKeypadEnter, mapGLFWKey(glfw.KeyKPEnter))
	assert.Equal(t, common.KeyWinRight, mapGLFWKey(glfw.KeyRightSuper))
	assert.Equal(t, common.KeyUnknown, mapGLFWKey(glfw.KeyF25))
	assert.Equal(t, common.KeyUnknown, mapGLFWKey(glfw.KeyUnknown))
}

func TestMapSDLScancode(t *testing.T) {
	assert.Equal(t, common.KeyZ, mapSDLScancode(sdl.SCANCODE_Z))
	assert.Equal(t, common.KeyNumber0, mapSDLScancode(sdl.SCANCODE_0))
	assert.Equal(t, common.KeyTilde, mapSDLScancode(sdl.SCANCODE_GRAVE))
	assert.Equal(t, common.KeyKeypadPlus, mapSDLScancode(sdl.SCANCODE_KP_EQUALS))
	assert.Equal(t, common.KeyUnknown, mapSDLScancode(sdl.SCANCODE_UNKNOWN))
}

func TestKeyMapsCoverSameKeys(t *testing.T) {
	fromGLFW := map[common.KeyboardKey]bool{}
	for _, k := range glfwKeys {
		fromGLFW[k] = true
	}
	for _, k := range sdlScancodes {
		assert.True(t, fromGLFW[k], "key %d is reachable from SDL but not GLFW", k)
	}
}

func TestMapMouseButtons(t *testing.T) {
	b, ok := mapGLFWMouseButton(glfw.MouseButton4)
	assert.True(t, ok)
	assert.Equal(t, common.MouseButtonX1, b)
	_, ok = mapGLFWMouseButton(glfw.MouseButton8)
	assert.False(t, ok)

	b, ok = mapSDLMouseButton(sdl.BUTTON_RIGHT)
	assert.True(t, ok)
	assert.Equal(t, common.MouseButtonRight, b)
	_, ok = mapSDLMouseButton(9)
	assert.False(t, ok)
}

func TestSDLWindowFlags(t *testing.T) {
	flags := sdlWindowFlags(StateResizable | StateHidden)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.NotZero(t, flags&sdl.WINDOW_HIDDEN)
	assert.Zero(t, flags&sdl.WINDOW_SHOWN)

	flags = sdlWindowFlags(StateNone)
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
}
