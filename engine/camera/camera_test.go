package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec2(t *testing.T, expected, actual mgl32.Vec2) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-3)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-3)
}

func TestNewCamera2D(t *testing.T) {
	c := NewCamera2D()
	assert.Equal(t, float32(1), c.Zoom())
	assert.Equal(t, mgl32.Ident4(), c.View())

	c = NewCamera2D(WithPosition(10, 20), WithOffset(400, 300), WithRotation(45), WithZoom(2))
	assert.Equal(t, mgl32.Vec2{10, 20}, c.Position())
	assert.Equal(t, mgl32.Vec2{400, 300}, c.Offset())
	assert.Equal(t, float32(45), c.Rotation())
	assert.Equal(t, float32(2), c.Zoom())
}

func TestWorldToScreen(t *testing.T) {
	t.Run("position lands on offset", func(t *testing.T) {
		c := NewCamera2D(WithPosition(100, 50), WithOffset(400, 300), WithRotation(30), WithZoom(3))
		assertVec2(t, mgl32.Vec2{400, 300}, c.WorldToScreen(mgl32.Vec2{100, 50}))
	})

	t.Run("zoom scales around offset", func(t *testing.T) {
		c := NewCamera2D(WithOffset(400, 300), WithZoom(2))
		assertVec2(t, mgl32.Vec2{420, 300}, c.WorldToScreen(mgl32.Vec2{10, 0}))
	})

	t.Run("rotation turns clockwise on screen", func(t *testing.T) {
		c := NewCamera2D(WithRotation(90))
		assertVec2(t, mgl32.Vec2{0, 10}, c.WorldToScreen(mgl32.Vec2{10, 0}))
	})

	t.Run("move follows the target", func(t *testing.T) {
		c := NewCamera2D()
		c.Move(mgl32.Vec2{5, 5})
		c.Move(mgl32.Vec2{1, -2})
		assert.Equal(t, mgl32.Vec2{6, 3}, c.Position())
		assertVec2(t, mgl32.Vec2{}, c.WorldToScreen(mgl32.Vec2{6, 3}))
	})
}

func TestScreenToWorld(t *testing.T) {
	c := NewCamera2D(WithPosition(-30, 12), WithOffset(640, 360), WithRotation(-20), WithZoom(0.5))

	for _, p := range []mgl32.Vec2{{0, 0}, {640, 360}, {1280, 720}, {17, 900}} {
		assertVec2(t, p, c.WorldToScreen(c.ScreenToWorld(p)))
	}

	c.SetZoom(0)
	assert.Greater(t, c.Zoom(), float32(0))
	assert.NotEqual(t, float32(0), c.View().Det())
}
