package camera

import "github.com/go-gl/mathgl/mgl32"

type Camera2DBuilderOption func(*camera2D)

// WithPosition sets the world position the camera looks at.
//
// Parameters:
//   - x, y: the world position
//
// Returns:
//   - Camera2DBuilderOption: a function that sets the camera's position
func WithPosition(x, y float32) Camera2DBuilderOption {
	return func(c *camera2D) {
		c.position = mgl32.Vec2{x, y}
	}
}

// WithOffset sets the screen position the looked-at world position is drawn at.
//
// Parameters:
//   - x, y: the screen position in pixels
//
// Returns:
//   - Camera2DBuilderOption: a function that sets the camera's offset
func WithOffset(x, y float32) Camera2DBuilderOption {
	return func(c *camera2D) {
		c.offset = mgl32.Vec2{x, y}
	}
}

// WithRotation sets the rotation in degrees.
func WithRotation(degrees float32) Camera2DBuilderOption {
	return func(c *camera2D) {
		c.rotation = degrees
	}
}

// WithZoom sets the zoom factor.
func WithZoom(zoom float32) Camera2DBuilderOption {
	return func(c *camera2D) {
		c.zoom = zoom
	}
}
