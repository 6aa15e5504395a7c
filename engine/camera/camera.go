// Package camera provides a 2D camera whose view matrix feeds PrimitiveBatch.Begin.
package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// minZoom keeps the view matrix invertible.
const minZoom = 1e-4

type camera2D struct {
	mu *sync.Mutex

	position mgl32.Vec2
	offset   mgl32.Vec2
	rotation float32
	zoom     float32

	view    mgl32.Mat4
	inverse mgl32.Mat4
}

// Camera2D looks at a world position and maps it onto the screen.
//
// The world position is drawn at the screen offset. Rotation is in degrees and turns the world
// clockwise on a y-down screen. Zoom scales around the offset.
type Camera2D interface {
	// Position returns the world position the camera looks at.
	Position() mgl32.Vec2

	// Offset returns the screen position the looked-at world position is drawn at.
	Offset() mgl32.Vec2

	// Rotation returns the rotation in degrees.
	Rotation() float32

	// Zoom returns the zoom factor. 1 draws world units as pixels.
	Zoom() float32

	// SetPosition sets the world position the camera looks at.
	//
	// Parameters:
	//   - position: the world position
	SetPosition(position mgl32.Vec2)

	// SetOffset sets the screen position the looked-at world position is drawn at, usually the screen center.
	//
	// Parameters:
	//   - offset: the screen position in pixels
	SetOffset(offset mgl32.Vec2)

	// SetRotation sets the rotation in degrees.
	SetRotation(degrees float32)

	// SetZoom sets the zoom factor. Values at or below zero are clamped to a small positive zoom.
	SetZoom(zoom float32)

	// Move shifts the looked-at world position by delta.
	Move(delta mgl32.Vec2)

	// View returns the world-to-screen matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix, ready for PrimitiveBatch.Begin
	View() mgl32.Mat4

	// ScreenToWorld maps a screen position, such as the mouse position, into the world.
	//
	// Parameters:
	//   - screen: the position in screen pixels
	//
	// Returns:
	//   - mgl32.Vec2: the position in world units
	ScreenToWorld(screen mgl32.Vec2) mgl32.Vec2

	// WorldToScreen maps a world position onto the screen.
	//
	// Parameters:
	//   - world: the position in world units
	//
	// Returns:
	//   - mgl32.Vec2: the position in screen pixels
	WorldToScreen(world mgl32.Vec2) mgl32.Vec2
}

var _ Camera2D = &camera2D{}

// NewCamera2D creates a Camera2D at the world origin with zoom 1 and no offset or rotation.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera2D: the newly created camera
func NewCamera2D(options ...Camera2DBuilderOption) Camera2D {
	c := &camera2D{
		mu:   &sync.Mutex{},
		zoom: 1,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *camera2D) Position() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *camera2D) Offset() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

func (c *camera2D) Rotation() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *camera2D) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *camera2D) SetPosition(position mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateMatrices()
}

func (c *camera2D) SetOffset(offset mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = offset
	c.updateMatrices()
}

func (c *camera2D) SetRotation(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = degrees
	c.updateMatrices()
}

func (c *camera2D) SetZoom(zoom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
	c.updateMatrices()
}

func (c *camera2D) Move(delta mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.position.Add(delta)
	c.updateMatrices()
}

func (c *camera2D) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *camera2D) ScreenToWorld(screen mgl32.Vec2) mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverse.Mul4x1(screen.Vec4(0, 1)).Vec2()
}

func (c *camera2D) WorldToScreen(world mgl32.Vec2) mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Mul4x1(world.Vec4(0, 1)).Vec2()
}

// updateMatrices rebuilds the view as offset * zoom * rotation * -position and caches its inverse.
// Caller must hold the mutex.
func (c *camera2D) updateMatrices() {
	c.zoom = max(c.zoom, minZoom)
	c.view = mgl32.Translate3D(c.offset.X(), c.offset.Y(), 0).
		Mul4(mgl32.Scale3D(c.zoom, c.zoom, 1)).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.rotation))).
		Mul4(mgl32.Translate3D(-c.position.X(), -c.position.Y(), 0))
	c.inverse = c.view.Inv()
}
