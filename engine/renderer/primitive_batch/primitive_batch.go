// Package primitive_batch draws untextured 2D shapes by collecting vertices on the CPU and submitting them
// to the renderer in as few draw calls as possible.
package primitive_batch

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/Carmen-Shannon/bliss/engine/renderer"
	"github.com/Carmen-Shannon/bliss/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/bliss/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/bliss/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PipelineKeyTriangleList  = "primitive_batch:triangle_list"
	PipelineKeyTriangleStrip = "primitive_batch:triangle_strip"
	PipelineKeyLineStrip     = "primitive_batch:line_strip"
)

// quadTemplate holds the unit quad corners. quadIndices turns them into two triangles.
var (
	quadTemplate = [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	quadIndices  = [6]int{0, 1, 2, 2, 1, 3}
)

// PrimitiveBatch collects lines, rectangles, circles and triangles between Begin and End.
//
// Vertices are flushed to the renderer when the primitive type changes, when the batch is full, and on End.
// Begin and End must be called inside a renderer frame.
type PrimitiveBatch interface {
	// Begin starts a batch. Nil matrices fall back to the identity view and a pixel-space orthographic
	// projection with the origin at the top-left of the surface.
	//
	// Parameters:
	//   - view: the view matrix, or nil
	//   - projection: the projection matrix, or nil
	//
	// Returns:
	//   - error: ErrAlreadyBegun if Begin was called without a matching End, or an error from the renderer
	Begin(view, projection *mgl32.Mat4) error

	// End flushes the remaining vertices and closes the batch.
	//
	// Returns:
	//   - error: ErrNotBegun if Begin was not called, or an error from the flush
	End() error

	// Flush submits the collected vertices as one draw call. It does nothing when the batch is empty.
	Flush() error

	// DrawCallCount returns the number of draw calls issued since the last Begin.
	DrawCallCount() int

	// Capacity returns the number of vertices the batch holds before it flushes.
	Capacity() int

	// DrawLine draws a line of the given thickness between start and end.
	DrawLine(start, end mgl32.Vec2, thickness float32, color mgl32.Vec4) error

	// DrawLineStrip draws a connected one pixel line through points. Fewer than two points draw nothing.
	DrawLineStrip(points []mgl32.Vec2, color mgl32.Vec4) error

	// DrawFilledRectangle draws a rectangle rotated around origin.
	//
	// Parameters:
	//   - rect: the rectangle, positioned at its origin
	//   - origin: the pivot relative to the top-left corner of rect
	//   - rotation: the rotation in degrees, clockwise on screen
	//   - color: the fill color
	//
	// Returns:
	//   - error: an error if the batch has not begun or the flush failed
	DrawFilledRectangle(rect common.Rectangle, origin mgl32.Vec2, rotation float32, color mgl32.Vec4) error

	// DrawRectangle draws the outline of rect with edges of the given thickness inside the rectangle.
	DrawRectangle(rect common.Rectangle, thickness float32, color mgl32.Vec4) error

	// DrawFilledCircle draws a circle as a fan of segments triangles. Fewer than three segments are raised to three.
	DrawFilledCircle(center mgl32.Vec2, radius float32, segments int, color mgl32.Vec4) error

	// DrawCircle draws the outline of a circle as a closed line strip.
	DrawCircle(center mgl32.Vec2, radius float32, segments int, color mgl32.Vec4) error

	// DrawFilledTriangle draws the triangle a, b, c.
	DrawFilledTriangle(a, b, c mgl32.Vec2, color mgl32.Vec4) error

	// DrawTriangleStrip draws a triangle strip through points. Fewer than three points draw nothing.
	DrawTriangleStrip(points []mgl32.Vec2, color mgl32.Vec4) error

	// Release frees the GPU buffers owned by the batch. Pipelines stay registered with the renderer.
	Release()
}

// primitiveBatch is the implementation of the PrimitiveBatch interface.
type primitiveBatch struct {
	renderer renderer.Renderer
	capacity int

	triangleList, triangleStrip, lineStrip pipeline.Pipeline
	projViewDescriptor                     wgpu.BindGroupLayoutDescriptor

	vertices []PrimitiveVertex2D
	count    int
	current  pipeline.Pipeline

	begun         bool
	drawCallCount int

	// queue writes land before the frame is submitted, so every Begin and every flush within a frame
	// needs its own buffer. Both pools are rewound when the renderer starts a new frame.
	poolFrame    uint64
	projViews    []bind_group_provider.BindGroupProvider
	projViewUsed int
	vertexBufs   []bind_group_provider.BindGroupProvider
	vertexUsed   int
	projView     bind_group_provider.BindGroupProvider
}

var _ PrimitiveBatch = &primitiveBatch{}

// NewPrimitiveBatch compiles the primitive shader and registers its three pipelines with r.
//
// Parameters:
//   - r: the renderer the batch submits to
//   - opts: optional builder options such as WithCapacity
//
// Returns:
//   - PrimitiveBatch: the new batch
//   - error: an error if the shader failed to compile or the pipelines failed to register
func NewPrimitiveBatch(r renderer.Renderer, opts ...PrimitiveBatchBuilderOption) (PrimitiveBatch, error) {
	b := &primitiveBatch{
		renderer: r,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.vertices = make([]PrimitiveVertex2D, b.capacity)

	vertex, err := shader.NewShader("primitive_batch:vertex", shader.ShaderTypeVertex, primitiveShaderSource)
	if err != nil {
		return nil, fmt.Errorf("primitive batch: %w", err)
	}
	fragment, err := shader.NewShader("primitive_batch:fragment", shader.ShaderTypeFragment, primitiveShaderSource)
	if err != nil {
		return nil, fmt.Errorf("primitive batch: %w", err)
	}

	newPipeline := func(key string, topology wgpu.PrimitiveTopology) pipeline.Pipeline {
		blend := pipeline.AlphaBlend
		return pipeline.NewPipeline(key,
			pipeline.WithVertexShader(vertex),
			pipeline.WithFragmentShader(fragment),
			pipeline.WithTopology(topology),
			pipeline.WithBlendState(&blend),
			pipeline.WithCullMode(wgpu.CullModeNone),
			pipeline.WithDepthCompare(wgpu.CompareFunctionLessEqual),
			pipeline.WithDepthWriteEnabled(false),
		)
	}
	b.triangleList = newPipeline(PipelineKeyTriangleList, wgpu.PrimitiveTopologyTriangleList)
	b.triangleStrip = newPipeline(PipelineKeyTriangleStrip, wgpu.PrimitiveTopologyTriangleStrip)
	b.lineStrip = newPipeline(PipelineKeyLineStrip, wgpu.PrimitiveTopologyLineStrip)
	b.projViewDescriptor = b.triangleList.BindGroupLayoutDescriptor(0)

	if err := r.RegisterPipelines(b.triangleList, b.triangleStrip, b.lineStrip); err != nil {
		return nil, fmt.Errorf("primitive batch: %w", err)
	}

	logger.Logger().Debug("primitive batch created", "capacity", b.capacity)
	return b, nil
}

func (b *primitiveBatch) DrawCallCount() int {
	return b.drawCallCount
}

func (b *primitiveBatch) Capacity() int {
	return b.capacity
}

func (b *primitiveBatch) Begin(view, projection *mgl32.Mat4) error {
	if b.begun {
		return ErrAlreadyBegun
	}

	v := mgl32.Ident4()
	if view != nil {
		v = *view
	}
	var p mgl32.Mat4
	if projection != nil {
		p = *projection
	} else {
		w, h := b.renderer.Size()
		p = common.OrthographicOffCenter(0, float32(w), float32(h), 0, 0, 1)
	}

	b.rewindPools()
	projView, err := b.acquireProjView()
	if err != nil {
		return fmt.Errorf("primitive batch begin: %w", err)
	}
	b.renderer.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: projView,
		Binding:  0,
		Data:     common.Mat4ToBytes(p.Mul4(v)),
	}})

	b.projView = projView
	b.begun = true
	b.drawCallCount = 0
	return nil
}

func (b *primitiveBatch) End() error {
	if !b.begun {
		return ErrNotBegun
	}
	b.begun = false
	return b.Flush()
}

func (b *primitiveBatch) Flush() error {
	if b.count == 0 || b.current == nil {
		return nil
	}

	vb, err := b.acquireVertexBuffer()
	if err != nil {
		return fmt.Errorf("primitive batch flush: %w", err)
	}
	if err := b.renderer.WriteVertexBuffer(vb, 0, common.SliceToBytes(b.vertices[:b.count])); err != nil {
		return fmt.Errorf("primitive batch flush: %w", err)
	}
	err = b.renderer.Draw(b.current.PipelineKey(), vb, uint32(b.count), 0, []bind_group_provider.BindGroupProvider{b.projView})

	b.count = 0
	b.current = nil
	if err != nil {
		return fmt.Errorf("primitive batch flush: %w", err)
	}
	b.drawCallCount++
	return nil
}

func (b *primitiveBatch) DrawLine(start, end mgl32.Vec2, thickness float32, color mgl32.Vec4) error {
	delta := end.Sub(start)
	length := delta.Len()
	if length == 0 {
		return b.checkBegun()
	}
	angle := float32(math.Atan2(float64(delta.Y()), float64(delta.X())))
	quad := b.quad(start, mgl32.Vec2{length, thickness}, mgl32.Vec2{0, thickness / 2}, angle, color)
	return b.addVertices(b.triangleList, quad[:])
}

func (b *primitiveBatch) DrawLineStrip(points []mgl32.Vec2, color mgl32.Vec4) error {
	if len(points) < 2 {
		return b.checkBegun()
	}
	return b.addVertices(b.lineStrip, colored(points, color))
}

func (b *primitiveBatch) DrawFilledRectangle(rect common.Rectangle, origin mgl32.Vec2, rotation float32, color mgl32.Vec4) error {
	quad := b.quad(rect.Position(), rect.Extent(), origin, mgl32.DegToRad(rotation), color)
	return b.addVertices(b.triangleList, quad[:])
}

func (b *primitiveBatch) DrawRectangle(rect common.Rectangle, thickness float32, color mgl32.Vec4) error {
	t := min(thickness, rect.Width/2, rect.Height/2)
	if t <= 0 {
		return b.checkBegun()
	}
	edges := [4]common.Rectangle{
		{X: rect.X, Y: rect.Y, Width: rect.Width, Height: t},
		{X: rect.X, Y: rect.Y + rect.Height - t, Width: rect.Width, Height: t},
		{X: rect.X, Y: rect.Y + t, Width: t, Height: rect.Height - 2*t},
		{X: rect.X + rect.Width - t, Y: rect.Y + t, Width: t, Height: rect.Height - 2*t},
	}
	verts := make([]PrimitiveVertex2D, 0, len(edges)*len(quadIndices))
	for _, edge := range edges {
		quad := b.quad(edge.Position(), edge.Extent(), mgl32.Vec2{}, 0, color)
		verts = append(verts, quad[:]...)
	}
	return b.addVertices(b.triangleList, verts)
}

func (b *primitiveBatch) DrawFilledCircle(center mgl32.Vec2, radius float32, segments int, color mgl32.Vec4) error {
	ring := circlePoints(center, radius, segments)
	verts := make([]PrimitiveVertex2D, 0, (len(ring)-1)*3)
	for i := 0; i < len(ring)-1; i++ {
		verts = append(verts,
			PrimitiveVertex2D{Position: center, Color: color},
			PrimitiveVertex2D{Position: ring[i], Color: color},
			PrimitiveVertex2D{Position: ring[i+1], Color: color},
		)
	}
	return b.addVertices(b.triangleList, verts)
}

func (b *primitiveBatch) DrawCircle(center mgl32.Vec2, radius float32, segments int, color mgl32.Vec4) error {
	return b.addVertices(b.lineStrip, colored(circlePoints(center, radius, segments), color))
}

func (b *primitiveBatch) DrawFilledTriangle(p1, p2, p3 mgl32.Vec2, color mgl32.Vec4) error {
	return b.addVertices(b.triangleList, colored([]mgl32.Vec2{p1, p2, p3}, color))
}

func (b *primitiveBatch) DrawTriangleStrip(points []mgl32.Vec2, color mgl32.Vec4) error {
	if len(points) < 3 {
		return b.checkBegun()
	}
	return b.addVertices(b.triangleStrip, colored(points, color))
}

func (b *primitiveBatch) Release() {
	for _, p := range b.projViews {
		p.Release()
	}
	for _, p := range b.vertexBufs {
		p.Release()
	}
	b.projViews = nil
	b.vertexBufs = nil
	b.projView = nil
	b.projViewUsed = 0
	b.vertexUsed = 0
}

func (b *primitiveBatch) checkBegun() error {
	if !b.begun {
		return ErrNotBegun
	}
	return nil
}

// addVertices appends verts drawn with p, flushing first when p differs from the pending pipeline,
// when p is a strip that already holds vertices, or when verts would not fit.
func (b *primitiveBatch) addVertices(p pipeline.Pipeline, verts []PrimitiveVertex2D) error {
	if !b.begun {
		return ErrNotBegun
	}
	if len(verts) == 0 {
		return nil
	}
	if len(verts) > b.capacity {
		return fmt.Errorf("%w: %d vertices, capacity %d", ErrCapacityExceeded, len(verts), b.capacity)
	}

	strip := p.Topology() != wgpu.PrimitiveTopologyTriangleList
	if b.current != p || (strip && b.count > 0) || b.count+len(verts) > b.capacity {
		if err := b.Flush(); err != nil {
			return err
		}
	}

	b.current = p
	b.count += copy(b.vertices[b.count:], verts)
	return nil
}

// quad expands the unit quad template into two triangles covering size, rotated by angle radians around origin
// and translated to position.
func (b *primitiveBatch) quad(position, size, origin mgl32.Vec2, angle float32, color mgl32.Vec4) [6]PrimitiveVertex2D {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)

	var corners [4]mgl32.Vec2
	for i, t := range quadTemplate {
		local := mgl32.Vec2{t.X()*size.X() - origin.X(), t.Y()*size.Y() - origin.Y()}
		corners[i] = mgl32.Vec2{
			position.X() + local.X()*c - local.Y()*s,
			position.Y() + local.X()*s + local.Y()*c,
		}
	}

	var out [6]PrimitiveVertex2D
	for i, idx := range quadIndices {
		out[i] = PrimitiveVertex2D{Position: corners[idx], Color: color}
	}
	return out
}

func (b *primitiveBatch) rewindPools() {
	frame := b.renderer.FrameIndex()
	if frame == b.poolFrame {
		return
	}
	b.poolFrame = frame
	b.projViewUsed = 0
	b.vertexUsed = 0
}

func (b *primitiveBatch) acquireProjView() (bind_group_provider.BindGroupProvider, error) {
	if b.projViewUsed < len(b.projViews) {
		p := b.projViews[b.projViewUsed]
		b.projViewUsed++
		return p, nil
	}
	p := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("primitive_batch:proj_view:%d", len(b.projViews)))
	if err := b.renderer.InitBindGroup(p, b.projViewDescriptor, nil, nil); err != nil {
		p.Release()
		return nil, err
	}
	b.projViews = append(b.projViews, p)
	b.projViewUsed++
	return p, nil
}

func (b *primitiveBatch) acquireVertexBuffer() (bind_group_provider.BindGroupProvider, error) {
	if b.vertexUsed < len(b.vertexBufs) {
		p := b.vertexBufs[b.vertexUsed]
		b.vertexUsed++
		return p, nil
	}
	p := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("primitive_batch:vertices:%d", len(b.vertexBufs)))
	if err := b.renderer.InitVertexBuffer(p, uint64(b.capacity*PrimitiveVertex2DSize)); err != nil {
		p.Release()
		return nil, err
	}
	b.vertexBufs = append(b.vertexBufs, p)
	b.vertexUsed++
	return p, nil
}

func colored(points []mgl32.Vec2, color mgl32.Vec4) []PrimitiveVertex2D {
	out := make([]PrimitiveVertex2D, len(points))
	for i, p := range points {
		out[i] = PrimitiveVertex2D{Position: p, Color: color}
	}
	return out
}

// circlePoints returns segments+1 points around the circle, the last equal to the first.
func circlePoints(center mgl32.Vec2, radius float32, segments int) []mgl32.Vec2 {
	segments = max(segments, 3)
	out := make([]mgl32.Vec2, segments+1)
	step := 2 * math.Pi / float64(segments)
	for i := range segments {
		sin, cos := math.Sincos(step * float64(i))
		out[i] = mgl32.Vec2{center.X() + radius*float32(cos), center.Y() + radius*float32(sin)}
	}
	out[segments] = out[0]
	return out
}
