package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/bliss/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/bliss/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	width, height int
	frameIndex    uint64
	drawCalls     int
	inFrame       bool
	released      bool

	// collected from builder options before the backend exists
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           mgl32.Vec4
}

// Renderer is the graphics device and command list of the engine.
//
// It owns the surface, a cache of registered pipelines and the current frame's render pass.
// A frame is BeginFrame, any number of Draw and DrawCall, EndFrame and Present.
// GPU resources are created on BindGroupProviders, which own and release them.
type Renderer interface {
	// Pipeline retrieves a registered Pipeline, or nil if the key is unknown.
	//
	// Parameters:
	//   - key: the pipeline key
	//
	// Returns:
	//   - pipeline.Pipeline: the registered Pipeline, or nil
	Pipeline(key string) pipeline.Pipeline

	// Pipelines returns a copy of the pipeline cache.
	Pipelines() map[string]pipeline.Pipeline

	// RegisterPipelines creates the GPU objects for one or more pipelines and caches them by key.
	// Keys that are already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if a pipeline has no shaders or the GPU object cannot be created
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize reconfigures the surface and its attachments for a new size.
	// Zero or negative sizes are ignored, which happens while a window is minimized.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	//
	// Returns:
	//   - error: an error if the attachments cannot be recreated
	Resize(width, height int) error

	// Size returns the configured surface size in pixels.
	Size() (int, int)

	// InitMeshBuffers uploads static vertex and index data to new GPU buffers on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider that owns the buffers
	//   - vertexData: the raw vertex bytes
	//   - indexData: the raw uint32 index bytes
	//   - indexCount: the number of indices
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitVertexBuffer creates an empty, writable vertex buffer of the given size on the provider.
	// An existing buffer of at least that size is kept.
	//
	// Parameters:
	//   - provider: the BindGroupProvider that owns the buffer
	//   - size: the buffer size in bytes
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitVertexBuffer(provider bind_group_provider.BindGroupProvider, size uint64) error

	// WriteVertexBuffer writes data into the provider's vertex buffer through the queue.
	//
	// Parameters:
	//   - provider: the BindGroupProvider holding the vertex buffer
	//   - offset: the byte offset to write at
	//   - data: the bytes to write
	//
	// Returns:
	//   - error: an error if the provider has no vertex buffer or the write overflows it
	WriteVertexBuffer(provider bind_group_provider.BindGroupProvider, offset uint64, data []byte) error

	// InitBindGroup creates buffers for the buffer entries of a layout and a bind group over them.
	// Texture views and samplers must be created first with InitTextureView and InitSampler.
	//
	// Parameters:
	//   - provider: the BindGroupProvider that owns the bind group
	//   - descriptor: the layout descriptor of the group
	//   - bufferUsageOverrides: extra usage flags keyed by binding (nil safe)
	//   - bufferSizeOverrides: buffer sizes that replace MinBindingSize, keyed by binding (nil safe)
	//
	// Returns:
	//   - error: an error if a resource is missing or GPU creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error

	// InitTextureView uploads RGBA pixels to a new texture and stores the texture and its view on the
	// provider at a binding.
	//
	// Parameters:
	//   - provider: the BindGroupProvider that owns the texture
	//   - bindingKey: the binding index of the texture
	//   - stagingData: the pixels and dimensions
	//
	// Returns:
	//   - error: an error if the staging data is empty or texture creation fails
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// InitSampler creates a sampler and stores it on the provider at a binding.
	//
	// Parameters:
	//   - provider: the BindGroupProvider that owns the sampler
	//   - bindingKey: the binding index of the sampler
	//   - samplerStagingData: the sampler configuration
	//
	// Returns:
	//   - error: an error if sampler creation fails
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error

	// WriteBuffers writes staged data into bind group buffers. Writes to missing buffers are skipped.
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next surface texture and begins the main render pass.
	// FrameIndex advances on success.
	//
	// Returns:
	//   - error: an error if a frame is already open or the surface texture cannot be acquired
	BeginFrame() error

	// Draw encodes a non-indexed draw from the provider's vertex buffer.
	//
	// Parameters:
	//   - pipelineKey: the key of a registered pipeline
	//   - vertexProvider: the BindGroupProvider holding the vertex buffer
	//   - vertexCount: the number of vertices to draw
	//   - firstVertex: the first vertex to draw
	//   - bindGroups: providers set at group indices matching their position; nil entries are skipped
	//
	// Returns:
	//   - error: an error if no frame is open or the pipeline is not registered
	Draw(pipelineKey string, vertexProvider bind_group_provider.BindGroupProvider, vertexCount, firstVertex uint32, bindGroups []bind_group_provider.BindGroupProvider) error

	// DrawCall encodes an indexed, instanced draw from the provider's mesh buffers.
	//
	// Parameters:
	//   - pipelineKey: the key of a registered pipeline
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - instanceCount: the number of instances to draw
	//   - bindGroups: providers set at group indices matching their position; nil entries are skipped
	//
	// Returns:
	//   - error: an error if no frame is open or the pipeline is not registered
	DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error

	// EndFrame ends the render pass and submits the frame's commands. Present shows the result.
	//
	// Returns:
	//   - error: an error if no frame is open or the command buffer cannot be finished
	EndFrame() error

	// Present shows the submitted frame and releases the surface texture.
	Present()

	// FrameIndex returns the number of frames begun so far.
	FrameIndex() uint64

	// DrawCalls returns the number of draws issued since the last BeginFrame.
	DrawCalls() int

	// SetPresentMode changes how frames reach the display and reconfigures the surface.
	SetPresentMode(mode PresentMode) error

	// ClearColor returns the color the render pass clears to.
	ClearColor() mgl32.Vec4

	// SetClearColor sets the color the render pass clears to, starting with the next frame.
	SetClearColor(color mgl32.Vec4)

	// Release releases every registered pipeline and the GPU device. The Renderer must not be used
	// afterwards. Calling Release more than once is a no-op.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into the window's surface.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - w: the window providing the surface and its initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured Renderer
//   - error: an error if the surface, adapter or device cannot be created
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	surfaceDescriptor, err := w.SurfaceDescriptor()
	if err != nil {
		return nil, fmt.Errorf("failed to get surface descriptor: %w", err)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, r.msaa)
	}
	if err != nil {
		return nil, err
	}

	width, height := w.Size()
	if err := r.attach(width, height); err != nil {
		r.backend.Release()
		return nil, err
	}
	return r, nil
}

func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		presentMode:   PresentModeVSync,
		msaa:          MSAA4x,
		clearColor:    mgl32.Vec4{0.1, 0.1, 0.1, 1},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// attach pushes the collected options into the backend and configures the surface.
func (r *renderer) attach(width, height int) error {
	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.clearColor)
	return r.Resize(width, height)
}

func (r *renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("failed to configure surface at %dx%d: %w", width, height, err)
	}
	r.width, r.height = width, height
	return nil
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) error {
	r.mu.Lock()
	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	width, height := r.width, r.height
	r.mu.Unlock()
	return r.Resize(width, height)
}

func (r *renderer) ClearColor() mgl32.Vec4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

func (r *renderer) SetClearColor(color mgl32.Vec4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = color
	r.backend.SetClearColor(color)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Pipelines() map[string]pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]pipeline.Pipeline, len(r.pipelineCache))
	for k, p := range r.pipelineCache {
		out[k] = p
	}
	return out
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("failed to register pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitVertexBuffer(provider bind_group_provider.BindGroupProvider, size uint64) error {
	if provider.VertexBuffer() != nil && provider.VertexBufferSize() >= size {
		return nil
	}
	return r.backend.InitVertexBuffer(provider, size)
}

func (r *renderer) WriteVertexBuffer(provider bind_group_provider.BindGroupProvider, offset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if provider.VertexBuffer() == nil {
		return fmt.Errorf("%s has no vertex buffer, call InitVertexBuffer first", provider.Label())
	}
	if end := offset + uint64(len(data)); end > provider.VertexBufferSize() {
		return fmt.Errorf("write of %d bytes at offset %d overflows the %d byte vertex buffer of %s", len(data), offset, provider.VertexBufferSize(), provider.Label())
	}
	r.backend.WriteVertexBuffer(provider, offset, data)
	return nil
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return r.backend.InitBindGroup(provider, descriptor, bufferUsageOverrides, bufferSizeOverrides)
}

func (r *renderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	if stagingData.Width == 0 || stagingData.Height == 0 {
		return fmt.Errorf("texture for %s binding %d has no pixels", provider.Label(), bindingKey)
	}
	if want := int(stagingData.Width * stagingData.Height * 4); len(stagingData.Pixels) != want {
		return fmt.Errorf("texture for %s binding %d has %d bytes, want %d", provider.Label(), bindingKey, len(stagingData.Pixels), want)
	}
	return r.backend.InitTextureView(provider, bindingKey, stagingData)
}

func (r *renderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return r.backend.InitSampler(provider, bindingKey, samplerStagingData)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.WriteBuffers(writes)
}

func (r *renderer) BeginFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inFrame {
		return fmt.Errorf("frame %d has not ended", r.frameIndex)
	}
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.inFrame = true
	r.frameIndex++
	r.drawCalls = 0
	return nil
}

// drawPipeline looks up a pipeline for a draw inside an open frame.
func (r *renderer) drawPipeline(pipelineKey string) (pipeline.Pipeline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inFrame {
		return nil, fmt.Errorf("draw with pipeline %q outside of a frame", pipelineKey)
	}
	p, exists := r.pipelineCache[pipelineKey]
	if !exists {
		return nil, fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}
	return p, nil
}

func (r *renderer) Draw(pipelineKey string, vertexProvider bind_group_provider.BindGroupProvider, vertexCount, firstVertex uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	p, err := r.drawPipeline(pipelineKey)
	if err != nil {
		return err
	}
	if vertexCount == 0 {
		return nil
	}
	r.backend.Draw(p, vertexProvider, vertexCount, firstVertex, bindGroups)
	r.countDraw()
	return nil
}

func (r *renderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	p, err := r.drawPipeline(pipelineKey)
	if err != nil {
		return err
	}
	r.backend.DrawCall(p, meshProvider, instanceCount, bindGroups)
	r.countDraw()
	return nil
}

func (r *renderer) EndFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inFrame {
		return fmt.Errorf("EndFrame called without BeginFrame")
	}
	r.inFrame = false
	return r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) FrameIndex() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameIndex
}

func (r *renderer) countDraw() {
	r.mu.Lock()
	r.drawCalls++
	r.mu.Unlock()
}

func (r *renderer) DrawCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drawCalls
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.released = true
	for _, p := range r.pipelineCache {
		p.Release()
	}
	clear(r.pipelineCache)
	r.backend.Release()
}
