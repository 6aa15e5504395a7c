package renderer

import (
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/bliss/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the vertical blank before presenting. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. It may tear.
	PresentModeUncapped

	// PresentModeMailbox presents on the vertical blank and replaces queued frames instead of blocking.
	PresentModeMailbox
)

// MSAASampleCount is the number of samples per pixel of the main render pass.
// WebGPU guarantees 1 and 4. Higher counts depend on the adapter.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisampling.
	MSAAOff MSAASampleCount = 1

	// MSAA4x is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x is adapter dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x is adapter dependent.
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is the GPU API behind a Renderer. The Renderer validates arguments and tracks
// frame state; the backend only talks to the GPU.
type RendererBackend interface {
	// ConfigureSurface configures the surface and recreates the MSAA and depth attachments.
	ConfigureSurface(width, height int) error

	// SetPresentMode takes effect on the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor takes effect on the next BeginFrame.
	SetClearColor(color mgl32.Vec4)

	// RegisterRenderPipeline creates the GPU pipeline and stores it on p.
	RegisterRenderPipeline(p pipeline.Pipeline) error

	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error
	InitVertexBuffer(provider bind_group_provider.BindGroupProvider, size uint64) error
	WriteVertexBuffer(provider bind_group_provider.BindGroupProvider, offset uint64, data []byte)
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	BeginFrame() error
	Draw(p pipeline.Pipeline, vertexProvider bind_group_provider.BindGroupProvider, vertexCount, firstVertex uint32, bindGroups []bind_group_provider.BindGroupProvider)
	DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider)
	EndFrame() error
	Present()

	// Release destroys the attachments, device, adapter, surface and instance.
	Release()
}
