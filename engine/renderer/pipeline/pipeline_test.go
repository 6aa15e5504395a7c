package pipeline_test

import (
	"testing"

	"github.com/Carmen-Shannon/bliss/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/bliss/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := pipeline.NewPipeline("sprites")

	assert.Equal(t, "sprites", p.PipelineKey())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, pipeline.AlphaBlend, *p.BlendState())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.CompareFunctionLess, p.DepthCompare())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
}

func TestPipelineOptions(t *testing.T) {
	p := pipeline.NewPipeline("lines",
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineStrip),
		pipeline.WithDepthCompare(wgpu.CompareFunctionLessEqual),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithFrontFace(wgpu.FrontFaceCW),
		pipeline.WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	assert.Equal(t, wgpu.PrimitiveTopologyLineStrip, p.Topology())
	assert.Equal(t, wgpu.CompareFunctionLessEqual, p.DepthCompare())
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}

func TestWithBlendStateNilDisablesBlending(t *testing.T) {
	p := pipeline.NewPipeline("opaque", pipeline.WithBlendState(nil))
	assert.False(t, p.BlendEnabled())
	assert.Nil(t, p.BlendState())

	additive := &wgpu.BlendState{
		Color: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorOne, DstFactor: wgpu.BlendFactorOne, Operation: wgpu.BlendOperationAdd},
		Alpha: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorOne, DstFactor: wgpu.BlendFactorOne, Operation: wgpu.BlendOperationAdd},
	}
	p = pipeline.NewPipeline("glow", pipeline.WithBlendState(additive))
	assert.True(t, p.BlendEnabled())
	assert.Same(t, additive, p.BlendState())
}

func TestReleaseWithoutGPUObject(t *testing.T) {
	p := pipeline.NewPipeline("empty")
	assert.NotPanics(t, p.Release)
}

func TestBindGroupLayoutDescriptors(t *testing.T) {
	src := `//@bliss:include proj_view
//@bliss:group 0 0 storage_uniform proj_view proj_view
@group(1) @binding(0) var tex: texture_2d<f32>;

@vertex
fn vs_main(@location(0) pos: vec2<f32>) -> @builtin(position) vec4<f32> {
    return proj_view.matrix * vec4<f32>(pos, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`
	vs, err := shader.NewShader("quad", shader.ShaderTypeVertex, src)
	assert.NoError(t, err)
	fs, err := shader.NewShader("quad", shader.ShaderTypeFragment, src)
	assert.NoError(t, err)

	p := pipeline.NewPipeline("quad", pipeline.WithVertexShader(vs), pipeline.WithFragmentShader(fs))

	group0 := p.BindGroupLayoutDescriptor(0)
	if assert.Len(t, group0.Entries, 1) {
		assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, group0.Entries[0].Visibility)
		assert.Equal(t, uint64(64), group0.Entries[0].Buffer.MinBindingSize)
	}
	assert.Len(t, p.BindGroupLayoutDescriptors(), 2)
	assert.Empty(t, p.BindGroupLayoutDescriptor(5).Entries)
}
