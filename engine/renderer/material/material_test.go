package material_test

import (
	"errors"
	"image"
	"testing"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/bliss/engine/renderer/material"
	"github.com/Carmen-Shannon/bliss/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/bliss/engine/renderer/shader"
	"github.com/Carmen-Shannon/bliss/engine/renderer/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spriteSource = `//@bliss:include proj_view
//@bliss:group 0 0 storage_uniform proj_view proj_view
//@bliss:provider 1 0 material albedo
@group(1) @binding(0) var albedo_tex: texture_2d<f32>;
@group(1) @binding(1) var albedo_sampler: sampler;
@group(1) @binding(2) var normal_tex: texture_2d<f32>;

struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) uv: vec2<f32>,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = proj_view.matrix * vec4<f32>(in.position, 0.0, 1.0);
    out.uv = in.uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(albedo_tex, albedo_sampler, in.uv);
}
`

// fakeFactory records resource creation without a GPU.
type fakeFactory struct {
	registered  []string
	textures    int
	samplers    int
	bindGroups  int
	descriptors []wgpu.BindGroupLayoutDescriptor
	bindErr     error
}

func (f *fakeFactory) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.registered = append(f.registered, p.PipelineKey())
	}
	return nil
}

func (f *fakeFactory) InitTextureView(bind_group_provider.BindGroupProvider, int, common.TextureStagingData) error {
	f.textures++
	return nil
}

func (f *fakeFactory) InitSampler(bind_group_provider.BindGroupProvider, int, common.SamplerStagingData) error {
	f.samplers++
	return nil
}

func (f *fakeFactory) InitBindGroup(_ bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, _ map[int]wgpu.BufferUsage, _ map[int]uint64) error {
	if f.bindErr != nil {
		return f.bindErr
	}
	f.bindGroups++
	f.descriptors = append(f.descriptors, descriptor)
	return nil
}

func newSprite(t *testing.T, factory *fakeFactory, opts ...material.MaterialBuilderOption) material.Material {
	t.Helper()
	vs, err := shader.NewShader("sprite", shader.ShaderTypeVertex, spriteSource)
	require.NoError(t, err)
	fs, err := shader.NewShader("sprite", shader.ShaderTypeFragment, spriteSource)
	require.NoError(t, err)

	m, err := material.NewMaterial("sprite", factory, vs, fs, opts...)
	require.NoError(t, err)
	return m
}

func newTexture(t *testing.T) texture.Texture2D {
	t.Helper()
	tex, err := texture.NewTexture2D("white", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err)
	return tex
}

func TestNewMaterial(t *testing.T) {
	factory := &fakeFactory{}
	m := newSprite(t, factory)

	assert.Equal(t, "sprite", m.Name())
	assert.Equal(t, []string{"material:sprite"}, factory.registered)
	assert.Nil(t, m.BlendState(), "blending is disabled by default")
	assert.Equal(t, wgpu.CompareFunctionLessEqual, m.Effect().DepthCompare())

	assert.Equal(t, []material.TextureLayout{{Name: "albedo_tex", Group: 1, TextureBinding: 0, SamplerBinding: 1}}, m.TextureLayouts())
	mapType, ok := m.MaterialMapType("albedo_tex")
	assert.True(t, ok)
	assert.Equal(t, material.MaterialMapAlbedo, mapType)

	blended := newSprite(t, &fakeFactory{}, material.WithBlendState(&pipeline.AlphaBlend))
	assert.Equal(t, &pipeline.AlphaBlend, blended.BlendState())
}

func TestAddTextureLayout(t *testing.T) {
	m := newSprite(t, &fakeFactory{})

	require.NoError(t, m.AddTextureLayout("normal_tex"))
	require.NoError(t, m.AddTextureLayout("normal_tex"))
	layouts := m.TextureLayouts()
	require.Len(t, layouts, 2)
	assert.Equal(t, material.TextureLayout{Name: "normal_tex", Group: 1, TextureBinding: 2, SamplerBinding: 1}, layouts[1])

	assert.Error(t, m.AddTextureLayout("missing"))
	assert.Error(t, m.AddTextureLayout("albedo_sampler"))
	assert.Error(t, m.AddTextureLayout("proj_view"))
}

func TestBindGroupCache(t *testing.T) {
	factory := &fakeFactory{}
	m := newSprite(t, factory)

	_, err := m.BindGroup("nope", material.MaterialMapAlbedo)
	assert.Error(t, err)

	bg, err := m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	require.NoError(t, err)
	assert.Nil(t, bg, "no texture on the map")

	tex := newTexture(t)
	m.SetMapTexture(material.MaterialMapAlbedo, tex)

	first, err := m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	require.NoError(t, err)
	require.NotNil(t, first)
	second, err := m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, factory.bindGroups)
	require.Len(t, factory.descriptors, 1)
	assert.Len(t, factory.descriptors[0].Entries, 3)

	tex.SetSampler(common.SamplerStagingData{MagFilter: wgpu.FilterModeNearest})
	third, err := m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, factory.bindGroups)
	assert.Equal(t, 2, factory.textures)
	assert.Equal(t, 2, factory.samplers)

	m.Release()
	_, err = m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	require.NoError(t, err)
	assert.Equal(t, 3, factory.bindGroups)
}

func TestBindGroupFailureIsNotCached(t *testing.T) {
	factory := &fakeFactory{bindErr: errors.New("device lost")}
	m := newSprite(t, factory)
	m.SetMapTexture(material.MaterialMapAlbedo, newTexture(t))

	_, err := m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	assert.Error(t, err)

	factory.bindErr = nil
	bg, err := m.BindGroup("albedo_tex", material.MaterialMapAlbedo)
	require.NoError(t, err)
	assert.NotNil(t, bg)
}

func TestMapSettersPreserveFields(t *testing.T) {
	m := newSprite(t, &fakeFactory{})
	tex := newTexture(t)

	_, ok := m.MaterialMap(material.MaterialMapEmission)
	assert.False(t, ok)

	m.SetMapValue(material.MaterialMapEmission, 0.5)
	m.SetMapColor(material.MaterialMapEmission, mgl32.Vec4{1, 0, 0, 1})
	m.SetMapTexture(material.MaterialMapEmission, tex)

	mm, ok := m.MaterialMap(material.MaterialMapEmission)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), mm.Value)
	require.NotNil(t, mm.Color)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, *mm.Color)
	assert.Equal(t, tex, mm.Texture)

	m.SetMapValue(material.MaterialMapEmission, 2)
	assert.Equal(t, tex, m.MapTexture(material.MaterialMapEmission))
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, *m.MapColor(material.MaterialMapEmission))
	assert.Equal(t, float32(2), m.MapValue(material.MaterialMapEmission))

	m.SetMaterialMap(material.MaterialMapHeight, material.MaterialMap{Value: 3})
	assert.Nil(t, m.MapColor(material.MaterialMapHeight))
	assert.Nil(t, m.MapTexture(material.MaterialMapHeight))

	m.SetMaterialMapType("normal_tex", material.MaterialMapNormal)
	mapType, ok := m.MaterialMapType("normal_tex")
	assert.True(t, ok)
	assert.Equal(t, material.MaterialMapNormal, mapType)
}

func TestParameters(t *testing.T) {
	m := newSprite(t, &fakeFactory{}, material.WithParameters(1, 2))
	assert.Equal(t, []float32{1, 2}, m.Parameters())

	b := m.ParametersBytes()
	require.Len(t, b, 64)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, b[0:4])
	assert.Equal(t, []byte{0, 0, 0, 0}, b[8:12])

	require.NoError(t, m.SetParameters(0.25))
	assert.Equal(t, []float32{0.25}, m.Parameters())
	assert.Error(t, m.SetParameters(make([]float32, shader.MaterialParamsFloats+1)...))
	assert.Equal(t, []float32{0.25}, m.Parameters())
}

func TestMaterialMapTypeNames(t *testing.T) {
	for _, mapType := range []material.MaterialMapType{
		material.MaterialMapAlbedo, material.MaterialMapMetallic, material.MaterialMapNormal,
		material.MaterialMapRoughness, material.MaterialMapOcclusion, material.MaterialMapEmission,
		material.MaterialMapHeight,
	} {
		parsed, ok := material.ParseMaterialMapType(mapType.String())
		assert.True(t, ok)
		assert.Equal(t, mapType, parsed)
		// every name is accepted by the shader provider annotation
		_, err := shader.NewPreProcessor().Process("//@bliss:provider 1 0 material " + mapType.String())
		assert.NoError(t, err)
	}
	_, ok := material.ParseMaterialMapType("gloss")
	assert.False(t, ok)
	assert.Equal(t, "MaterialMapType(42)", material.MaterialMapType(42).String())
}
