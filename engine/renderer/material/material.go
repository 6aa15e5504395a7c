package material

import (
	"fmt"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/Carmen-Shannon/bliss/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/bliss/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/bliss/engine/renderer/shader"
	"github.com/Carmen-Shannon/bliss/engine/renderer/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ResourceFactory creates the GPU objects a Material needs. renderer.Renderer satisfies it.
type ResourceFactory interface {
	RegisterPipelines(pipelines ...pipeline.Pipeline) error
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error
}

// bindGroupKey identifies a cached bind group. A new texture or sampler on a map builds a new one.
type bindGroupKey struct {
	texture texture.Texture2D
	sampler common.SamplerStagingData
	layout  string
}

// material is the implementation of the Material interface.
type material struct {
	name       string
	factory    ResourceFactory
	effect     pipeline.Pipeline
	blendState *wgpu.BlendState

	textureLayouts []TextureLayout
	parameters     []float32
	maps           map[MaterialMapType]MaterialMap
	mapTypes       map[string]MaterialMapType
	bindGroups     map[bindGroupKey]bind_group_provider.BindGroupProvider
}

// Material pairs an effect (a render pipeline) with the textures, colors and parameters it is drawn
// with. Texture bind groups are built on first use and cached per texture, sampler and layout.
type Material interface {
	// Name returns the material name. The effect's pipeline key is derived from it.
	Name() string

	// Effect returns the registered render pipeline.
	Effect() pipeline.Pipeline

	// BlendState returns the blend state of the effect, or nil when blending is disabled.
	BlendState() *wgpu.BlendState

	// BindGroup returns the bind group that binds a map's texture to a texture layout.
	//
	// Parameters:
	//   - layoutName: the name of a layout added with AddTextureLayout
	//   - mapType: the map whose texture is bound
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the cached or new bind group, or nil if the map has no texture
	//   - error: an error if the layout is unknown or GPU creation fails
	BindGroup(layoutName string, mapType MaterialMapType) (bind_group_provider.BindGroupProvider, error)

	// MaterialMapType returns the map type assigned to a texture layout name.
	//
	// Parameters:
	//   - name: the texture layout name
	//
	// Returns:
	//   - MaterialMapType: the assigned map type
	//   - bool: false if nothing is assigned
	MaterialMapType(name string) (MaterialMapType, bool)

	// SetMaterialMapType assigns a map type to a texture layout name.
	SetMaterialMapType(name string, mapType MaterialMapType)

	// MaterialMap returns the map of a type.
	//
	// Returns:
	//   - MaterialMap: the map, or the zero map
	//   - bool: false if the map was never set
	MaterialMap(mapType MaterialMapType) (MaterialMap, bool)

	// SetMaterialMap replaces the map of a type.
	SetMaterialMap(mapType MaterialMapType, m MaterialMap)

	// MapTexture returns the texture of a map, or nil.
	MapTexture(mapType MaterialMapType) texture.Texture2D

	// SetMapTexture sets the texture of a map and keeps its color and value.
	SetMapTexture(mapType MaterialMapType, tex texture.Texture2D)

	// MapColor returns the color of a map, or nil.
	MapColor(mapType MaterialMapType) *mgl32.Vec4

	// SetMapColor sets the color of a map and keeps its texture and value.
	SetMapColor(mapType MaterialMapType, color mgl32.Vec4)

	// MapValue returns the value of a map, or zero.
	MapValue(mapType MaterialMapType) float32

	// SetMapValue sets the value of a map and keeps its texture and color.
	SetMapValue(mapType MaterialMapType, value float32)

	// AddTextureLayout registers a texture variable of the fragment shader as a layout. The sampler is
	// the first sampler declared in the same group. Adding a name twice is a no-op.
	//
	// Parameters:
	//   - name: the WGSL variable name of a texture_2d binding
	//
	// Returns:
	//   - error: an error if the variable is missing, is not a texture, or its group has no sampler
	AddTextureLayout(name string) error

	// TextureLayouts returns the layouts in the order they were added.
	TextureLayouts() []TextureLayout

	// Parameters returns a copy of the float parameters.
	Parameters() []float32

	// SetParameters replaces the float parameters.
	//
	// Returns:
	//   - error: an error if more than shader.MaterialParamsFloats values are given
	SetParameters(params ...float32) error

	// ParametersBytes returns the parameters laid out as the MaterialParams uniform.
	ParametersBytes() []byte

	// Release releases every cached bind group. The effect is owned by the ResourceFactory.
	Release()
}

var _ Material = &material{}

// NewMaterial builds the effect from two shaders, registers it with the factory and creates the
// material. Texture variables marked with a material provider annotation become texture layouts, and
// those naming a map type are assigned to it.
//
// Parameters:
//   - name: the material name; the effect is registered as "material:<name>"
//   - factory: the ResourceFactory creating GPU objects, usually the Renderer
//   - vertex: the vertex shader
//   - fragment: the fragment shader
//   - opts: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: the new material
//   - error: an error if the pipeline cannot be registered or a provider annotation is invalid
func NewMaterial(name string, factory ResourceFactory, vertex, fragment shader.Shader, opts ...MaterialBuilderOption) (Material, error) {
	m := &material{
		name:       name,
		factory:    factory,
		maps:       make(map[MaterialMapType]MaterialMap),
		mapTypes:   make(map[string]MaterialMapType),
		bindGroups: make(map[bindGroupKey]bind_group_provider.BindGroupProvider),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.effect = pipeline.NewPipeline("material:"+name,
		pipeline.WithVertexShader(vertex),
		pipeline.WithFragmentShader(fragment),
		pipeline.WithBlendState(m.blendState),
		pipeline.WithDepthCompare(wgpu.CompareFunctionLessEqual),
		pipeline.WithDepthWriteEnabled(false),
	)
	if err := factory.RegisterPipelines(m.effect); err != nil {
		return nil, fmt.Errorf("material %s: %w", name, err)
	}

	for _, decl := range fragment.Declarations() {
		if decl.Type != shader.AnnotationTypeProvider || decl.Args[0] != shader.AnnotationArgMaterial {
			continue
		}
		varName := fragment.BindGroupVarName(*decl.Group, *decl.Binding)
		if err := m.AddTextureLayout(varName); err != nil {
			return nil, fmt.Errorf("material %s: provider annotation on line %d: %w", name, decl.Line, err)
		}
		if len(decl.Args) > 1 {
			if mapType, ok := ParseMaterialMapType(string(decl.Args[1])); ok {
				m.mapTypes[varName] = mapType
			}
		}
	}
	return m, nil
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Effect() pipeline.Pipeline {
	return m.effect
}

func (m *material) BlendState() *wgpu.BlendState {
	return m.effect.BlendState()
}

func (m *material) textureLayout(name string) (TextureLayout, bool) {
	for _, l := range m.textureLayouts {
		if l.Name == name {
			return l, true
		}
	}
	return TextureLayout{}, false
}

func (m *material) BindGroup(layoutName string, mapType MaterialMapType) (bind_group_provider.BindGroupProvider, error) {
	layout, ok := m.textureLayout(layoutName)
	if !ok {
		return nil, fmt.Errorf("material %s has no texture layout %q", m.name, layoutName)
	}

	tex := m.maps[mapType].Texture
	if tex == nil {
		return nil, nil
	}

	key := bindGroupKey{texture: tex, sampler: tex.Sampler(), layout: layoutName}
	if cached, ok := m.bindGroups[key]; ok {
		return cached, nil
	}

	provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s %s %s", m.name, layoutName, mapType))
	if err := m.initBindGroup(provider, layout, tex); err != nil {
		provider.Release()
		return nil, fmt.Errorf("material %s: bind group for %s: %w", m.name, tex.Name(), err)
	}
	m.bindGroups[key] = provider
	logger.Logger().Debug("material bind group created", "material", m.name, "layout", layoutName, "map", mapType.String(), "texture", tex.Name())
	return provider, nil
}

func (m *material) initBindGroup(provider bind_group_provider.BindGroupProvider, layout TextureLayout, tex texture.Texture2D) error {
	if err := m.factory.InitTextureView(provider, layout.TextureBinding, tex.StagingData()); err != nil {
		return err
	}
	if err := m.factory.InitSampler(provider, layout.SamplerBinding, tex.Sampler()); err != nil {
		return err
	}
	return m.factory.InitBindGroup(provider, m.effect.BindGroupLayoutDescriptor(layout.Group), nil, nil)
}

func (m *material) MaterialMapType(name string) (MaterialMapType, bool) {
	t, ok := m.mapTypes[name]
	return t, ok
}

func (m *material) SetMaterialMapType(name string, mapType MaterialMapType) {
	m.mapTypes[name] = mapType
}

func (m *material) MaterialMap(mapType MaterialMapType) (MaterialMap, bool) {
	mm, ok := m.maps[mapType]
	return mm, ok
}

func (m *material) SetMaterialMap(mapType MaterialMapType, mm MaterialMap) {
	m.maps[mapType] = mm
}

func (m *material) MapTexture(mapType MaterialMapType) texture.Texture2D {
	return m.maps[mapType].Texture
}

func (m *material) SetMapTexture(mapType MaterialMapType, tex texture.Texture2D) {
	mm := m.maps[mapType]
	mm.Texture = tex
	m.maps[mapType] = mm
}

func (m *material) MapColor(mapType MaterialMapType) *mgl32.Vec4 {
	return m.maps[mapType].Color
}

func (m *material) SetMapColor(mapType MaterialMapType, color mgl32.Vec4) {
	mm := m.maps[mapType]
	mm.Color = &color
	m.maps[mapType] = mm
}

func (m *material) MapValue(mapType MaterialMapType) float32 {
	return m.maps[mapType].Value
}

func (m *material) SetMapValue(mapType MaterialMapType, value float32) {
	mm := m.maps[mapType]
	mm.Value = value
	m.maps[mapType] = mm
}

func (m *material) AddTextureLayout(name string) error {
	if _, ok := m.textureLayout(name); ok {
		return nil
	}

	fragment := m.effect.Shader(shader.ShaderTypeFragment)
	group, binding, ok := fragment.FindBinding(name)
	if !ok {
		return fmt.Errorf("fragment shader %s declares no binding %q", fragment.Key(), name)
	}

	layout := TextureLayout{Name: name, Group: group, TextureBinding: binding, SamplerBinding: -1}
	isTexture := false
	for _, entry := range fragment.BindGroupLayoutDescriptor(group).Entries {
		switch {
		case int(entry.Binding) == binding:
			isTexture = entry.Texture.SampleType != wgpu.TextureSampleTypeUndefined
		case layout.SamplerBinding < 0 && entry.Sampler.Type != wgpu.SamplerBindingTypeUndefined:
			layout.SamplerBinding = int(entry.Binding)
		}
	}
	if !isTexture {
		return fmt.Errorf("binding %q is not a texture", name)
	}
	if layout.SamplerBinding < 0 {
		return fmt.Errorf("group %d of texture %q has no sampler", group, name)
	}

	m.textureLayouts = append(m.textureLayouts, layout)
	return nil
}

func (m *material) TextureLayouts() []TextureLayout {
	out := make([]TextureLayout, len(m.textureLayouts))
	copy(out, m.textureLayouts)
	return out
}

func (m *material) Parameters() []float32 {
	out := make([]float32, len(m.parameters))
	copy(out, m.parameters)
	return out
}

func (m *material) SetParameters(params ...float32) error {
	if len(params) > shader.MaterialParamsFloats {
		return fmt.Errorf("material %s: %d parameters exceed the limit of %d", m.name, len(params), shader.MaterialParamsFloats)
	}
	m.parameters = append(m.parameters[:0], params...)
	return nil
}

func (m *material) ParametersBytes() []byte {
	var params GPUMaterialParams
	copy(params.Values[:], m.parameters)
	return params.Marshal()
}

func (m *material) Release() {
	for key, provider := range m.bindGroups {
		provider.Release()
		delete(m.bindGroups, key)
	}
}
