package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrimitiveSource = `//@bliss:include primitive_vertex
//@bliss:include proj_view
//@bliss:group 0 0 storage_uniform proj_view proj_view

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(in: PrimitiveVertex2D) -> VertexOutput {
    var out: VertexOutput;
    out.position = proj_view.matrix * vec4<f32>(in.position, 0.0, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

const testSpriteSource = `//@bliss:include material_params
//@bliss:group 0 0 storage_uniform params material_params
//@bliss:provider 1 0 material albedo
@group(1) @binding(0) var albedo_tex: texture_2d<f32>;
@group(1) @binding(1) var albedo_sampler: sampler;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return textureSample(albedo_tex, albedo_sampler, uv) * params.values[0];
}
`

func TestPreProcessor(t *testing.T) {
	t.Run("include injects the struct once", func(t *testing.T) {
		pp := NewPreProcessor()
		out, err := pp.Process("//@bliss:include proj_view\n//@bliss:include proj_view\n")
		require.NoError(t, err)
		assert.Equal(t, 1, countOccurrences(out, "struct ProjView"))
		assert.Empty(t, pp.Declarations())
	})

	t.Run("group emits a declaration", func(t *testing.T) {
		pp := NewPreProcessor()
		out, err := pp.Process("//@bliss:group 0 2 storage_read data material_params")
		require.NoError(t, err)
		assert.Contains(t, out, "@group(0) @binding(2) var<storage, read> data: MaterialParams;")

		decls := pp.Declarations()
		require.Len(t, decls, 1)
		assert.Equal(t, AnnotationTypeBindingGroup, decls[0].Type)
		assert.Equal(t, 0, *decls[0].Group)
		assert.Equal(t, 2, *decls[0].Binding)
	})

	t.Run("provider is recorded without output", func(t *testing.T) {
		pp := NewPreProcessor()
		out, err := pp.Process("//@bliss:provider 1 0 material normal")
		require.NoError(t, err)
		assert.Empty(t, out)

		decls := pp.Declarations()
		require.Len(t, decls, 1)
		assert.Equal(t, AnnotationTypeProvider, decls[0].Type)
		assert.Equal(t, []AnnotationArg{AnnotationArgMaterial, AnnotationArgNormal}, decls[0].Args)
	})

	t.Run("declarations reset between runs", func(t *testing.T) {
		pp := NewPreProcessor()
		_, err := pp.Process("//@bliss:provider 1 0 material")
		require.NoError(t, err)
		_, err = pp.Process("fn main() {}")
		require.NoError(t, err)
		assert.Empty(t, pp.Declarations())
	})

	t.Run("plain comments pass through", func(t *testing.T) {
		out, err := NewPreProcessor().Process("// just a comment\nfn f() {}")
		require.NoError(t, err)
		assert.Equal(t, "// just a comment\nfn f() {}", out)
	})

	errorCases := map[string]string{
		"unknown annotation":  "//@bliss:frobnicate 1",
		"unknown struct":      "//@bliss:include camera",
		"negative group":      "//@bliss:group -1 0 storage_uniform pv proj_view",
		"bad address space":   "//@bliss:group 0 0 workgroup pv proj_view",
		"missing group args":  "//@bliss:group 0 0",
		"unknown provider":    "//@bliss:provider 1 0 particles",
		"unknown map type":    "//@bliss:provider 1 0 material glossiness",
		"non-numeric binding": "//@bliss:provider 1 x material",
	}
	for name, src := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := NewPreProcessor().Process("fn f() {}\n" + src)
			assert.Error(t, err)
		})
	}
}

func TestNewShader(t *testing.T) {
	t.Run("vertex stage", func(t *testing.T) {
		s, err := NewShader("primitive", ShaderTypeVertex, testPrimitiveSource)
		require.NoError(t, err)
		assert.Equal(t, "primitive", s.Key())
		assert.Equal(t, "vs_main", s.EntryPoint())
		assert.Equal(t, ShaderTypeVertex, s.ShaderType())
		assert.Equal(t, "primitive", s.Module().Label)
		assert.Contains(t, s.Module().WGSLDescriptor.Code, "struct PrimitiveVertex2D")
		assert.NotContains(t, s.Source(), "@bliss:")
	})

	t.Run("fragment stage", func(t *testing.T) {
		s, err := NewShader("primitive", ShaderTypeFragment, testPrimitiveSource)
		require.NoError(t, err)
		assert.Equal(t, "fs_main", s.EntryPoint())
		assert.Empty(t, s.VertexLayouts())
	})

	t.Run("missing entry point", func(t *testing.T) {
		_, err := NewShader("broken", ShaderTypeVertex, "fn helper() {}")
		assert.Error(t, err)
	})

	t.Run("entry point inside a comment is ignored", func(t *testing.T) {
		_, err := NewShader("commented", ShaderTypeVertex, "// @vertex fn vs_main() {}\nfn helper() {}")
		assert.Error(t, err)
	})

	t.Run("bad annotation", func(t *testing.T) {
		_, err := NewShader("bad", ShaderTypeVertex, "//@bliss:include nope\n"+testPrimitiveSource)
		assert.Error(t, err)
	})
}

func TestNewShaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primitive.wgsl")
	require.NoError(t, os.WriteFile(path, []byte(testPrimitiveSource), 0o644))

	s, err := NewShaderFromFile("primitive", ShaderTypeVertex, path)
	require.NoError(t, err)
	assert.Equal(t, "vs_main", s.EntryPoint())

	_, err = NewShaderFromFile("missing", ShaderTypeVertex, filepath.Join(t.TempDir(), "nope.wgsl"))
	assert.Error(t, err)
}

func TestVertexLayouts(t *testing.T) {
	s, err := NewShader("primitive", ShaderTypeVertex, testPrimitiveSource)
	require.NoError(t, err)

	layouts := s.VertexLayouts()
	require.Len(t, layouts, 1)
	layout := s.VertexLayout(0)
	require.Len(t, layout, 1)

	assert.Equal(t, uint64(24), layout[0].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout[0].StepMode)
	require.Len(t, layout[0].Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout[0].Attributes[0].Format)
	assert.Equal(t, uint64(0), layout[0].Attributes[0].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layout[0].Attributes[1].Format)
	assert.Equal(t, uint64(8), layout[0].Attributes[1].Offset)
	assert.Equal(t, uint32(1), layout[0].Attributes[1].ShaderLocation)
}

func TestBindGroupLayouts(t *testing.T) {
	t.Run("uniform buffer", func(t *testing.T) {
		s, err := NewShader("primitive", ShaderTypeVertex, testPrimitiveSource)
		require.NoError(t, err)

		desc := s.BindGroupLayoutDescriptor(0)
		require.Len(t, desc.Entries, 1)
		entry := desc.Entries[0]
		assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
		assert.Equal(t, uint64(64), entry.Buffer.MinBindingSize)
		assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
		assert.Equal(t, "proj_view", s.BindGroupVarName(0, 0))
	})

	t.Run("textures and samplers", func(t *testing.T) {
		s, err := NewShader("sprite", ShaderTypeFragment, testSpriteSource)
		require.NoError(t, err)

		desc := s.BindGroupLayoutDescriptor(1)
		require.Len(t, desc.Entries, 2)
		assert.Equal(t, wgpu.TextureSampleTypeFloat, desc.Entries[0].Texture.SampleType)
		assert.Equal(t, wgpu.TextureViewDimension2D, desc.Entries[0].Texture.ViewDimension)
		assert.Equal(t, wgpu.SamplerBindingTypeFiltering, desc.Entries[1].Sampler.Type)
		assert.Equal(t, wgpu.ShaderStageFragment, desc.Entries[1].Visibility)

		params := s.BindGroupLayoutDescriptor(0)
		require.Len(t, params.Entries, 1)
		assert.Equal(t, uint64(64), params.Entries[0].Buffer.MinBindingSize)

		assert.Len(t, s.Declarations(), 2)
	})

	t.Run("find binding", func(t *testing.T) {
		s, err := NewShader("sprite", ShaderTypeFragment, testSpriteSource)
		require.NoError(t, err)

		group, binding, ok := s.FindBinding("albedo_sampler")
		assert.True(t, ok)
		assert.Equal(t, 1, group)
		assert.Equal(t, 1, binding)

		group, binding, ok = s.FindBinding("nothing")
		assert.False(t, ok)
		assert.Equal(t, -1, group)
		assert.Equal(t, -1, binding)
	})

	t.Run("entries sorted by binding", func(t *testing.T) {
		src := `@group(0) @binding(3) var s: sampler;
@group(0) @binding(1) var t: texture_2d<f32>;
@group(0) @binding(2) var<storage, read_write> buf: array<f32>;
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }`
		s, err := NewShader("sorted", ShaderTypeFragment, src)
		require.NoError(t, err)

		entries := s.BindGroupLayoutDescriptor(0).Entries
		require.Len(t, entries, 3)
		assert.Equal(t, []uint32{1, 2, 3}, []uint32{entries[0].Binding, entries[1].Binding, entries[2].Binding})
		assert.Equal(t, wgpu.BufferBindingTypeStorage, entries[1].Buffer.Type)
		assert.Equal(t, uint64(4), entries[1].Buffer.MinBindingSize)
	})
}

func TestStructLayouts(t *testing.T) {
	structs := parseStructBlocks(stripComments(`
struct Inner { a: vec3<f32>, b: f32, }
struct Outer { inner: Inner, m: mat4x4<f32>, tail: vec2<f32>, }
struct Late { x: Later, }
struct Later { y: u32, }
`))
	sizes := computeStructSizes(structs)

	assert.Equal(t, wgslTypeLayout{16, 16}, sizes["Inner"])
	// 16 + 64 + 8 rounded to 16
	assert.Equal(t, wgslTypeLayout{96, 16}, sizes["Outer"])
	assert.Equal(t, wgslTypeLayout{4, 4}, sizes["Late"])

	layout, ok := resolveTypeLayout("array<vec3<f32>, 3>", sizes)
	assert.True(t, ok)
	assert.Equal(t, uint64(48), layout.size)

	_, ok = resolveTypeLayout("Unknown", sizes)
	assert.False(t, ok)
}

func TestStripComments(t *testing.T) {
	src := "a /* one /* two */ still */ b // tail\nc"
	assert.Equal(t, "a  b \nc\n", stripComments(src))
}

func TestSplitTopLevel(t *testing.T) {
	assert.Equal(t, []string{"a: f32", " b: array<f32, 4>", ""}, splitTopLevel("a: f32, b: array<f32, 4>,"))
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
