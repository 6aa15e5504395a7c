package material

import (
	"github.com/Carmen-Shannon/bliss/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithBlendState sets the blend state of the effect. Without this option blending is disabled.
//
// Parameters:
//   - blend: the blend state, or nil to disable blending
//
// Returns:
//   - MaterialBuilderOption: a function that applies the blend state option to a material
func WithBlendState(blend *wgpu.BlendState) MaterialBuilderOption {
	return func(m *material) {
		m.blendState = blend
	}
}

// WithMaterialMap sets a map at construction.
//
// Parameters:
//   - mapType: the map slot
//   - mm: the map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the map option to a material
func WithMaterialMap(mapType MaterialMapType, mm MaterialMap) MaterialBuilderOption {
	return func(m *material) {
		m.maps[mapType] = mm
	}
}

// WithParameters sets the float parameters. Values beyond shader.MaterialParamsFloats are dropped.
//
// Parameters:
//   - params: the parameters
//
// Returns:
//   - MaterialBuilderOption: a function that applies the parameters option to a material
func WithParameters(params ...float32) MaterialBuilderOption {
	return func(m *material) {
		m.parameters = append([]float32(nil), params[:min(len(params), shader.MaterialParamsFloats)]...)
	}
}
