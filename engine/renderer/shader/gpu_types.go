package shader

import (
	_ "embed"
)

// GPUProjViewSource is the WGSL definition of the ProjView uniform: one column-major mat4x4<f32>
// holding projection * view (64 bytes).
//
//go:embed assets/proj_view.wgsl
var GPUProjViewSource string

// GPUPrimitiveVertexSource is the WGSL definition of the PrimitiveVertex2D vertex input:
// position vec2<f32> at location 0 and color vec4<f32> at location 1 (24-byte stride).
//
//go:embed assets/primitive_vertex.wgsl
var GPUPrimitiveVertexSource string

// GPUMaterialParamsSource is the WGSL definition of the MaterialParams uniform. It holds up to
// MaterialParamsFloats parameters packed into vec4 slots.
//
//go:embed assets/material_params.wgsl
var GPUMaterialParamsSource string

// MaterialParamsFloats is the number of float parameters the MaterialParams uniform can carry.
const MaterialParamsFloats = 16
