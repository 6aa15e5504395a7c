package primitive_batch

import (
	_ "embed"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// primitiveShaderSource draws PrimitiveVertex2D with a ProjView uniform at group 0.
//
//go:embed assets/primitive.wgsl
var primitiveShaderSource string

// PrimitiveVertex2D matches the WGSL PrimitiveVertex2D vertex input.
// Size: 24 bytes, position at offset 0 and color at offset 8.
type PrimitiveVertex2D struct {
	Position mgl32.Vec2 // location 0
	Color    mgl32.Vec4 // location 1, RGBA in the 0 to 1 range
}

// PrimitiveVertex2DSize is the vertex stride in bytes.
const PrimitiveVertex2DSize = int(unsafe.Sizeof(PrimitiveVertex2D{}))
