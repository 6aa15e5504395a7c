package material

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/bliss/engine/renderer/shader"
)

// GPUMaterialParams is the host side of the WGSL MaterialParams uniform (shader.GPUMaterialParamsSource).
// Size: 64 bytes, four vec4<f32> slots.
type GPUMaterialParams struct {
	Values [shader.MaterialParamsFloats]float32 // offset 0: parameters, unused slots are zero
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte little-endian buffer.
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i, v := range g.Values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
