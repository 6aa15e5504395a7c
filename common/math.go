package common

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Mat4ToBytes serializes a column-major matrix into 64 little-endian bytes, the layout a
// WGSL mat4x4<f32> uniform expects.
//
// Parameters:
//   - m: the matrix to serialize
//
// Returns:
//   - []byte: a freshly allocated 64-byte buffer
func Mat4ToBytes(m mgl32.Mat4) []byte {
	buf := make([]byte, 64)
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// OrthographicOffCenter builds an off-center orthographic projection with a 0..1 depth range,
// matching WebGPU clip space. Passing (0, width, height, 0, 0, 1) yields a pixel-space projection
// with the origin in the top-left corner and Y pointing down.
//
// Parameters:
//   - left, right: the horizontal extent of the view volume
//   - bottom, top: the vertical extent of the view volume
//   - near, far: the depth extent of the view volume
//
// Returns:
//   - mgl32.Mat4: the projection matrix in column-major order
func OrthographicOffCenter(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (near - far), 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), near / (near - far), 1,
	}
}

// ColorRGBA8 converts 8-bit RGBA channels into a normalized color vector.
func ColorRGBA8(r, g, b, a uint8) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Named colors.
var (
	ColorWhite       = mgl32.Vec4{1, 1, 1, 1}
	ColorBlack       = mgl32.Vec4{0, 0, 0, 1}
	ColorRed         = mgl32.Vec4{1, 0, 0, 1}
	ColorGreen       = mgl32.Vec4{0, 1, 0, 1}
	ColorBlue        = mgl32.Vec4{0, 0, 1, 1}
	ColorYellow      = mgl32.Vec4{1, 1, 0, 1}
	ColorOrange      = mgl32.Vec4{1, 0.647, 0, 1}
	ColorGray        = mgl32.Vec4{0.5, 0.5, 0.5, 1}
	ColorDarkGray    = mgl32.Vec4{0.1, 0.1, 0.1, 1}
	ColorTransparent = mgl32.Vec4{0, 0, 0, 0}
)
