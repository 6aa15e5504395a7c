package common_test

import (
	"testing"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrthographicOffCenter(t *testing.T) {
	proj := common.OrthographicOffCenter(0, 800, 600, 0, 0, 1)

	t.Run("top-left maps to clip (-1, 1)", func(t *testing.T) {
		p := proj.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		assert.InDelta(t, -1, p.X(), 1e-5)
		assert.InDelta(t, 1, p.Y(), 1e-5)
		assert.InDelta(t, 0, p.Z(), 1e-5)
	})

	t.Run("bottom-right maps to clip (1, -1)", func(t *testing.T) {
		p := proj.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
		assert.InDelta(t, 1, p.X(), 1e-5)
		assert.InDelta(t, -1, p.Y(), 1e-5)
	})

	t.Run("depth stays within zero to one", func(t *testing.T) {
		p := proj.Mul4x1(mgl32.Vec4{400, 300, -1, 1})
		assert.InDelta(t, 1, p.Z(), 1e-5)
	})
}

func TestMat4ToBytes(t *testing.T) {
	b := common.Mat4ToBytes(mgl32.Ident4())
	assert.Len(t, b, 64)
	// 1.0f little-endian
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, b[0:4])
	assert.Equal(t, []byte{0, 0, 0, 0}, b[4:8])
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, common.SliceToBytes([]float32{}))
	assert.Len(t, common.SliceToBytes([]float32{1, 2, 3}), 12)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, common.Coalesce(0, 0, 3, 4))
	assert.Equal(t, "", common.Coalesce[string]())
}

func TestColorRGBA8(t *testing.T) {
	c := common.ColorRGBA8(255, 0, 51, 255)
	assert.InDelta(t, 1, c[0], 1e-6)
	assert.InDelta(t, 0.2, c[2], 1e-6)
}

func TestPoint(t *testing.T) {
	p := common.Point{X: 10, Y: 20}
	assert.Equal(t, common.Point{X: 15, Y: 18}, p.Add(common.Point{X: 5, Y: -2}))
	assert.Equal(t, common.Point{X: 5, Y: 22}, p.Sub(common.Point{X: 5, Y: -2}))
}
