package material

import (
	"fmt"

	"github.com/Carmen-Shannon/bliss/engine/renderer/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialMapType names the role a texture plays in a material.
type MaterialMapType int

const (
	MaterialMapAlbedo MaterialMapType = iota
	MaterialMapMetallic
	MaterialMapNormal
	MaterialMapRoughness
	MaterialMapOcclusion
	MaterialMapEmission
	MaterialMapHeight
)

var materialMapNames = [...]string{
	MaterialMapAlbedo:    "albedo",
	MaterialMapMetallic:  "metallic",
	MaterialMapNormal:    "normal",
	MaterialMapRoughness: "roughness",
	MaterialMapOcclusion: "occlusion",
	MaterialMapEmission:  "emission",
	MaterialMapHeight:    "height",
}

// String returns the lower-case name used by shader provider annotations.
func (t MaterialMapType) String() string {
	if t < 0 || int(t) >= len(materialMapNames) {
		return fmt.Sprintf("MaterialMapType(%d)", int(t))
	}
	return materialMapNames[t]
}

// ParseMaterialMapType maps an annotation name such as "albedo" to its MaterialMapType.
//
// Parameters:
//   - name: the lower-case map name
//
// Returns:
//   - MaterialMapType: the map type
//   - bool: false if the name is unknown
func ParseMaterialMapType(name string) (MaterialMapType, bool) {
	for i, n := range materialMapNames {
		if n == name {
			return MaterialMapType(i), true
		}
	}
	return 0, false
}

// MaterialMap is the texture, optional color and scalar value of one map slot.
type MaterialMap struct {
	// Texture is nil for maps that only carry a color or a value.
	Texture texture.Texture2D

	// Color is nil when the map has no color.
	Color *mgl32.Vec4

	Value float32
}

// TextureLayout locates a texture and its sampler in the material's pipeline.
type TextureLayout struct {
	// Name is the WGSL variable name of the texture.
	Name string

	Group          int
	TextureBinding int
	SamplerBinding int
}
