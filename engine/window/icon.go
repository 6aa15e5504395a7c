package window

import (
	"image"

	"golang.org/x/image/draw"
)

// iconSizes are the square sizes generated for window managers that pick the closest match.
var iconSizes = []int{16, 32, 48}

// iconSet returns img converted to NRGBA followed by smaller square copies for each entry in iconSizes
// that is smaller than img. A nil image yields an empty set, which clears the icon.
func iconSet(img image.Image) []image.Image {
	if img == nil {
		return nil
	}
	src := toNRGBA(img)
	set := []image.Image{src}
	b := src.Bounds()
	for _, size := range iconSizes {
		if size >= b.Dx() || size >= b.Dy() {
			continue
		}
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		set = append(set, dst)
	}
	return set
}

// toNRGBA copies img into a tightly packed NRGBA image anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
