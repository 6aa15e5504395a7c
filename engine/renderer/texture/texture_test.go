package texture_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/bliss/engine/renderer/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func writeImage(t *testing.T, dir, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func TestNewTexture2D(t *testing.T) {
	tex, err := texture.NewTexture2D("checker", checker())
	require.NoError(t, err)

	assert.Equal(t, "checker", tex.Name())
	assert.Equal(t, 2, tex.Width())
	assert.Equal(t, 2, tex.Height())

	staging := tex.StagingData()
	assert.Equal(t, uint32(2), staging.Width)
	require.Len(t, staging.Pixels, 16)
	assert.Equal(t, []byte{255, 0, 0, 255}, staging.Pixels[0:4])
	assert.Equal(t, []byte{0, 0, 255, 255}, staging.Pixels[8:12])
	assert.Equal(t, texture.DefaultSampler, tex.Sampler())
}

func TestNewTexture2DSubImage(t *testing.T) {
	sub := checker().SubImage(image.Rect(1, 1, 2, 2))
	tex, err := texture.NewTexture2D("corner", sub)
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 255, 255, 255}, tex.StagingData().Pixels)
}

func TestNewTexture2DEmpty(t *testing.T) {
	_, err := texture.NewTexture2D("empty", image.NewRGBA(image.Rectangle{}))
	assert.Error(t, err)
}

func TestSamplerOptions(t *testing.T) {
	tex, err := texture.NewTexture2D("pixels", checker(), texture.WithNearestFilter(), texture.WithRepeat())
	require.NoError(t, err)

	s := tex.Sampler()
	assert.Equal(t, wgpu.FilterModeNearest, s.MagFilter)
	assert.Equal(t, wgpu.FilterModeNearest, s.MinFilter)
	assert.Equal(t, wgpu.AddressModeRepeat, s.AddressModeU)

	tex.SetSampler(texture.DefaultSampler)
	assert.Equal(t, texture.DefaultSampler, tex.Sampler())
}

func TestLoadTexture2D(t *testing.T) {
	dir := t.TempDir()
	pngPath := writeImage(t, dir, "a.png", func(f *os.File) error { return png.Encode(f, checker()) })
	bmpPath := writeImage(t, dir, "b.bmp", func(f *os.File) error { return bmp.Encode(f, checker()) })

	for _, path := range []string{pngPath, bmpPath} {
		tex, err := texture.LoadTexture2D(path)
		require.NoError(t, err, path)
		assert.Equal(t, path, tex.Name())
		assert.Equal(t, []byte{0, 255, 0, 255}, tex.StagingData().Pixels[4:8], path)
	}

	_, err := texture.LoadTexture2D(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = texture.LoadTexture2D(junk)
	assert.Error(t, err)
}

func TestLoadTextures(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeImage(t, dir, "a.png", func(f *os.File) error { return png.Encode(f, checker()) }),
		filepath.Join(dir, "missing.png"),
		writeImage(t, dir, "c.bmp", func(f *os.File) error { return bmp.Encode(f, checker()) }),
	}

	textures, err := texture.LoadTextures(paths, texture.WithNearestFilter())
	assert.Error(t, err)
	require.Len(t, textures, 3)
	assert.NotNil(t, textures[0])
	assert.Nil(t, textures[1])
	require.NotNil(t, textures[2])
	assert.Equal(t, paths[2], textures[2].Name())
	assert.Equal(t, wgpu.FilterModeNearest, textures[2].Sampler().MagFilter)

	textures, err = texture.LoadTextures(nil)
	assert.NoError(t, err)
	assert.Empty(t, textures)
}
