// Package texture decodes images into RGBA staging data that the renderer uploads on demand.
//
// png and jpeg come from the standard library, bmp and webp from golang.org/x/image.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// texture2D is the implementation of the Texture2D interface.
type texture2D struct {
	name    string
	staging common.TextureStagingData
	sampler common.SamplerStagingData
}

// Texture2D is a decoded 2D image and the sampler it is drawn with. Pixels stay on the CPU; the
// Renderer uploads them when a bind group first needs the texture. Texture2D values are comparable
// and are used as cache keys.
type Texture2D interface {
	// Name returns the source path or the name the texture was created with.
	Name() string

	// Width returns the width in pixels.
	Width() int

	// Height returns the height in pixels.
	Height() int

	// Size returns the width and height in pixels.
	Size() common.Size

	// StagingData returns the tightly packed RGBA8 pixels for upload.
	StagingData() common.TextureStagingData

	// Sampler returns the sampler configuration.
	Sampler() common.SamplerStagingData

	// SetSampler replaces the sampler configuration. Bind groups built afterwards use the new sampler.
	//
	// Parameters:
	//   - sampler: the new sampler configuration
	SetSampler(sampler common.SamplerStagingData)
}

var _ Texture2D = &texture2D{}

// DefaultSampler clamps to the edge and filters linearly.
var DefaultSampler = common.SamplerStagingData{
	AddressModeU: wgpu.AddressModeClampToEdge,
	AddressModeV: wgpu.AddressModeClampToEdge,
	AddressModeW: wgpu.AddressModeClampToEdge,
	MagFilter:    wgpu.FilterModeLinear,
	MinFilter:    wgpu.FilterModeLinear,
	MipmapFilter: wgpu.MipmapFilterModeNearest,
}

// NewTexture2D converts an image to RGBA8 staging data.
//
// Parameters:
//   - name: a name for logging and labels, usually the source path
//   - img: the source image in any color model
//   - opts: variadic list of Texture2DBuilderOption functions to configure the texture
//
// Returns:
//   - Texture2D: the new texture
//   - error: an error if the image is empty
func NewTexture2D(name string, img image.Image, opts ...Texture2DBuilderOption) (Texture2D, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("texture %s: image is empty", name)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	t := &texture2D{
		name: name,
		staging: common.TextureStagingData{
			Pixels: rgba.Pix,
			Width:  uint32(bounds.Dx()),
			Height: uint32(bounds.Dy()),
		},
		sampler: DefaultSampler,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// LoadTexture2D decodes a png, jpeg, bmp or webp file.
//
// Parameters:
//   - path: the image file path
//   - opts: variadic list of Texture2DBuilderOption functions to configure the texture
//
// Returns:
//   - Texture2D: the decoded texture
//   - error: an error if the file cannot be opened or decoded
func LoadTexture2D(path string, opts ...Texture2DBuilderOption) (Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: failed to decode: %w", path, err)
	}
	t, err := NewTexture2D(path, img, opts...)
	if err != nil {
		return nil, err
	}
	logger.Logger().Debug("texture decoded", "path", path, "format", format, "width", t.Width(), "height", t.Height())
	return t, nil
}

var (
	decodePool     worker.DynamicWorkerPool
	decodePoolOnce sync.Once
)

func pool() worker.DynamicWorkerPool {
	decodePoolOnce.Do(func() {
		decodePool = worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, time.Second)
	})
	return decodePool
}

// LoadTextures decodes several files in parallel on a shared worker pool.
//
// Parameters:
//   - paths: the image file paths
//   - opts: options applied to every texture
//
// Returns:
//   - []Texture2D: the textures in the order of paths; entries that failed are nil
//   - error: every failure joined, or nil
func LoadTextures(paths []string, opts ...Texture2DBuilderOption) ([]Texture2D, error) {
	textures := make([]Texture2D, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	p := pool()
	for i, path := range paths {
		wg.Add(1)
		p.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				textures[i], errs[i] = LoadTexture2D(path, opts...)
				return nil, errs[i]
			},
		})
	}
	wg.Wait()

	return textures, errors.Join(errs...)
}

func (t *texture2D) Name() string {
	return t.name
}

func (t *texture2D) Width() int {
	return int(t.staging.Width)
}

func (t *texture2D) Height() int {
	return int(t.staging.Height)
}

func (t *texture2D) Size() common.Size {
	return common.Size{Width: t.Width(), Height: t.Height()}
}

func (t *texture2D) StagingData() common.TextureStagingData {
	return t.staging
}

func (t *texture2D) Sampler() common.SamplerStagingData {
	return t.sampler
}

func (t *texture2D) SetSampler(sampler common.SamplerStagingData) {
	t.sampler = sampler
}
