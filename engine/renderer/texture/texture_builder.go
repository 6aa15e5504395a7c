package texture

import (
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture2DBuilderOption is a functional option applied to a texture during construction.
type Texture2DBuilderOption func(*texture2D)

// WithSampler replaces DefaultSampler.
//
// Parameters:
//   - sampler: the sampler configuration
//
// Returns:
//   - Texture2DBuilderOption: a function that applies the sampler option to a texture
func WithSampler(sampler common.SamplerStagingData) Texture2DBuilderOption {
	return func(t *texture2D) {
		t.sampler = sampler
	}
}

// WithNearestFilter samples without filtering, for pixel art.
func WithNearestFilter() Texture2DBuilderOption {
	return func(t *texture2D) {
		t.sampler.MagFilter = wgpu.FilterModeNearest
		t.sampler.MinFilter = wgpu.FilterModeNearest
	}
}

// WithRepeat wraps texture coordinates outside 0 to 1 instead of clamping them.
func WithRepeat() Texture2DBuilderOption {
	return func(t *texture2D) {
		t.sampler.AddressModeU = wgpu.AddressModeRepeat
		t.sampler.AddressModeV = wgpu.AddressModeRepeat
		t.sampler.AddressModeW = wgpu.AddressModeRepeat
	}
}
