package engine

import (
	"github.com/Carmen-Shannon/bliss/engine/config"
	"github.com/Carmen-Shannon/bliss/engine/renderer"
	"github.com/Carmen-Shannon/bliss/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithSettings sets the settings the engine creates its window and renderer from.
// The target FPS and profiler flag of the settings apply unless other options override them.
//
// Parameters:
//   - s: the settings, usually from config.Default or config.Load
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSettings(s config.Settings) EngineBuilderOption {
	return func(e *engine) {
		e.settings = s
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTargetFPS caps the loop rate in frames per second.
// Pass 0 to fall back to the settings value.
//
// Parameters:
//   - fps: maximum frames per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTargetFPS(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetTargetFPS(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally. The engine closes it when Run returns.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets a renderer for the engine to draw with instead of creating one from the settings.
// The engine releases it when Run returns.
//
// Parameters:
//   - r: a renderer bound to the window passed with WithWindow
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithInit registers the init callback. See Engine.SetInitCallback.
func WithInit(callback func(e Engine) error) EngineBuilderOption {
	return func(e *engine) {
		e.initCallback = callback
	}
}

// WithUpdate registers the update callback. See Engine.SetUpdateCallback.
func WithUpdate(callback func(deltaTime float64)) EngineBuilderOption {
	return func(e *engine) {
		e.updateCallback = callback
	}
}

// WithAfterUpdate registers the after-update callback. See Engine.SetAfterUpdateCallback.
func WithAfterUpdate(callback func(deltaTime float64)) EngineBuilderOption {
	return func(e *engine) {
		e.afterUpdateCallback = callback
	}
}

// WithFixedUpdate registers the fixed-update callback. See Engine.SetFixedUpdateCallback.
func WithFixedUpdate(callback func(timeStep float64)) EngineBuilderOption {
	return func(e *engine) {
		e.fixedUpdateCallback = callback
	}
}

// WithDraw registers the draw callback. See Engine.SetDrawCallback.
func WithDraw(callback func(r renderer.Renderer)) EngineBuilderOption {
	return func(e *engine) {
		e.drawCallback = callback
	}
}

// WithOnClose registers the close callback. See Engine.SetCloseCallback.
func WithOnClose(callback func()) EngineBuilderOption {
	return func(e *engine) {
		e.closeCallback = callback
	}
}
