package engine

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/bliss/engine/config"
	"github.com/Carmen-Shannon/bliss/engine/input"
	"github.com/Carmen-Shannon/bliss/engine/logger"
	"github.com/Carmen-Shannon/bliss/engine/profiler"
	"github.com/Carmen-Shannon/bliss/engine/renderer"
	"github.com/Carmen-Shannon/bliss/engine/sysinfo"
	"github.com/Carmen-Shannon/bliss/engine/timing"
	"github.com/Carmen-Shannon/bliss/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadyRunning is returned by Run when the engine loop is already running.
var ErrAlreadyRunning = errors.New("engine is already running")

// engine implements the Engine interface.
// Owns the window, renderer and input for the duration of Run.
type engine struct {
	settings config.Settings

	window   window.Window
	renderer renderer.Renderer
	input    input.Input
	clock    *timing.Clock
	unsubs   []func()

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameTime  time.Duration // minimum time between updates; 0 = uncapped
	fixedTimer float64
	wait       func(time.Duration)

	initCallback        func(e Engine) error
	updateCallback      func(deltaTime float64)
	afterUpdateCallback func(deltaTime float64)
	fixedUpdateCallback func(timeStep float64)
	drawCallback        func(r renderer.Renderer)
	closeCallback       func()

	running atomic.Bool
	quit    atomic.Bool
}

// Engine is the main entry point for the engine.
// It creates the window and renderer, then drives the game loop: variable-rate Update and AfterUpdate,
// fixed-rate FixedUpdate and one rendered frame per iteration.
type Engine interface {
	// Settings returns the settings the engine was created with.
	Settings() config.Settings

	// Window returns the window, or nil outside of Run unless one was injected before the first Run.
	Window() window.Window

	// Renderer returns the renderer, or nil outside of Run unless one was injected before the first Run.
	Renderer() renderer.Renderer

	// Input returns the input snapshot of the current frame, or nil outside of Run.
	Input() input.Input

	// Clock returns the game clock, or nil before Run.
	Clock() *timing.Clock

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// TargetFPS returns the update rate cap in frames per second. 0 means uncapped.
	TargetFPS() float64

	// SetTargetFPS caps how often the loop updates and draws.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped, negative values are treated as 0)
	SetTargetFPS(fps float64)

	// SetInitCallback registers the function called once after the window, renderer and input exist.
	// Returning an error aborts Run.
	//
	// Parameters:
	//   - callback: function receiving the engine
	SetInitCallback(callback func(e Engine) error)

	// SetUpdateCallback registers the function called once per frame with the frame delta in seconds.
	SetUpdateCallback(callback func(deltaTime float64))

	// SetAfterUpdateCallback registers the function called once per frame after the update callback.
	SetAfterUpdateCallback(callback func(deltaTime float64))

	// SetFixedUpdateCallback registers the function called zero or more times per frame at the fixed time step.
	//
	// Parameters:
	//   - callback: function receiving the fixed time step in seconds
	SetFixedUpdateCallback(callback func(timeStep float64))

	// SetDrawCallback registers the function called between BeginFrame and EndFrame.
	SetDrawCallback(callback func(r renderer.Renderer))

	// SetCloseCallback registers the function called once the loop has exited, before resources are released.
	SetCloseCallback(callback func())

	// Run validates the settings, creates the window and renderer unless they were injected, and runs the
	// game loop until the window closes or Quit is called. It must be called from the main goroutine.
	// Run may be called again after it returns; the window and renderer are created afresh.
	//
	// Returns:
	//   - error: config.ErrInvalidSettings for unusable settings, or an error if start-up failed or the
	//     init callback returned one
	Run() error

	// Quit asks the running loop to stop after the current frame.
	// Safe to call multiple times; subsequent calls before the next Run are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithSettings the engine runs with config.Default().
//
// Parameters:
//   - options: functional options for engine configuration (settings, callbacks, injected window, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		settings: config.Default(),
		profiler: profiler.NewProfiler(),
		wait:     time.Sleep,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.frameTime == 0 {
		e.SetTargetFPS(e.settings.TargetFPS)
	}
	if e.settings.Profiler {
		e.profilingEnabled = true
	}
	return e
}

func (e *engine) Settings() config.Settings {
	return e.settings
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Input() input.Input {
	return e.input
}

func (e *engine) Clock() *timing.Clock {
	return e.clock
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) TargetFPS() float64 {
	if e.frameTime <= 0 {
		return 0
	}
	return math.Round(float64(time.Second) / float64(e.frameTime))
}

func (e *engine) SetTargetFPS(fps float64) {
	if fps <= 0 {
		e.frameTime = 0
		return
	}
	e.frameTime = time.Duration(float64(time.Second) / fps)
}

func (e *engine) SetInitCallback(callback func(e Engine) error) {
	e.initCallback = callback
}

func (e *engine) SetUpdateCallback(callback func(deltaTime float64)) {
	e.updateCallback = callback
}

func (e *engine) SetAfterUpdateCallback(callback func(deltaTime float64)) {
	e.afterUpdateCallback = callback
}

func (e *engine) SetFixedUpdateCallback(callback func(timeStep float64)) {
	e.fixedUpdateCallback = callback
}

func (e *engine) SetDrawCallback(callback func(r renderer.Renderer)) {
	e.drawCallback = callback
}

func (e *engine) SetCloseCallback(callback func()) {
	e.closeCallback = callback
}

func (e *engine) Quit() {
	if e.quit.CompareAndSwap(false, true) {
		logger.Logger().Debug("quit requested")
	}
}

func (e *engine) Run() error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)
	e.quit.Store(false)

	if err := e.settings.Validate(); err != nil {
		e.dispose()
		return err
	}

	logger.SetLevel(logger.ParseLevel(e.settings.LogLevel))
	logger.Logger().Info("bliss starting", "system", sysinfo.Collect())

	if err := e.setup(); err != nil {
		e.dispose()
		return err
	}

	logger.Logger().Info("starting main loop", "target_fps", e.TargetFPS(), "fixed_time_step", e.settings.FixedTimeStep)
	for e.window.Exists() && !e.quit.Load() {
		if !e.gate() {
			continue
		}
		e.frame()
	}

	logger.Logger().Warn("application shutting down")
	if e.closeCallback != nil {
		e.closeCallback()
	}
	e.dispose()
	return nil
}

// setup creates whatever was not injected, then runs the init callback.
func (e *engine) setup() error {
	if e.window == nil {
		state, err := window.ParseWindowState(e.settings.WindowState)
		if err != nil {
			return fmt.Errorf("window state: %w", err)
		}
		logger.Logger().Info("creating window", "backend", e.settings.WindowBackend, "width", e.settings.Width, "height", e.settings.Height)
		w, err := window.NewWindow(
			window.WithTitle(e.settings.Title),
			window.WithSize(e.settings.Width, e.settings.Height),
			window.WithBackend(window.Backend(e.settings.WindowBackend)),
			window.WithState(state),
		)
		if err != nil {
			return fmt.Errorf("create window: %w", err)
		}
		e.window = w
	}

	if e.renderer == nil {
		logger.Logger().Info("creating renderer", "present_mode", e.settings.PresentMode, "msaa", e.settings.MSAA)
		r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, e.window, rendererOptions(e.settings)...)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		e.renderer = r
	}

	e.unsubs = append(e.unsubs, e.window.Events().Resized.Subscribe(e.onResize))

	if e.clock == nil {
		e.clock = timing.NewClock()
	}
	e.fixedTimer = 0
	e.input = input.NewInput(e.window)

	if e.initCallback != nil {
		if err := e.initCallback(e); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	return nil
}

// gate reports whether enough time has passed since the last update to run another frame, waiting
// out the remainder when it has not.
func (e *engine) gate() bool {
	if e.frameTime <= 0 {
		return true
	}
	if remaining := e.frameTime - e.clock.SinceUpdate(); remaining >= 0 {
		e.wait(remaining)
		return false
	}
	return true
}

// frame runs one iteration of the loop: update, fixed updates, draw.
func (e *engine) frame() {
	e.clock.Update()
	dt := e.clock.Delta()

	e.window.PumpEvents()
	e.input.Begin()

	if e.updateCallback != nil {
		e.updateCallback(dt)
	}
	if e.afterUpdateCallback != nil {
		e.afterUpdateCallback(dt)
	}

	step := e.settings.FixedTimeStep
	e.fixedTimer += dt
	for e.fixedTimer >= step {
		if e.fixedUpdateCallback != nil {
			e.fixedUpdateCallback(step)
		}
		e.fixedTimer -= step
	}

	e.draw()
	e.input.End()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(e.renderer.DrawCalls())
	}
}

func (e *engine) draw() {
	if err := e.renderer.BeginFrame(); err != nil {
		logger.Logger().Debug("skipping frame", "error", err)
		return
	}
	if e.drawCallback != nil {
		e.drawCallback(e.renderer)
	}
	if err := e.renderer.EndFrame(); err != nil {
		logger.Logger().Error("end frame", "error", err)
		return
	}
	e.renderer.Present()
}

func (e *engine) onResize() {
	width, height := e.window.Size()
	if err := e.renderer.Resize(width, height); err != nil {
		logger.Logger().Error("resize surface", "width", width, "height", height, "error", err)
	}
}

// dispose releases what setup created or was given, in reverse order.
func (e *engine) dispose() {
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil

	if e.input != nil {
		e.input.Destroy()
		e.input = nil
	}
	if e.renderer != nil {
		e.renderer.Release()
		e.renderer = nil
	}
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			logger.Logger().Error("close window", "error", err)
		}
		e.window = nil
	}
}

// rendererOptions maps the settings onto renderer builder options.
func rendererOptions(s config.Settings) []renderer.RendererBuilderOption {
	mode := renderer.PresentModeVSync
	switch s.PresentMode {
	case config.PresentUncapped:
		mode = renderer.PresentModeUncapped
	case config.PresentMailbox:
		mode = renderer.PresentModeMailbox
	}
	msaa := renderer.MSAAOff
	if s.MSAA {
		msaa = renderer.MSAA4x
	}
	c := s.ClearColor
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithMSAA(msaa),
		renderer.WithClearColor(mgl32.Vec4{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}),
	}
}
