// Package config holds the user-facing game settings. Settings can be built in code starting from Default()
// or loaded from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned by Validate (and therefore Load and Parse) when a setting is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

const (
	// BackendGLFW selects the GLFW window backend.
	BackendGLFW = "glfw"
	// BackendSDL selects the SDL2 window backend.
	BackendSDL = "sdl"

	// PresentVSync waits for vertical blank before presenting.
	PresentVSync = "vsync"
	// PresentUncapped presents immediately.
	PresentUncapped = "uncapped"
	// PresentMailbox presents on vertical blank without blocking the producer.
	PresentMailbox = "mailbox"
)

// Settings describes how the engine sets up its window, renderer and loop.
type Settings struct {
	Title         string     `yaml:"title"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	WindowBackend string     `yaml:"window_backend"`
	WindowState   []string   `yaml:"window_state"`
	PresentMode   string     `yaml:"present_mode"`
	MSAA          bool       `yaml:"msaa"`
	TargetFPS     float64    `yaml:"target_fps"`
	FixedTimeStep float64    `yaml:"fixed_time_step"`
	LogLevel      string     `yaml:"log_level"`
	ClearColor    [4]float64 `yaml:"clear_color"`
	Profiler      bool       `yaml:"profiler"`
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		Title:         "Bliss",
		Width:         1280,
		Height:        720,
		WindowBackend: BackendGLFW,
		WindowState:   []string{"resizable"},
		PresentMode:   PresentVSync,
		TargetFPS:     0,
		FixedTimeStep: 1.0 / 60.0,
		LogLevel:      "info",
		ClearColor:    [4]float64{0.1, 0.1, 0.1, 1},
	}
}

// Load reads a YAML settings file. Fields missing from the file keep their Default() values.
//
// Parameters:
//   - path: the file system path of the YAML file
//
// Returns:
//   - Settings: the merged and validated settings
//   - error: an error if the file cannot be read, parsed or validated
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML settings on top of Default() and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	s.WindowBackend = strings.ToLower(s.WindowBackend)
	s.PresentMode = strings.ToLower(s.PresentMode)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the engine cannot run with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	switch s.WindowBackend {
	case BackendGLFW, BackendSDL:
	default:
		return fmt.Errorf("%w: unknown window backend %q", ErrInvalidSettings, s.WindowBackend)
	}
	switch s.PresentMode {
	case PresentVSync, PresentUncapped, PresentMailbox:
	default:
		return fmt.Errorf("%w: unknown present mode %q", ErrInvalidSettings, s.PresentMode)
	}
	if s.TargetFPS < 0 {
		return fmt.Errorf("%w: target fps %v", ErrInvalidSettings, s.TargetFPS)
	}
	if s.FixedTimeStep <= 0 {
		return fmt.Errorf("%w: fixed time step %v", ErrInvalidSettings, s.FixedTimeStep)
	}
	return nil
}
