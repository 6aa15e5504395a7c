package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/bliss/engine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := config.Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 1280, s.Width)
	assert.Equal(t, 720, s.Height)
	assert.Equal(t, config.BackendGLFW, s.WindowBackend)
	assert.Zero(t, s.TargetFPS)
	assert.InDelta(t, 1.0/60.0, s.FixedTimeStep, 1e-12)
}

func TestParse(t *testing.T) {
	t.Run("overrides merge onto defaults", func(t *testing.T) {
		s, err := config.Parse([]byte("title: Demo\nwidth: 640\nwindow_backend: SDL\ntarget_fps: 144\n"))
		require.NoError(t, err)
		assert.Equal(t, "Demo", s.Title)
		assert.Equal(t, 640, s.Width)
		assert.Equal(t, 720, s.Height)
		assert.Equal(t, config.BackendSDL, s.WindowBackend)
		assert.Equal(t, 144.0, s.TargetFPS)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		cases := map[string]string{
			"width":        "width: 0\n",
			"backend":      "window_backend: wayland\n",
			"present mode": "present_mode: sometimes\n",
			"target fps":   "target_fps: -1\n",
			"fixed step":   "fixed_time_step: 0\n",
		}
		for name, doc := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := config.Parse([]byte(doc))
				assert.ErrorIs(t, err, config.ErrInvalidSettings)
			})
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("width: [1, 2"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 480\nclear_color: [1, 0, 0, 1]\n"), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 480, s.Height)
	assert.Equal(t, [4]float64{1, 0, 0, 1}, s.ClearColor)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
