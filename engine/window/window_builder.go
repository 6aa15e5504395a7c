package window

import "image"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area size.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
		w.height = height
	}
}

// WithMaxSize sets the maximum size the user can resize the window to. Zero leaves a dimension unbounded.
//
// Parameters:
//   - maxWidth: maximum width in pixels
//   - maxHeight: maximum height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxSize(maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = maxWidth
		w.maxHeight = maxHeight
	}
}

// WithMinSize sets the minimum size the user can resize the window to. Zero leaves a dimension unbounded.
//
// Parameters:
//   - minWidth: minimum width in pixels
//   - minHeight: minimum height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(minWidth, minHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = minWidth
		w.minHeight = minHeight
	}
}

// WithBackend selects the native windowing library. Defaults to BackendGLFW.
//
// Parameters:
//   - backend: BackendGLFW or BackendSDL
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithBackend(backend Backend) WindowBuilderOption {
	return func(w *engineWindow) {
		w.backend = backend
	}
}

// WithState sets the state flags the window is created with. Defaults to StateResizable.
//
// Parameters:
//   - state: the initial flags
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithState(state WindowState) WindowBuilderOption {
	return func(w *engineWindow) {
		w.state = state
	}
}

// WithIcon sets the window icon applied right after the window is created.
//
// Parameters:
//   - img: the icon image
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithIcon(img image.Image) WindowBuilderOption {
	return func(w *engineWindow) {
		w.icon = img
	}
}
