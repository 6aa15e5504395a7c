package window

import (
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MouseEvent describes a mouse button transition.
type MouseEvent struct {
	// Button is the button that changed state.
	Button common.MouseButton
	// Down is true when the button was pressed and false when it was released.
	Down bool
}

// KeyEvent describes a keyboard key transition.
type KeyEvent struct {
	// Key is the backend-independent key that changed state.
	Key common.KeyboardKey
	// Down is true when the key was pressed and false when it was released.
	Down bool
	// Repeat is true when the press was generated by key auto-repeat.
	Repeat bool
}

// DragDropEvent describes a file dropped onto the window.
type DragDropEvent struct {
	// X and Y are the drop position in window coordinates, when the backend reports one.
	X, Y int
	// Path is the file system path of the dropped file.
	Path string
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// Event is a synchronous multicast event. Handlers run on the goroutine that pumps window events,
// in the order they were subscribed.
type Event[T any] struct {
	next     uint64
	handlers []subscription[T]
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is a no-op.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.next++
	id := e.next
	e.handlers = append(e.handlers, subscription[T]{id: id, fn: fn})
	return func() {
		for i, h := range e.handlers {
			if h.id == id {
				e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// Emit calls every subscribed handler with v.
func (e *Event[T]) Emit(v T) {
	// handlers may unsubscribe while being dispatched
	hs := e.handlers
	for _, h := range hs {
		h.fn(v)
	}
}

// Signal is an Event without a payload.
type Signal struct {
	Event[struct{}]
}

// Subscribe registers fn and returns a function that removes it again.
func (s *Signal) Subscribe(fn func()) (unsubscribe func()) {
	return s.Event.Subscribe(func(struct{}) { fn() })
}

// Emit calls every subscribed handler.
func (s *Signal) Emit() {
	s.Event.Emit(struct{}{})
}

// Events groups every event a Window raises while pumping native events.
type Events struct {
	Resized      Signal
	Closed       Signal
	FocusGained  Signal
	FocusLost    Signal
	Shown        Signal
	Hidden       Signal
	Exposed      Signal
	MouseEntered Signal
	MouseLeft    Signal

	Moved      Event[common.Point]
	MouseWheel Event[mgl32.Vec2]
	MouseMove  Event[mgl32.Vec2]
	MouseDown  Event[MouseEvent]
	MouseUp    Event[MouseEvent]
	KeyDown    Event[KeyEvent]
	KeyUp      Event[KeyEvent]
	DragDrop   Event[DragDropEvent]
}
