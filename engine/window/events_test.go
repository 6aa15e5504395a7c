package window

import (
	"testing"

	"github.com/Carmen-Shannon/bliss/common"
	"github.com/stretchr/testify/assert"
)

func TestEventSubscribe(t *testing.T) {
	var e Event[int]
	var got []int
	unsubA := e.Subscribe(func(v int) { got = append(got, v) })
	e.Subscribe(func(v int) { got = append(got, v*10) })
	assert.Equal(t, 2, e.Len())

	e.Emit(1)
	assert.Equal(t, []int{1, 10}, got)

	unsubA()
	unsubA()
	assert.Equal(t, 1, e.Len())

	got = nil
	e.Emit(2)
	assert.Equal(t, []int{20}, got)
}

func TestEventUnsubscribeDuringEmit(t *testing.T) {
	var e Event[string]
	calls := 0
	var unsub func()
	unsub = e.Subscribe(func(string) {
		calls++
		unsub()
	})
	e.Subscribe(func(string) { calls++ })

	e.Emit("x")
	assert.Equal(t, 2, calls)
	e.Emit("y")
	assert.Equal(t, 3, calls)
}

func TestSignal(t *testing.T) {
	var s Signal
	n := 0
	unsub := s.Subscribe(func() { n++ })
	s.Emit()
	s.Emit()
	unsub()
	s.Emit()
	assert.Equal(t, 2, n)
}

func TestEventsPayloads(t *testing.T) {
	var ev Events
	var moved common.Point
	var key KeyEvent
	ev.Moved.Subscribe(func(p common.Point) { moved = p })
	ev.KeyDown.Subscribe(func(k KeyEvent) { key = k })

	ev.Moved.Emit(common.Point{X: 4, Y: 2})
	ev.KeyDown.Emit(KeyEvent{Key: common.KeyW, Down: true, Repeat: true})

	assert.Equal(t, common.Point{X: 4, Y: 2}, moved)
	assert.Equal(t, KeyEvent{Key: common.KeyW, Down: true, Repeat: true}, key)
}
