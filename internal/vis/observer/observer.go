// Package observer provides ordered callback registration for viewport state changes.
package observer

// Connection identifies one registered callback.
type Connection uint64

// Signal dispatches a value to its connected callbacks in registration order.
// A Signal is not safe for concurrent use; it is meant to be emitted from the
// UI thread after the emitting state is fully updated.
type Signal[T any] struct {
	slots  []slot[T]
	nextID Connection
}

type slot[T any] struct {
	id Connection
	fn func(T)
}

// Connect registers fn and returns a handle for Disconnect.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	s.nextID++
	s.slots = append(s.slots, slot[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes a callback. Unknown handles are ignored.
func (s *Signal[T]) Disconnect(c Connection) {
	for i, sl := range s.slots {
		if sl.id == c {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

// Emit calls every connected callback with v. Callbacks connected or
// disconnected during Emit take effect on the next Emit.
func (s *Signal[T]) Emit(v T) {
	slots := s.slots
	for _, sl := range slots {
		sl.fn(v)
	}
}

// Len returns the number of connected callbacks.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}
