// SPDX-License-Identifier: EPL-2.0

package arena

import "iter"

type slot[T any] struct {
	value    T
	occupied bool
}

// Arena stores values at keys reserved through its Controller. Only one
// goroutine may use the Arena methods.
type Arena[T any] struct {
	controller *Controller
	slots      []slot[T]
	len        int
}

// New creates an arena with a fixed capacity.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{
		controller: newController(capacity),
		slots:      make([]slot[T], capacity),
	}
}

func (a *Arena[T]) Controller() *Controller { return a.controller }
func (a *Arena[T]) Capacity() int           { return len(a.slots) }
func (a *Arena[T]) Len() int                { return a.len }

// InsertWithKey stores value at a reserved key. It panics with a
// *ProtocolError if the key was never reserved, is stale, or already holds
// a value.
func (a *Arena[T]) InsertWithKey(key Key, value T) {
	if int(key.index) >= len(a.slots) {
		panic(&ProtocolError{Op: "insert", Key: key, Reason: "index out of range"})
	}
	s := &a.controller.slots[key.index]
	if !s.reserved.Load() {
		panic(&ProtocolError{Op: "insert", Key: key, Reason: "slot not reserved"})
	}
	if s.generation.Load() != key.generation {
		panic(&ProtocolError{Op: "insert", Key: key, Reason: "stale key"})
	}
	sl := &a.slots[key.index]
	if sl.occupied {
		panic(&ProtocolError{Op: "insert", Key: key, Reason: "slot already occupied"})
	}
	sl.value = value
	sl.occupied = true
	a.len++
}

func (a *Arena[T]) valid(key Key) bool {
	return int(key.index) < len(a.slots) &&
		a.slots[key.index].occupied &&
		a.controller.slots[key.index].generation.Load() == key.generation
}

// Get returns a pointer to the value at key, or nil if key is not live.
func (a *Arena[T]) Get(key Key) *T {
	if !a.valid(key) {
		return nil
	}
	return &a.slots[key.index].value
}

// Remove takes the value at key out of the arena and frees its slot.
func (a *Arena[T]) Remove(key Key) (T, bool) {
	var zero T
	if !a.valid(key) {
		return zero, false
	}
	return a.take(key.index), true
}

func (a *Arena[T]) take(index uint32) T {
	var zero T
	sl := &a.slots[index]
	v := sl.value
	sl.value = zero
	sl.occupied = false
	a.len--
	a.controller.free(index)
	return v
}

func (a *Arena[T]) key(index uint32) Key {
	return Key{index: index, generation: a.controller.slots[index].generation.Load()}
}

// All iterates the occupied slots in slot order.
func (a *Arena[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range a.slots {
			if !a.slots[i].occupied {
				continue
			}
			if !yield(a.key(uint32(i)), &a.slots[i].value) {
				return
			}
		}
	}
}

// DrainFilter removes and yields every value for which pred returns true.
// Values not yet reached when the caller stops iterating stay in the arena.
func (a *Arena[T]) DrainFilter(pred func(*T) bool) iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for i := range a.slots {
			sl := &a.slots[i]
			if !sl.occupied || !pred(&sl.value) {
				continue
			}
			key := a.key(uint32(i))
			if !yield(key, a.take(uint32(i))) {
				return
			}
		}
	}
}
