// SPDX-License-Identifier: EPL-2.0

package arena

import "sync/atomic"

// slotState is the part of a slot visible to both sides.
type slotState struct {
	reserved   atomic.Bool
	generation atomic.Uint32
}

// Controller reserves keys for an Arena. It is safe for concurrent use.
type Controller struct {
	slots    []slotState
	next     atomic.Uint32
	reserved atomic.Int32
}

func newController(capacity int) *Controller {
	return &Controller{slots: make([]slotState, capacity)}
}

// Capacity is the number of slots.
func (c *Controller) Capacity() int { return len(c.slots) }

// Reserved is the number of reserved slots, occupied or not.
func (c *Controller) Reserved() int { return int(c.reserved.Load()) }

// TryReserve claims a free slot and returns the key a value must be
// inserted with. It returns ErrArenaFull when no slot is free.
func (c *Controller) TryReserve() (Key, error) {
	n := uint32(len(c.slots))
	if n == 0 {
		return Key{}, ErrArenaFull
	}

	start := c.next.Load()
	for i := range n {
		idx := (start + i) % n
		s := &c.slots[idx]
		if s.reserved.CompareAndSwap(false, true) {
			c.next.Store((idx + 1) % n)
			c.reserved.Add(1)
			return Key{index: idx, generation: s.generation.Load()}, nil
		}
	}

	return Key{}, ErrArenaFull
}

// Release gives back a reservation whose value was never handed to the
// processing side, e.g. because sending the insert command failed.
func (c *Controller) Release(key Key) error {
	if int(key.index) >= len(c.slots) {
		return ErrNotReserved
	}
	s := &c.slots[key.index]
	if !s.reserved.Load() || s.generation.Load() != key.generation {
		return ErrNotReserved
	}
	c.free(key.index)
	return nil
}

// free bumps the generation before dropping the reservation so a reserving
// goroutine never observes the old generation on a free slot.
func (c *Controller) free(index uint32) {
	s := &c.slots[index]
	s.generation.Add(1)
	s.reserved.Store(false)
	c.reserved.Add(-1)
}
