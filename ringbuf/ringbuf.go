// SPDX-License-Identifier: EPL-2.0

// Package ringbuf implements a bounded single-producer/single-consumer
// queue for handing values between the control and processing goroutines
// without locks.
//
// Exactly one goroutine may use the Producer and exactly one goroutine may
// use the Consumer. Push and Pop never block and never allocate.
package ringbuf

import (
	"errors"
	"sync/atomic"
)

// ErrFull is returned by Push when the queue has no room.
var ErrFull = errors.New("ring buffer is full")

const cacheLine = 64

type ring[T any] struct {
	buf []T

	// head is written by the consumer only, tail by the producer only.
	head atomic.Uint64
	_    [cacheLine - 8]byte
	tail atomic.Uint64
	_    [cacheLine - 8]byte
}

// Producer is the write end of a queue.
type Producer[T any] struct {
	r *ring[T]
}

// Consumer is the read end of a queue.
type Consumer[T any] struct {
	r *ring[T]
}

// New creates a queue holding at most capacity values.
func New[T any](capacity int) (*Producer[T], *Consumer[T]) {
	if capacity < 1 {
		capacity = 1
	}
	r := &ring[T]{buf: make([]T, capacity)}
	return &Producer[T]{r: r}, &Consumer[T]{r: r}
}

// len is exact from either end when the other end is idle. Otherwise head
// is read first, so tail cannot fall behind it; the other end moving in
// between can only overshoot, which the clamp absorbs.
func (r *ring[T]) len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int(min(tail-head, uint64(len(r.buf))))
}

// Push appends v. It returns ErrFull instead of waiting for room.
func (p *Producer[T]) Push(v T) error {
	r := p.r
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.buf)) {
		return ErrFull
	}
	r.buf[tail%uint64(len(r.buf))] = v
	r.tail.Store(tail + 1)
	return nil
}

func (p *Producer[T]) IsFull() bool  { return p.r.len() == len(p.r.buf) }
func (p *Producer[T]) Len() int      { return p.r.len() }
func (p *Producer[T]) Capacity() int { return len(p.r.buf) }

// Pop removes the oldest value. The vacated slot is zeroed so the queue
// keeps no reference to it.
func (c *Consumer[T]) Pop() (T, bool) {
	var zero T
	r := c.r
	head := r.head.Load()
	if head == r.tail.Load() {
		return zero, false
	}
	idx := head % uint64(len(r.buf))
	v := r.buf[idx]
	r.buf[idx] = zero
	r.head.Store(head + 1)
	return v, true
}

func (c *Consumer[T]) IsEmpty() bool { return c.r.len() == 0 }
func (c *Consumer[T]) Len() int      { return c.r.len() }
func (c *Consumer[T]) Capacity() int { return len(c.r.buf) }
