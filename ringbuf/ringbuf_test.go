// SPDX-License-Identifier: EPL-2.0

package ringbuf

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_FIFO(t *testing.T) {
	t.Parallel()

	p, c := New[int](3)
	require.NoError(t, p.Push(1))
	require.NoError(t, p.Push(2))
	require.NoError(t, p.Push(3))
	assert.True(t, p.IsFull())
	assert.ErrorIs(t, p.Push(4), ErrFull)

	for want := 1; want <= 3; want++ {
		got, ok := c.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := c.Pop()
	assert.False(t, ok)
	assert.True(t, c.IsEmpty())
}

func TestRing_WrapAround(t *testing.T) {
	t.Parallel()

	p, c := New[int](2)
	for i := range 10 {
		require.NoError(t, p.Push(i))
		got, ok := c.Pop()
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, 0, p.Len())
}

func TestRing_PopReleasesReference(t *testing.T) {
	t.Parallel()

	p, c := New[*int](1)
	v := 7
	require.NoError(t, p.Push(&v))
	_, ok := c.Pop()
	require.True(t, ok)
	assert.Nil(t, p.r.buf[0])
}

func TestRing_MinimumCapacity(t *testing.T) {
	t.Parallel()

	p, _ := New[int](0)
	assert.Equal(t, 1, p.Capacity())
}

func TestRing_ConcurrentOrdering(t *testing.T) {
	t.Parallel()

	const total = 10000
	p, c := New[int](16)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; {
			if p.Push(i) == nil {
				i++
			}
		}
	}()

	next := 0
	for next < total {
		if v, ok := c.Pop(); ok {
			if v != next {
				t.Fatalf("Pop() = %d, want %d", v, next)
			}
			next++
		}
	}
	wg.Wait()
}

func TestRing_LenStaysInRangeUnderLoad(t *testing.T) {
	t.Parallel()

	const total = 100000
	p, c := New[int](4)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; {
			if n := p.Len(); n < 0 || n > p.Capacity() {
				t.Errorf("producer Len() = %d, want 0..%d", n, p.Capacity())
			}
			if p.Push(i) == nil {
				i++
			}
		}
	}()

	for popped := 0; popped < total; {
		if n := c.Len(); n < 0 || n > c.Capacity() {
			t.Fatalf("consumer Len() = %d, want 0..%d", n, c.Capacity())
		}
		if _, ok := c.Pop(); ok {
			popped++
		}
	}
	wg.Wait()
}

func TestRing_ZeroAllocs(t *testing.T) {
	p, c := New[int](4)
	allocs := testing.AllocsPerRun(1000, func() {
		_ = p.Push(1)
		_, _ = c.Pop()
	})
	assert.Zero(t, allocs)
}
