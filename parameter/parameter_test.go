// SPDX-License-Identifier: EPL-2.0

package parameter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addParameter(t *testing.T, ps *Parameters, value float64) ID {
	t.Helper()
	key, err := ps.Controller().TryReserve()
	require.NoError(t, err)
	id := NewID(key)
	ps.Add(id, New(value))
	return id
}

func TestParameter_InstantSet(t *testing.T) {
	t.Parallel()

	p := New(1)
	p.Set(3, Tween{})
	assert.InDelta(t, 3, p.Value(), 1e-12)
}

func TestParameter_LinearTween(t *testing.T) {
	t.Parallel()

	p := New(0)
	p.Set(10, Tween{Duration: time.Second})

	p.Update(0.25)
	assert.InDelta(t, 2.5, p.Value(), 1e-9)
	p.Update(0.25)
	assert.InDelta(t, 5, p.Value(), 1e-9)
	p.Update(1)
	assert.InDelta(t, 10, p.Value(), 1e-12)

	// finished tweens stay put
	p.Update(1)
	assert.InDelta(t, 10, p.Value(), 1e-12)
}

func TestTween_Easing(t *testing.T) {
	t.Parallel()

	tw := Tween{Duration: 2 * time.Second, Easing: InPowi(2)}
	assert.InDelta(t, 0.25, tw.Value(1), 1e-12)
	assert.InDelta(t, 0, tw.Value(-1), 1e-12)
	assert.InDelta(t, 1, tw.Value(5), 1e-12)

	out := Tween{Duration: time.Second, Easing: OutPowi(2)}
	assert.InDelta(t, 0.75, out.Value(0.5), 1e-12)
	assert.InDelta(t, 0.5, Linear(0.5), 1e-12)
}

func TestParameters_GetSetRemove(t *testing.T) {
	t.Parallel()

	ps := NewParameters(4)
	id := addParameter(t, ps, 0.5)

	v, ok := ps.Get(id)
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-12)

	ps.Set(id, 1, Tween{Duration: time.Second})
	ps.Update(0.5)
	v, _ = ps.Get(id)
	assert.InDelta(t, 0.75, v, 1e-9)

	assert.True(t, ps.Remove(id))
	_, ok = ps.Get(id)
	assert.False(t, ok)
	assert.False(t, ps.Remove(id))
	// setting a removed parameter is a no-op
	ps.Set(id, 3, Tween{})
	assert.Equal(t, 0, ps.Len())
}

func TestCachedValue_Fixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		min, max float64
		want     float64
	}{
		{"within range", 0.5, -1, 1, 0.5},
		{"clamped high", 3, -1, 1, 1},
		{"clamped low", -2, -1, 1, -1},
		{"open upper bound", 1000, 0, math.Inf(1), 1000},
		{"negative delay clamped", -0.1, 0, math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCachedValue(Fixed(tt.value), tt.min, tt.max, 0)
			assert.InDelta(t, tt.want, c.Get(), 1e-12)
			c.Update(nil)
			assert.InDelta(t, tt.want, c.Get(), 1e-12)
		})
	}
}

func TestCachedValue_Linked(t *testing.T) {
	t.Parallel()

	ps := NewParameters(2)
	id := addParameter(t, ps, 4)

	c := NewCachedValue(FromParameter(id), -1, 1, 0.25)
	assert.InDelta(t, 0.25, c.Get(), 1e-12, "default before first update")

	c.Update(ps)
	assert.InDelta(t, 1, c.Get(), 1e-12)

	ps.Set(id, -0.5, Tween{})
	c.Update(ps)
	assert.InDelta(t, -0.5, c.Get(), 1e-12)

	ps.Remove(id)
	c.Update(ps)
	assert.InDelta(t, -0.5, c.Get(), 1e-12, "missing parameter keeps last reading")
}

func TestCachedValue_ZeroAllocs(t *testing.T) {
	ps := NewParameters(1)
	id := addParameter(t, ps, 0.3)
	c := NewCachedValue(FromParameter(id), 0, 1, 0)

	allocs := testing.AllocsPerRun(1000, func() {
		c.Update(ps)
		_ = c.Get()
	})
	assert.Zero(t, allocs)
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.5", Fixed(0.5).String())
	id, linked := FromParameter(ID{}).Parameter()
	assert.True(t, linked)
	assert.Equal(t, "parameter 0@0", id.String())
}
