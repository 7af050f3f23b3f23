// SPDX-License-Identifier: EPL-2.0

package parameter

import "github.com/samber/lo"

// CachedValue holds the latest reading of a Value clamped to [min, max].
type CachedValue struct {
	value Value
	min   float64
	max   float64
	raw   float64
}

// NewCachedValue caches value within [min, max]. A linked value reads
// defaultValue until the first Update finds its parameter.
func NewCachedValue(value Value, min, max, defaultValue float64) CachedValue {
	raw := defaultValue
	if !value.linked {
		raw = value.fixed
	}
	return CachedValue{value: value, min: min, max: max, raw: lo.Clamp(raw, min, max)}
}

// Update refreshes the cached reading. A missing parameter keeps the
// previous reading.
func (c *CachedValue) Update(params *Parameters) {
	raw := c.raw
	if c.value.linked {
		if v, ok := params.Get(c.value.parameter); ok {
			raw = v
		}
	} else {
		raw = c.value.fixed
	}
	c.raw = lo.Clamp(raw, c.min, c.max)
}

func (c *CachedValue) Get() float64 { return c.raw }

// SetValue replaces the source value; the reading changes on next Update.
func (c *CachedValue) SetValue(v Value) { c.value = v }
