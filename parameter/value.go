// SPDX-License-Identifier: EPL-2.0

package parameter

import (
	"fmt"

	"github.com/ik5/audmix/arena"
)

// ID identifies a parameter in a Parameters arena.
type ID struct {
	key arena.Key
}

// NewID wraps an arena key reserved from the parameters controller.
func NewID(key arena.Key) ID { return ID{key: key} }

func (id ID) Key() arena.Key  { return id.key }
func (id ID) String() string { return "parameter " + id.key.String() }

// Value is a number that is either fixed or read from a parameter.
type Value struct {
	fixed     float64
	parameter ID
	linked    bool
}

// Fixed returns a constant Value.
func Fixed(v float64) Value { return Value{fixed: v} }

// FromParameter returns a Value that follows a parameter.
func FromParameter(id ID) Value { return Value{parameter: id, linked: true} }

// Parameter returns the linked parameter, if any.
func (v Value) Parameter() (ID, bool) { return v.parameter, v.linked }

func (v Value) String() string {
	if v.linked {
		return v.parameter.String()
	}
	return fmt.Sprintf("%g", v.fixed)
}
