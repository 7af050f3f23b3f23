// SPDX-License-Identifier: EPL-2.0

package arena

import "fmt"

// Key identifies a slot. A key is only valid while the slot generation it
// carries matches the slot's current generation, so a key kept after its
// value was removed never aliases a later value in the same slot.
type Key struct {
	index      uint32
	generation uint32
}

func (k Key) Index() uint32      { return k.index }
func (k Key) Generation() uint32 { return k.generation }

func (k Key) String() string {
	return fmt.Sprintf("%d@%d", k.index, k.generation)
}
