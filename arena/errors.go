// SPDX-License-Identifier: EPL-2.0

package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrArenaFull is returned when every slot is reserved.
	ErrArenaFull = errors.New("arena is full")
	// ErrNotReserved is returned by Controller.Release for a key that holds
	// no reservation.
	ErrNotReserved = errors.New("key is not reserved")
)

// ProtocolError describes a broken reserve/insert contract. It is only ever
// used as a panic value.
type ProtocolError struct {
	Op     string
	Key    Key
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("arena: %s %s: %s", e.Op, e.Key, e.Reason)
}
