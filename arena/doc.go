// SPDX-License-Identifier: EPL-2.0

// Package arena provides a fixed-capacity slotted container with stable,
// generation-checked keys.
//
// An Arena is split across two goroutines. The control side holds the
// Controller and reserves keys with TryReserve; it may do so at any time
// and from any goroutine. The processing side owns the Arena itself and
// inserts values at reserved keys, iterates them and drains the ones it no
// longer needs. None of the Arena methods block or allocate after New.
//
//	a := arena.New[*Player](128)
//	ctrl := a.Controller()
//
//	// control goroutine
//	key, err := ctrl.TryReserve()
//	if errors.Is(err, arena.ErrArenaFull) {
//	    // capacity exhausted, nothing was reserved
//	}
//
//	// processing goroutine
//	a.InsertWithKey(key, player)
//	for key, p := range a.DrainFilter(isStopped) {
//	    ...
//	}
//
// Inserting at a key that was not reserved, is stale, or is already
// occupied is a protocol violation between the two sides and panics with a
// *ProtocolError.
package arena
