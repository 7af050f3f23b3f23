// SPDX-License-Identifier: EPL-2.0

package manager

import (
	"errors"

	"github.com/ik5/audmix/arena"
)

var (
	// ErrCommandQueueFull is returned when the renderer has not drained
	// enough commands to accept another one.
	ErrCommandQueueFull = errors.New("command queue is full")

	// ErrArenaFull is returned when every slot for a kind of resource is
	// in use.
	ErrArenaFull = arena.ErrArenaFull

	ErrInvalidSettings = errors.New("invalid settings")
)
