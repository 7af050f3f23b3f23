// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"time"

	"github.com/ik5/audmix/audio"
)

// Sound is anything a Player can play.
type Sound interface {
	Duration() time.Duration
	// DefaultLoopBehavior reports the loop region the sound suggests to
	// hosts. Players never loop on their own.
	DefaultLoopBehavior() (LoopBehavior, bool)
	// FrameAtPosition returns the frame at position seconds. Positions
	// outside the sound are silence.
	FrameAtPosition(position float64) audio.Frame
}

// LoopBehavior describes where playback restarts when looping.
type LoopBehavior struct {
	StartPosition float64
}

// Tempo in beats per minute.
type Tempo float64

// Metadata is descriptive information hosts can query about a sound.
type Metadata struct {
	Tempo *Tempo
}

// MetadataProvider is implemented by sounds that carry Metadata.
type MetadataProvider interface {
	Metadata() Metadata
}

// State is the playback state of a Player.
type State uint32

const (
	Playing State = iota
	Pausing
	Paused
	Stopping
	Stopped
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Pausing:
		return "pausing"
	case Paused:
		return "paused"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
