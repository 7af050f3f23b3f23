// SPDX-License-Identifier: EPL-2.0

package manager

import (
	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/sound"
)

type commandKind uint8

const (
	cmdAddPlayer commandKind = iota + 1
	cmdPausePlayer
	cmdResumePlayer
	cmdStopPlayer
	cmdAddSubTrack
	cmdRemoveSubTrack
	cmdAddParameter
	cmdSetParameter
	cmdRemoveParameter
)

func (k commandKind) String() string {
	switch k {
	case cmdAddPlayer:
		return "add player"
	case cmdPausePlayer:
		return "pause player"
	case cmdResumePlayer:
		return "resume player"
	case cmdStopPlayer:
		return "stop player"
	case cmdAddSubTrack:
		return "add sub-track"
	case cmdRemoveSubTrack:
		return "remove sub-track"
	case cmdAddParameter:
		return "add parameter"
	case cmdSetParameter:
		return "set parameter"
	case cmdRemoveParameter:
		return "remove parameter"
	default:
		return "unknown command"
	}
}

// command is sent by value through the command queue. Only the fields its
// kind needs are set; everything it points to was allocated on the control
// side.
type command struct {
	kind   commandKind
	key    arena.Key
	player *sound.Player
	track  *mixer.Track
	value  float64
	tween  parameter.Tween
}
