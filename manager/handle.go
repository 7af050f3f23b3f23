// SPDX-License-Identifier: EPL-2.0

package manager

import (
	"time"

	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/sound"
)

// SoundHandle controls a playing sound. State and position are read
// without going through the renderer and may lag it by up to one frame.
type SoundHandle struct {
	key    arena.Key
	sound  sound.Sound
	shared *sound.Shared
	m      *Manager
}

func (h *SoundHandle) Key() arena.Key          { return h.key }
func (h *SoundHandle) Sound() sound.Sound      { return h.sound }
func (h *SoundHandle) Duration() time.Duration { return h.sound.Duration() }
func (h *SoundHandle) State() sound.State      { return h.shared.State() }
func (h *SoundHandle) Position() float64       { return h.shared.Position() }

// Metadata returns the sound's metadata, or the zero value when the sound
// carries none.
func (h *SoundHandle) Metadata() sound.Metadata {
	if mp, ok := h.sound.(sound.MetadataProvider); ok {
		return mp.Metadata()
	}
	return sound.Metadata{}
}

func (h *SoundHandle) Pause(fade parameter.Tween) error {
	return h.m.send(command{kind: cmdPausePlayer, key: h.key, tween: fade})
}

func (h *SoundHandle) Resume(fade parameter.Tween) error {
	return h.m.send(command{kind: cmdResumePlayer, key: h.key, tween: fade})
}

// Stop fades the sound out. The stop lands at the renderer's next block.
func (h *SoundHandle) Stop(fade parameter.Tween) error {
	return h.m.send(command{kind: cmdStopPlayer, key: h.key, tween: fade})
}

// TrackHandle refers to a sub-track.
type TrackHandle struct {
	id mixer.TrackID
	m  *Manager
}

// ID is what PlayerSettings.Track takes to route a sound here.
func (h *TrackHandle) ID() mixer.TrackID { return h.id }

// Remove takes the sub-track out of the mix. Sounds still routed to it
// keep playing into nothing.
func (h *TrackHandle) Remove() error {
	return h.m.send(command{kind: cmdRemoveSubTrack, key: h.id.Key()})
}

// ParameterHandle refers to a parameter.
type ParameterHandle struct {
	id parameter.ID
	m  *Manager
}

func (h *ParameterHandle) ID() parameter.ID { return h.id }

// Value links a setting to this parameter.
func (h *ParameterHandle) Value() parameter.Value { return parameter.FromParameter(h.id) }

// Set moves the parameter to target over tween.
func (h *ParameterHandle) Set(target float64, tween parameter.Tween) error {
	return h.m.send(command{kind: cmdSetParameter, key: h.id.Key(), value: target, tween: tween})
}

func (h *ParameterHandle) Remove() error {
	return h.m.send(command{kind: cmdRemoveParameter, key: h.id.Key()})
}
