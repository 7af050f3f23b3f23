// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"

	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/parameter"
)

// Effect transforms the audio passing through a track, one frame at a
// time. Init is called exactly once, before the first Process.
type Effect interface {
	Init(sampleRate uint32)
	Process(input audio.Frame, dt float64, params *parameter.Parameters) audio.Frame
}

// TrackID identifies the main track or a sub-track.
type TrackID struct {
	key arena.Key
	sub bool
}

// MainTrack always exists.
var MainTrack = TrackID{}

// SubTrackID wraps a key reserved from the sub-track controller.
func SubTrackID(key arena.Key) TrackID { return TrackID{key: key, sub: true} }

func (id TrackID) IsMain() bool { return !id.sub }

// Key is the sub-track's arena key; the main track has the zero key.
func (id TrackID) Key() arena.Key { return id.key }

func (id TrackID) String() string {
	if !id.sub {
		return "main track"
	}
	return "sub-track " + id.key.String()
}

// TrackSettings configures a track. Effects run in order.
type TrackSettings struct {
	Volume  parameter.Value
	Panning parameter.Value
	Effects []Effect
}

func DefaultTrackSettings() TrackSettings {
	return TrackSettings{
		Volume:  parameter.Fixed(1),
		Panning: parameter.Fixed(0.5),
	}
}

// Track sums its inputs for one frame and runs them through its effects.
type Track struct {
	volume  parameter.CachedValue
	panning parameter.CachedValue
	effects []Effect
	input   audio.Frame
	removed bool
}

func NewTrack(settings TrackSettings) *Track {
	return &Track{
		volume:  parameter.NewCachedValue(settings.Volume, 0, math.Inf(1), 1),
		panning: parameter.NewCachedValue(settings.Panning, 0, 1, 0.5),
		effects: settings.Effects,
	}
}

// Init prepares every effect for sampleRate. It may allocate, so it must
// run before the track reaches the processing side.
func (t *Track) Init(sampleRate uint32) {
	for _, e := range t.effects {
		e.Init(sampleRate)
	}
}

func (t *Track) Effects() []Effect { return t.effects }

// AddInput accumulates f into the current frame.
func (t *Track) AddInput(f audio.Frame) {
	t.input = t.input.Add(f)
}

// Process returns this frame's output and resets the accumulator.
func (t *Track) Process(dt float64, params *parameter.Parameters) audio.Frame {
	out := t.input
	t.input = audio.Frame{}
	for _, e := range t.effects {
		out = e.Process(out, dt, params)
	}
	t.volume.Update(params)
	t.panning.Update(params)
	return out.Scale(float32(t.volume.Get())).Panned(float32(t.panning.Get()))
}
