// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/ringbuf"
)

// Mixer is the processing-side track graph: any number of sub-tracks
// feeding the main track.
type Mixer struct {
	main      *Track
	subTracks *arena.Arena[*Track]
	unused    *ringbuf.Producer[*Track]
}

// New creates a mixer. Removed sub-tracks are pushed to unused so the
// control side can drop them.
func New(main *Track, capacity int, unused *ringbuf.Producer[*Track]) *Mixer {
	return &Mixer{
		main:      main,
		subTracks: arena.New[*Track](capacity),
		unused:    unused,
	}
}

// Controller reserves sub-track keys from the control side.
func (m *Mixer) Controller() *arena.Controller { return m.subTracks.Controller() }

func (m *Mixer) SubTrackCount() int { return m.subTracks.Len() }

// Track returns the track for id or nil if it does not exist (any more).
func (m *Mixer) Track(id TrackID) *Track {
	if id.IsMain() {
		return m.main
	}
	t := m.subTracks.Get(id.key)
	if t == nil || (*t).removed {
		return nil
	}
	return *t
}

// AddInput adds f to a track. Unknown tracks are ignored.
func (m *Mixer) AddInput(id TrackID, f audio.Frame) {
	if t := m.Track(id); t != nil {
		t.AddInput(f)
	}
}

// AddSubTrack stores an initialized track at a reserved id.
func (m *Mixer) AddSubTrack(id TrackID, t *Track) {
	m.subTracks.InsertWithKey(id.key, t)
}

// RemoveSubTrack marks a sub-track for removal. It stops receiving input
// immediately and is swept on the next OnStartProcessing.
func (m *Mixer) RemoveSubTrack(id TrackID) {
	if id.IsMain() {
		return
	}
	if t := m.subTracks.Get(id.key); t != nil {
		(*t).removed = true
	}
}

// OnStartProcessing hands removed sub-tracks to the control side, as many
// as the unused queue has room for.
func (m *Mixer) OnStartProcessing() {
	if m.unused.IsFull() {
		return
	}
	for _, t := range m.subTracks.DrainFilter(isRemoved) {
		if err := m.unused.Push(t); err != nil {
			panic("mixer: unused sub-track queue is full")
		}
		if m.unused.IsFull() {
			return
		}
	}
}

func isRemoved(t **Track) bool { return (*t).removed }

// Process runs every sub-track into the main track and returns the main
// track's output for this frame.
func (m *Mixer) Process(dt float64, params *parameter.Parameters) audio.Frame {
	for _, t := range m.subTracks.All() {
		if (*t).removed {
			continue
		}
		m.main.AddInput((*t).Process(dt, params))
	}
	return m.main.Process(dt, params)
}
