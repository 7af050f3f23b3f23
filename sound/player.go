// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math"
	"sync/atomic"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/parameter"
)

// PlayerSettings is builder data for a Player.
type PlayerSettings struct {
	Volume parameter.Value
	Track  mixer.TrackID
	// FadeIn ramps the player up from silence when set.
	FadeIn parameter.Tween
}

func DefaultPlayerSettings() PlayerSettings {
	return PlayerSettings{
		Volume: parameter.Fixed(1),
		Track:  mixer.MainTrack,
	}
}

// Shared publishes a player's state and position to the control side.
type Shared struct {
	state    atomic.Uint32
	position atomic.Uint64
}

func (s *Shared) State() State { return State(s.state.Load()) }

// Position in seconds.
func (s *Shared) Position() float64 { return math.Float64frombits(s.position.Load()) }

func (s *Shared) publish(state State, position float64) {
	s.state.Store(uint32(state))
	s.position.Store(math.Float64bits(position))
}

// fade ramps the player's gain between two levels.
type fade struct {
	from, to float64
	tween    parameter.Tween
	elapsed  float64
	active   bool
}

func (f *fade) start(current, to float64, tween parameter.Tween) {
	*f = fade{from: current, to: to, tween: tween, active: true}
}

// advance moves the fade by dt and returns the gain and whether it ended.
func (f *fade) advance(dt float64) (float64, bool) {
	f.elapsed += dt
	if f.tween.Done(f.elapsed) {
		f.active = false
		return f.to, true
	}
	return f.from + (f.to-f.from)*f.tween.Value(f.elapsed), false
}

// Player plays one Sound into one track.
type Player struct {
	sound    Sound
	state    State
	position float64
	track    mixer.TrackID
	volume   parameter.CachedValue
	gain     float64
	fade     fade
	shared   *Shared
}

// NewPlayer creates a Playing player at position 0. It allocates and so
// belongs on the control side.
func NewPlayer(s Sound, settings PlayerSettings) *Player {
	p := &Player{
		sound:  s,
		state:  Playing,
		track:  settings.Track,
		volume: parameter.NewCachedValue(settings.Volume, 0, math.Inf(1), 1),
		gain:   1,
		shared: &Shared{},
	}
	if settings.FadeIn.Duration > 0 {
		p.gain = 0
		p.fade.start(0, 1, settings.FadeIn)
	}
	p.shared.publish(p.state, p.position)
	return p
}

func (p *Player) Sound() Sound          { return p.sound }
func (p *Player) State() State          { return p.state }
func (p *Player) Position() float64     { return p.position }
func (p *Player) Track() mixer.TrackID  { return p.track }
func (p *Player) Shared() *Shared       { return p.shared }
func (p *Player) IsStopped() bool       { return p.state == Stopped }
func (p *Player) setState(s State)      { p.state = s }
func (p *Player) publish()              { p.shared.publish(p.state, p.position) }

// Pause fades the player out and freezes it. A zero tween pauses at once.
func (p *Player) Pause(tween parameter.Tween) {
	switch p.state {
	case Playing, Pausing:
		if tween.Duration <= 0 {
			p.gain = 0
			p.fade = fade{}
			p.setState(Paused)
		} else {
			p.fade.start(p.gain, 0, tween)
			p.setState(Pausing)
		}
		p.publish()
	}
}

// Resume fades a paused or pausing player back in.
func (p *Player) Resume(tween parameter.Tween) {
	switch p.state {
	case Paused, Pausing:
		if tween.Duration <= 0 {
			p.gain = 1
			p.fade = fade{}
		} else {
			p.fade.start(p.gain, 1, tween)
		}
		p.setState(Playing)
		p.publish()
	}
}

// Stop fades the player out and ends it. A paused player, or a zero
// tween, stops at once.
func (p *Player) Stop(tween parameter.Tween) {
	switch p.state {
	case Stopped:
		return
	case Paused:
		p.setState(Stopped)
	default:
		if tween.Duration <= 0 {
			p.gain = 0
			p.fade = fade{}
			p.setState(Stopped)
		} else {
			p.fade.start(p.gain, 0, tween)
			p.setState(Stopping)
		}
	}
	p.publish()
}

// Process returns the frame at the current position and advances the
// position by dt. Paused and stopped players return silence and do not
// move.
func (p *Player) Process(dt float64, params *parameter.Parameters) audio.Frame {
	if p.state == Stopped || p.state == Paused {
		return audio.Frame{}
	}

	out := p.sound.FrameAtPosition(p.position)

	if p.fade.active {
		gain, done := p.fade.advance(dt)
		p.gain = gain
		if done {
			switch p.state {
			case Pausing:
				p.setState(Paused)
			case Stopping:
				p.setState(Stopped)
			}
		}
	}
	p.volume.Update(params)
	out = out.Scale(float32(p.volume.Get() * p.gain))

	if p.state != Paused {
		p.position += dt
	}
	if p.position > p.sound.Duration().Seconds() {
		p.setState(Stopped)
	}
	p.publish()
	return out
}

// Advance processes one frame and adds it to the player's track. Missing
// tracks swallow the frame.
func (p *Player) Advance(dt float64, m *mixer.Mixer, params *parameter.Parameters) {
	if p.state == Stopped {
		return
	}
	out := p.Process(dt, params)
	m.AddInput(p.track, out)
}
