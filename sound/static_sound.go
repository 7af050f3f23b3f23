// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math"
	"time"

	"github.com/ik5/audmix/audio"
)

// StaticSoundSettings is builder data for a StaticSound.
type StaticSoundSettings struct {
	DefaultLoopBehavior *LoopBehavior
	Metadata            Metadata
}

// StaticSound is audio decoded into memory all at once.
type StaticSound struct {
	sampleRate uint32
	duration   time.Duration
	frames     []audio.Frame
	settings   StaticSoundSettings
}

// FromFrames creates a StaticSound over frames recorded at sampleRate.
func FromFrames(sampleRate uint32, frames []audio.Frame, settings StaticSoundSettings) *StaticSound {
	return &StaticSound{
		sampleRate: sampleRate,
		duration:   time.Duration(float64(len(frames)) / float64(sampleRate) * float64(time.Second)),
		frames:     frames,
		settings:   settings,
	}
}

func (s *StaticSound) SampleRate() uint32      { return s.sampleRate }
func (s *StaticSound) Frames() []audio.Frame   { return s.frames }
func (s *StaticSound) Duration() time.Duration { return s.duration }
func (s *StaticSound) Metadata() Metadata      { return s.settings.Metadata }

func (s *StaticSound) DefaultLoopBehavior() (LoopBehavior, bool) {
	if s.settings.DefaultLoopBehavior == nil {
		return LoopBehavior{}, false
	}
	return *s.settings.DefaultLoopBehavior, true
}

func (s *StaticSound) frame(i int) audio.Frame {
	if i < 0 || i >= len(s.frames) {
		return audio.Frame{}
	}
	return s.frames[i]
}

// FrameAtPosition interpolates between the stored frames around position.
func (s *StaticSound) FrameAtPosition(position float64) audio.Frame {
	samplePosition := float64(s.sampleRate) * position
	index := math.Floor(samplePosition)
	fraction := float32(samplePosition - index)
	i := int(index)
	return audio.InterpolateFrame(s.frame(i-1), s.frame(i), s.frame(i+1), s.frame(i+2), fraction)
}
