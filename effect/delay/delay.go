// SPDX-License-Identifier: EPL-2.0

// Package delay implements a feedback delay with an optional filter in the
// feedback path.
package delay

import (
	"math"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/effect/filter"
	"github.com/ik5/audmix/parameter"
	"github.com/samber/lo"
)

// maxBufferLevel bounds what the feedback path writes back into the buffer.
// A resonant filter in the loop has gain well above 1, so feedback alone
// does not keep the loop stable.
const maxBufferLevel = 16

// Settings for a Delay.
//
// DelayTime is in seconds. Feedback is the share of the delayed signal fed
// back into the buffer; values near 1 or -1 sustain almost forever.
// BufferLength is the longest delay, in seconds, the delay can produce.
type Settings struct {
	DelayTime    parameter.Value
	Feedback     parameter.Value
	BufferLength float64
	Filter       *filter.Settings
}

func DefaultSettings() Settings {
	return Settings{
		DelayTime:    parameter.Fixed(0.5),
		Feedback:     parameter.Fixed(0.5),
		BufferLength: 10,
	}
}

// Delay echoes its input. It must be initialized with the sample rate
// before processing so that the buffer can be allocated off the audio
// thread.
type Delay struct {
	delayTime    parameter.CachedValue
	feedback     parameter.CachedValue
	bufferLength float64
	filter       *filter.Filter

	buffer        []audio.Frame
	writePosition int
}

func New(settings Settings) *Delay {
	d := &Delay{
		// the read head cannot reach further back than the buffer holds
		delayTime:    parameter.NewCachedValue(settings.DelayTime, 0, settings.BufferLength, 0.5),
		feedback:     parameter.NewCachedValue(settings.Feedback, -1, 1, 0.5),
		bufferLength: settings.BufferLength,
	}
	if settings.Filter != nil {
		d.filter = filter.New(*settings.Filter)
	}
	return d
}

func (d *Delay) Initialized() bool { return d.buffer != nil }

// Init allocates the delay buffer. Calling it twice panics.
func (d *Delay) Init(sampleRate uint32) {
	if d.Initialized() {
		panic("delay: Init called on an initialized delay")
	}
	// interpolation reads two frames either side of the read position, so
	// even a zero-length buffer gets room for them
	size := max(int(d.bufferLength*float64(sampleRate)), 4)
	d.buffer = make([]audio.Frame, size)
	if d.filter != nil {
		d.filter.Init(sampleRate)
	}
}

// Process panics if the delay has not been initialized.
func (d *Delay) Process(input audio.Frame, dt float64, params *parameter.Parameters) audio.Frame {
	if !d.Initialized() {
		panic("delay: Process called before Init")
	}

	d.delayTime.Update(params)
	d.feedback.Update(params)

	n := len(d.buffer)
	// a delay of the whole buffer would wrap onto the frame being written
	delayFrames := min(d.delayTime.Get()/dt, float64(n-3))
	readPosition := math.Mod(float64(d.writePosition)-delayFrames, float64(n))
	if readPosition < 0 {
		readPosition += float64(n)
	}

	current := int(readPosition) % n
	previous := current - 1
	if current == 0 {
		previous = n - 2
	}
	next := (current + 1) % n
	next2 := (current + 2) % n
	fraction := float32(math.Mod(readPosition, 1))

	output := audio.InterpolateFrame(d.buffer[previous], d.buffer[current], d.buffer[next], d.buffer[next2], fraction)

	d.writePosition = (d.writePosition + 1) % n
	if d.filter != nil {
		output = d.filter.Process(output, dt, params)
	}
	fed := input.Add(output.Scale(float32(d.feedback.Get())))
	d.buffer[d.writePosition] = audio.Frame{
		Left:  lo.Clamp(fed.Left, -maxBufferLevel, maxBufferLevel),
		Right: lo.Clamp(fed.Right, -maxBufferLevel, maxBufferLevel),
	}

	return output
}
