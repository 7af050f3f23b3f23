// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides sources and sounds for tests.
package audiotest

import (
	"io"
	"math"
	"time"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/sound"
)

// MockSource is an audio.Source that generates samples from a waveform.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	// RateChangeAt switches SampleRate to NewRate once that many samples
	// per channel were generated. Zero disables it.
	RateChangeAt int
	NewRate      int
	// Err is returned by ReadSamples instead of data when set.
	Err error

	Closed bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int {
	if m.RateChangeAt > 0 && m.generated >= m.RateChangeAt {
		return m.NewRate
	}
	return m.sampleRate
}

func (m *MockSource) Channels() int { return m.channels }
func (m *MockSource) BufSize() int  { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.RateChangeAt > m.generated {
		framesToWrite = min(framesToWrite, m.RateChangeAt-m.generated)
	}

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// Sound is a sound.Sound returning one constant frame for its duration.
type Sound struct {
	Length time.Duration
	Value  audio.Frame
	Loop   *sound.LoopBehavior
	// Reads counts FrameAtPosition calls.
	Reads int
	// Closed is set by Close.
	Closed bool
}

func (s *Sound) Duration() time.Duration { return s.Length }

func (s *Sound) DefaultLoopBehavior() (sound.LoopBehavior, bool) {
	if s.Loop == nil {
		return sound.LoopBehavior{}, false
	}
	return *s.Loop, true
}

func (s *Sound) FrameAtPosition(position float64) audio.Frame {
	s.Reads++
	if position < 0 || position > s.Length.Seconds() {
		return audio.Frame{}
	}
	return s.Value
}

func (s *Sound) Close() error {
	s.Closed = true
	return nil
}
