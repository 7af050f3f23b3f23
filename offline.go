// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/manager"
	"github.com/ik5/audmix/sound"
	"github.com/samber/lo"
)

// Offline drives a Manager's Renderer from the calling goroutine, as fast
// as it can, instead of from an audio device.
type Offline struct {
	manager  *manager.Manager
	renderer *manager.Renderer
	settings manager.Settings
	buf      []float32
}

func NewOffline(settings manager.Settings, opts ...manager.Option) (*Offline, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	m, r := manager.New(settings, opts...)
	return &Offline{
		manager:  m,
		renderer: r,
		settings: settings,
		buf:      make([]float32, 2*settings.BlockSize),
	}, nil
}

func (o *Offline) Manager() *manager.Manager { return o.manager }

func (o *Offline) frames(d time.Duration) int {
	return int(d.Seconds() * float64(o.settings.SampleRate))
}

// Render returns d of interleaved stereo output.
func (o *Offline) Render(d time.Duration) []float32 {
	out := make([]float32, 0, 2*o.frames(d))
	return o.appendFrames(out, o.frames(d))
}

func (o *Offline) appendFrames(out []float32, frames int) []float32 {
	for frames > 0 {
		n := min(frames, o.settings.BlockSize)
		o.renderer.Read(o.buf[:2*n])
		out = append(out, o.buf[:2*n]...)
		frames -= n
		o.manager.FreeUnusedResources()
	}
	return out
}

// RenderUntilStopped renders until every handle has stopped, then adds
// tail more for effects to ring out. limit caps the total length.
func (o *Offline) RenderUntilStopped(handles []*manager.SoundHandle, tail, limit time.Duration) []float32 {
	var out []float32
	maxFrames := o.frames(limit)
	for len(out)/2 < maxFrames && !lo.EveryBy(handles, isStopped) {
		out = o.appendFrames(out, min(o.settings.BlockSize, maxFrames-len(out)/2))
	}
	remaining := min(o.frames(tail), maxFrames-len(out)/2)
	return o.appendFrames(out, remaining)
}

func isStopped(h *manager.SoundHandle) bool { return h.State() == sound.Stopped }

// WriteWAV encodes interleaved stereo output at the renderer's sample rate.
func (o *Offline) WriteWAV(w io.WriteSeeker, interleaved []float32) error {
	if err := wav.Encode(w, int(o.settings.SampleRate), 2, interleaved); err != nil {
		return fmt.Errorf("writing mixdown: %w", err)
	}
	return nil
}

// LoadSound decodes a whole file into memory using the bundled decoders.
func LoadSound(path string) (*sound.StaticSound, error) {
	return sound.FromFile(path, nil, sound.StaticSoundSettings{})
}
