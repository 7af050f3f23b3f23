// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats"
)

// FromSource reads src to the end and keeps it as a StaticSound. src is
// closed when FromSource returns.
func FromSource(src audio.Source, settings StaticSoundSettings) (*StaticSound, error) {
	defer src.Close()

	channels := src.Channels()
	if channels != 1 && channels != 2 {
		return nil, &LoadError{Op: "read", Err: ErrUnsupportedChannelConfiguration}
	}
	sampleRate := src.SampleRate()
	if sampleRate <= 0 {
		return nil, &LoadError{Op: "read", Err: ErrNoAudio}
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	buf := make([]float32, bufSize-bufSize%channels)

	var frames []audio.Frame
	for {
		n, err := src.ReadSamples(buf)
		if src.SampleRate() != sampleRate {
			return nil, &LoadError{Op: "read", Err: ErrVariableSampleRate}
		}
		for i := 0; i+channels <= n; i += channels {
			if channels == 1 {
				frames = append(frames, audio.FrameFromMono(buf[i]))
			} else {
				frames = append(frames, audio.Frame{Left: buf[i], Right: buf[i+1]})
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Op: "read", Err: err}
		}
		if n == 0 {
			break
		}
	}

	if len(frames) == 0 {
		return nil, &LoadError{Op: "read", Err: ErrNoAudio}
	}
	return FromFrames(uint32(sampleRate), frames, settings), nil
}

// FromReader decodes r with the decoder registered for format. A nil
// registry means formats.DefaultRegistry.
func FromReader(r io.Reader, format string, registry *audio.Registry, settings StaticSoundSettings) (*StaticSound, error) {
	if registry == nil {
		registry = formats.DefaultRegistry()
	}
	dec, ok := registry.Get(strings.ToLower(format))
	if !ok {
		return nil, &LoadError{Op: "decode", Err: fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)}
	}
	src, err := dec.Decode(r)
	if err != nil {
		return nil, &LoadError{Op: "decode", Err: err}
	}
	return FromSource(src, settings)
}

// FromFile loads a file, picking the decoder from its extension.
func FromFile(path string, registry *audio.Registry, settings StaticSoundSettings) (*StaticSound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	s, err := FromReader(f, strings.TrimPrefix(filepath.Ext(path), "."), registry, settings)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			lerr.Path = path
		}
		return nil, err
	}
	return s, nil
}
