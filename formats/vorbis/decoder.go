// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/jfreymuth/oggvorbis"
)

const defaultBufSize = 4096

// valueReader is the part of oggvorbis.Reader the source reads from. Read
// returns interleaved values, always a whole number of frames.
type valueReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec valueReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize - defaultBufSize%s.dec.Channels() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	if len(dst)%ch != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("vorbis: stream has no channels")
	}
	return &source{dec: dec}, nil
}
