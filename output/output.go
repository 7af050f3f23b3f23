// SPDX-License-Identifier: EPL-2.0

// Package output connects a manager.Renderer to audio devices.
//
// Reader and Streamer are plain adapters that work in any build. The device
// players need a sound card and are compiled out with the headless build
// tag, in which case their constructors return ErrNoDevice.
package output

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/ik5/audmix/manager"
)

var ErrNoDevice = errors.New("audio output is not available in this build")

const bytesPerFrame = 2 * 4

// Reader renders interleaved float32 little-endian stereo, the layout oto
// asks for with FormatFloat32LE. Its scratch buffer holds one block, so
// Read never allocates.
type Reader struct {
	r   *manager.Renderer
	buf []float32
}

func NewReader(r *manager.Renderer) *Reader {
	return &Reader{r: r, buf: make([]float32, 2*max(r.BlockSize(), 1))}
}

// Read always fills whole frames and never fails.
func (rd *Reader) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerFrame * 2
	for done := 0; done < samples; {
		buf := rd.buf[:min(samples-done, len(rd.buf))]
		rd.r.Read(buf)
		for i, v := range buf {
			binary.LittleEndian.PutUint32(p[4*(done+i):], math.Float32bits(v))
		}
		done += len(buf)
	}
	return 4 * samples, nil
}

// Streamer adapts a Renderer to beep.Streamer. It never drains.
type Streamer struct {
	r           *manager.Renderer
	left, right []float32
}

func NewStreamer(r *manager.Renderer, blockSize int) *Streamer {
	return &Streamer{
		r:     r,
		left:  make([]float32, blockSize),
		right: make([]float32, blockSize),
	}
}

// Format describes the stream for beep.
func (s *Streamer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(s.r.SampleRate()),
		NumChannels: 2,
		Precision:   4,
	}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	for done := 0; done < len(samples); {
		n := min(len(samples)-done, len(s.left))
		left, right := s.left[:n], s.right[:n]
		s.r.ProcessBlock(left, right)
		for i := range n {
			samples[done+i] = [2]float64{float64(left[i]), float64(right[i])}
		}
		done += n
	}
	return len(samples), true
}

func (s *Streamer) Err() error { return nil }
