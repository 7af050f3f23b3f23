// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
	"github.com/ik5/audmix/manager"
	"github.com/ik5/audmix/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playingRenderer(t *testing.T) *manager.Renderer {
	t.Helper()
	s := manager.DefaultSettings()
	s.SampleRate = 44100
	s.BlockSize = 64
	m, r := manager.New(s, manager.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_, err := m.PlaySound(&audiotest.Sound{Length: time.Minute, Value: audio.Frame{Left: 0.5, Right: -0.25}}, sound.DefaultPlayerSettings())
	require.NoError(t, err)
	return r
}

func TestReader_EncodesFloat32LE(t *testing.T) {
	t.Parallel()

	rd := NewReader(playingRenderer(t))

	p := make([]byte, 8*100+5)
	n, err := rd.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 800, n)

	for i := 0; i < n; i += 8 {
		assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(p[i:])))
		assert.Equal(t, float32(-0.25), math.Float32frombits(binary.LittleEndian.Uint32(p[i+4:])))
	}

	n, err = rd.Read(make([]byte, 7))
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestReader_ScratchIsOneBlock(t *testing.T) {
	t.Parallel()

	rd := NewReader(playingRenderer(t))
	require.Len(t, rd.buf, 2*64)
	scratch := &rd.buf[0]

	// much more than a block per call, as oto asks for on a slow device
	p := make([]byte, 8*4096)
	n, err := rd.Read(p)
	require.NoError(t, err)
	assert.Equal(t, len(p), n)
	assert.Equal(t, float32(-0.25), math.Float32frombits(binary.LittleEndian.Uint32(p[len(p)-4:])))

	assert.Len(t, rd.buf, 2*64)
	assert.Same(t, scratch, &rd.buf[0])
}

func TestStreamer(t *testing.T) {
	t.Parallel()

	s := NewStreamer(playingRenderer(t), 64)
	assert.Equal(t, beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 4}, s.Format())

	samples := make([][2]float64, 150)
	n, ok := s.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 150, n)
	assert.NoError(t, s.Err())
	for _, f := range samples {
		assert.Equal(t, [2]float64{0.5, -0.25}, f)
	}
}

var _ beep.Streamer = (*Streamer)(nil)
