// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	samples []int
	offset  int
	err     error
}

func (f *fakeReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: 2}
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

func TestSource_Normalizes(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{samples: []int{0, 16384, -32768, 32767}}, 8000, 2, 16)
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, DefaultBufSize, src.BufSize())

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.InDelta(t, 0.0, dst[0], 1e-6)
	assert.InDelta(t, 0.5, dst[1], 1e-4)
	assert.InDelta(t, -1.0, dst[2], 1e-6)
	assert.InDelta(t, 1.0, dst[3], 1e-4)

	n, err = src.ReadSamples(dst)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{samples: []int{100, 200}}, 8000, 2, 16)
	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 8, src.BufSize())
}

func TestSource_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&fakeReader{err: boom}, 8000, 2, 16)
	_, err := src.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, boom)

	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	rs, err := Seekable(io.LimitReader(strings.NewReader("abcdef"), 3))
	require.NoError(t, err)
	pos, err := rs.Seek(1, io.SeekStart)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pos)
	rest, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "bc", string(rest))

	orig := strings.NewReader("x")
	same, err := Seekable(orig)
	require.NoError(t, err)
	assert.Same(t, orig, same)
}
