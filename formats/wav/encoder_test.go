// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmix/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToTemp(t *testing.T, sampleRate, channels int, samples []float32) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	require.NoError(t, Encode(f, sampleRate, channels, samples))
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	return f
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.25, -0.25, 0.5, -0.5, 1, -1, 2}
	f := encodeToTemp(t, 22050, 2, in)

	src, err := Decoder{}.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 22050, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	out := make([]float32, 32)
	n, _ := src.ReadSamples(out)
	require.Equal(t, len(in), n)

	// the last sample was clipped to full scale
	want := []float32{0, 0.25, -0.25, 0.5, -0.5, 1, -1, 1}
	assert.InDeltaSlice(t, want, out[:n], 1e-3)
}

func TestEncode_SpansChunks(t *testing.T) {
	t.Parallel()

	in := make([]float32, encodeChunk*2+10)
	for i := range in {
		in[i] = float32(i%100) / 100
	}
	f := encodeToTemp(t, 8000, 1, in)

	src, err := Decoder{}.Decode(f)
	require.NoError(t, err)

	total := 0
	buf := make([]float32, 1000)
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err != nil {
			break
		}
	}
	assert.Equal(t, len(in), total)
}

func TestEncode_Rejects(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer f.Close()

	assert.ErrorIs(t, Encode(f, 8000, 0, []float32{0}), ErrInvalidChannels)
	assert.ErrorIs(t, Encode(f, 8000, 2, []float32{0, 0, 0}), audio.ErrInvalidDstSize)
	assert.ErrorIs(t, Encode(f, 8000, 2, nil), ErrNoSamples)
}
