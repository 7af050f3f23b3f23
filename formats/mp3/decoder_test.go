// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedPCM hands out little-endian int16 bytes at most step bytes at a
// time, so reads can split a sample.
type chunkedPCM struct {
	data []byte
	step int
}

func newChunkedPCM(step int, samples ...int16) *chunkedPCM {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return &chunkedPCM{data: buf.Bytes(), step: step}
}

func (c *chunkedPCM) SampleRate() int { return 44100 }

func (c *chunkedPCM) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p[:min(len(p), c.step)], c.data)
	c.data = c.data[n:]
	return n, nil
}

func readAll(t *testing.T, src *source, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 1000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return out
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: newChunkedPCM(1<<20, 16384, -16384, 0, -32768)}
	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	got := readAll(t, src, 16)
	assert.InDeltaSlice(t, []float32{0.5, -0.5, 0, -1}, got, 1e-6)
	assert.Equal(t, 16, src.BufSize())
}

func TestSource_SplitSamples(t *testing.T) {
	t.Parallel()

	// three bytes per read always leaves half a sample behind
	src := &source{dec: newChunkedPCM(3, 100, 200, 300, 400, 500, 600)}
	got := readAll(t, src, 4)
	require.Len(t, got, 6)
	for i, v := range got {
		assert.InDelta(t, float64(100*(i+1))/32768, v, 1e-6)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{dec: newChunkedPCM(8, 1)}
	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		assert.Error(t, err)
	}
}
