// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

const (
	encodeBitDepth = 16
	encodeChunk    = 8192
)

// Encode writes interleaved float samples as a 16-bit PCM WAV file.
// Samples outside [-1, 1] are clipped.
func Encode(w io.WriteSeeker, sampleRate, channels int, interleaved []float32) error {
	if channels < 1 {
		return ErrInvalidChannels
	}
	if len(interleaved)%channels != 0 {
		return audio.ErrInvalidDstSize
	}
	if len(interleaved) == 0 {
		return ErrNoSamples
	}

	enc := gowav.NewEncoder(w, sampleRate, encodeBitDepth, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, min(len(interleaved), encodeChunk-encodeChunk%channels)),
		SourceBitDepth: encodeBitDepth,
	}

	for start := 0; start < len(interleaved); start += len(buf.Data) {
		chunk := interleaved[start:min(start+cap(buf.Data), len(interleaved))]
		buf.Data = buf.Data[:len(chunk)]
		for i, s := range chunk {
			buf.Data[i] = utils.Float32ToInt(s, encodeBitDepth)
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finishing file: %w", err)
	}
	return nil
}
