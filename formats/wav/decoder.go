// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/internal/pcm"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

type Decoder struct{}

// Decode reads the RIFF headers of r and returns a Source positioned at the
// start of the sample data. Readers that cannot seek are buffered.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrNotWavFile
	}

	return pcm.NewSource(dec, int(dec.SampleRate), format.NumChannels, int(dec.BitDepth)), nil
}
