// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF WAVE files on top of
// github.com/go-audio/wav.
//
// Decoder accepts integer PCM at 16, 24 or 32 bits, mono or stereo, and
// returns an audio.Source yielding interleaved float32 samples in [-1, 1].
// Readers that cannot seek are buffered in memory first.
//
// Encode writes interleaved float32 samples as 16-bit PCM. It needs an
// io.WriteSeeker because the RIFF sizes are patched once the data is
// written:
//
//	f, _ := os.Create("mix.wav")
//	defer f.Close()
//	err := wav.Encode(f, 48000, 2, interleaved)
package wav
