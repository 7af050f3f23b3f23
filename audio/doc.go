// SPDX-License-Identifier: EPL-2.0

// Package audio holds the types shared by decoders and the mixing graph.
//
// A Source is a decoded PCM stream of interleaved float32 samples in
// [-1, 1]. Decoders turn an io.Reader into a Source and are looked up by
// file extension through a Registry:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// Once decoded, audio travels through the mixer as Frames: one stereo
// sample pair. Frame arithmetic returns new values, so a Frame never
// aliases a buffer.
//
//	f := audio.FrameFromMono(0.5).Panned(0.25).Scale(gain)
//
// InterpolateFrame performs the 4-point cubic interpolation players use
// when the playback rate puts them between two frames.
//
// ReadSamples returns io.EOF once a stream is finished:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
