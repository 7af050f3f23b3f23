// SPDX-License-Identifier: EPL-2.0

// Package audmix is a small real-time audio mixing engine.
//
// Sounds are played by players that write into tracks. Sub-tracks run
// their effects and feed the main track, whose output is the mix. All of
// it is split in two halves by package manager: a control side that
// allocates and may block, and a Renderer that runs in the audio callback
// without allocating or locking.
//
// # Packages
//
//   - audio: stereo frames, interpolation and the decoder Source interface
//   - sound: the Sound capability, StaticSound and the Player state machine
//   - mixer: tracks and the track graph
//   - effect/delay, effect/filter: track effects
//   - parameter: tweenable values effects and players can follow
//   - manager: the control side and the Renderer
//   - formats/...: WAV, AIFF, MP3 and Ogg Vorbis decoders
//   - output: oto and beep device adapters
//   - luabind: read-only sound handles for Lua scripts
//
// # Quick Start
//
// Offline renders without an audio device, which is handy for tests and
// for writing mixdowns:
//
//	off, _ := audmix.NewOffline(manager.DefaultSettings())
//	snd, _ := audmix.LoadSound("kick.wav")
//	h, _ := off.Manager().PlaySound(snd, sound.DefaultPlayerSettings())
//	mix := off.RenderUntilStopped([]*manager.SoundHandle{h}, time.Second, time.Minute)
//
//	f, _ := os.Create("mix.wav")
//	defer f.Close()
//	_ = off.WriteWAV(f, mix)
//
// For live playback hand the Renderer to output.NewOtoPlayer or wrap it
// in output.Streamer for beep.
package audmix
