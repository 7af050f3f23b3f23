// SPDX-License-Identifier: EPL-2.0

package manager

import (
	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/ringbuf"
	"github.com/ik5/audmix/sound"
	"github.com/tphakala/simd/f32"
)

// Renderer is the processing side of a Manager. It must only be used from
// one goroutine, normally the audio callback, and does not allocate or
// block once constructed.
type Renderer struct {
	dt     float64
	volume float32

	commands      *ringbuf.Consumer[command]
	players       *arena.Arena[*sound.Player]
	unusedPlayers *ringbuf.Producer[*sound.Player]
	mixer         *mixer.Mixer
	params        *parameter.Parameters

	left  []float32
	right []float32
}

func (r *Renderer) SampleRate() uint32 { return uint32(1/r.dt + 0.5) }

// NumPlayers counts players the renderer currently holds, stopped ones
// included until they are swept.
func (r *Renderer) NumPlayers() int { return r.players.Len() }

func (r *Renderer) NumSubTracks() int { return r.mixer.SubTrackCount() }

// BlockSize is the most frames ProcessBlock renders per block from Read.
func (r *Renderer) BlockSize() int { return len(r.left) }

// OnStartProcessing applies every pending command, then hands stopped
// players and removed sub-tracks back to the control side. Call it once at
// the start of each block.
func (r *Renderer) OnStartProcessing() {
	for {
		cmd, ok := r.commands.Pop()
		if !ok {
			break
		}
		r.apply(cmd)
	}
	r.mixer.OnStartProcessing()
	r.sweepPlayers()
}

func (r *Renderer) apply(cmd command) {
	switch cmd.kind {
	case cmdAddPlayer:
		r.players.InsertWithKey(cmd.key, cmd.player)
	case cmdPausePlayer:
		if p := r.players.Get(cmd.key); p != nil {
			(*p).Pause(cmd.tween)
		}
	case cmdResumePlayer:
		if p := r.players.Get(cmd.key); p != nil {
			(*p).Resume(cmd.tween)
		}
	case cmdStopPlayer:
		if p := r.players.Get(cmd.key); p != nil {
			(*p).Stop(cmd.tween)
		}
	case cmdAddSubTrack:
		r.mixer.AddSubTrack(mixer.SubTrackID(cmd.key), cmd.track)
	case cmdRemoveSubTrack:
		r.mixer.RemoveSubTrack(mixer.SubTrackID(cmd.key))
	case cmdAddParameter:
		r.params.Add(parameter.NewID(cmd.key), parameter.New(cmd.value))
	case cmdSetParameter:
		r.params.Set(parameter.NewID(cmd.key), cmd.value, cmd.tween)
	case cmdRemoveParameter:
		r.params.Remove(parameter.NewID(cmd.key))
	default:
		panic(&arena.ProtocolError{Op: "apply", Key: cmd.key, Reason: cmd.kind.String()})
	}
}

// sweepPlayers moves stopped players to the unused queue until it is full.
// Whatever does not fit stays for the next block.
func (r *Renderer) sweepPlayers() {
	if r.unusedPlayers.IsFull() {
		return
	}
	for _, p := range r.players.DrainFilter(isStopped) {
		if err := r.unusedPlayers.Push(p); err != nil {
			panic("manager: unused player queue overflowed during sweep")
		}
		if r.unusedPlayers.IsFull() {
			return
		}
	}
}

func isStopped(p **sound.Player) bool { return (*p).IsStopped() }

// Process renders one frame: parameters move, every player writes into its
// track and the mixer sums the tracks.
func (r *Renderer) Process() audio.Frame {
	r.params.Update(r.dt)
	for _, p := range r.players.All() {
		(*p).Advance(r.dt, r.mixer, r.params)
	}
	return r.mixer.Process(r.dt, r.params)
}

// ProcessBlock renders len(left) frames as one block. left and right must
// have the same length.
func (r *Renderer) ProcessBlock(left, right []float32) {
	if len(left) != len(right) {
		panic("manager: ProcessBlock channel buffers differ in length")
	}
	r.OnStartProcessing()
	for i := range left {
		f := r.Process()
		left[i] = f.Left
		right[i] = f.Right
	}
	if r.volume != 1 {
		f32.Scale(left, left, r.volume)
		f32.Scale(right, right, r.volume)
	}
}

// Read fills interleaved with stereo frames, one block at a time, and
// returns the number of samples written. A trailing odd sample is zeroed.
func (r *Renderer) Read(interleaved []float32) int {
	frames := len(interleaved) / 2
	for done := 0; done < frames; {
		n := min(frames-done, len(r.left))
		left, right := r.left[:n], r.right[:n]
		r.ProcessBlock(left, right)
		f32.Interleave2(interleaved[2*done:2*(done+n)], left, right)
		done += n
	}
	if len(interleaved)%2 == 1 {
		interleaved[len(interleaved)-1] = 0
	}
	return frames * 2
}
