// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audmix/utils"

// Frame is a single stereo sample pair. The zero value is silence.
type Frame struct {
	Left  float32
	Right float32
}

// FrameFromMono returns a frame with the same value on both channels.
func FrameFromMono(v float32) Frame {
	return Frame{Left: v, Right: v}
}

func (f Frame) Add(o Frame) Frame {
	return Frame{Left: f.Left + o.Left, Right: f.Right + o.Right}
}

func (f Frame) Sub(o Frame) Frame {
	return Frame{Left: f.Left - o.Left, Right: f.Right - o.Right}
}

func (f Frame) Scale(s float32) Frame {
	return Frame{Left: f.Left * s, Right: f.Right * s}
}

// Panned applies constant-sum panning where 0 is hard left, 0.5 center
// and 1 hard right.
func (f Frame) Panned(panning float32) Frame {
	return Frame{Left: f.Left * (1 - panning), Right: f.Right * panning}.Scale(2)
}

// InterpolateFrame estimates the signal between cur and next1 at fraction
// (0 <= fraction < 1) from four consecutive frames, one channel at a time.
func InterpolateFrame(prev, cur, next1, next2 Frame, fraction float32) Frame {
	return Frame{
		Left:  utils.CubicInterpolate(prev.Left, cur.Left, next1.Left, next2.Left, fraction),
		Right: utils.CubicInterpolate(prev.Right, cur.Right, next1.Right, next2.Right, fraction),
	}
}
