// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package output

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// PlaySpeaker starts s on beep's speaker with the given latency. The
// speaker keeps pulling from s until CloseSpeaker.
func PlaySpeaker(s *Streamer, latency time.Duration) error {
	format := s.Format()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(latency)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(s)
	return nil
}

func CloseSpeaker() {
	speaker.Clear()
	speaker.Close()
}
