// SPDX-License-Identifier: EPL-2.0

//go:build headless

package output

import (
	"time"

	"github.com/ik5/audmix/manager"
)

// OtoPlayer is unavailable in headless builds.
type OtoPlayer struct{}

func NewOtoPlayer(*manager.Renderer, time.Duration) (*OtoPlayer, error) {
	return nil, ErrNoDevice
}

func (*OtoPlayer) Start()          {}
func (*OtoPlayer) IsStarted() bool { return false }
func (*OtoPlayer) Close() error    { return nil }

func PlaySpeaker(*Streamer, time.Duration) error { return ErrNoDevice }

func CloseSpeaker() {}
