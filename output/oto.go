// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audmix/manager"
)

// OtoPlayer plays a Renderer through oto. oto allows one context per
// process, so create at most one OtoPlayer.
type OtoPlayer struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

// NewOtoPlayer opens the default device at the renderer's sample rate.
// bufferSize is the device latency; zero lets oto pick.
func NewOtoPlayer(r *manager.Renderer, bufferSize time.Duration) (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(r.SampleRate()),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &OtoPlayer{
		ctx:    ctx,
		player: ctx.NewPlayer(NewReader(r)),
	}, nil
}

func (op *OtoPlayer) Start() {
	op.mu.Lock()
	defer op.mu.Unlock()

	if !op.started {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.started
}

func (op *OtoPlayer) Close() error {
	op.mu.Lock()
	defer op.mu.Unlock()

	op.started = false
	if err := op.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
