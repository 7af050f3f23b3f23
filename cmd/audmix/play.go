// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/audmix/manager"
	"github.com/ik5/audmix/output"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/sound"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const pollInterval = 50 * time.Millisecond

type playFlags struct {
	mixFlags
	backend string
	latency time.Duration
	fadeOut time.Duration
}

func newPlayCmd(root *rootFlags) *cobra.Command {
	var flags playFlags

	cmd := &cobra.Command{
		Use:   "play [flags] file...",
		Short: "Mix files live on the default audio device",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runPlay(ctx, root, &flags, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&flags.backend, "backend", "oto", "audio backend: oto or beep")
	cmd.Flags().DurationVar(&flags.latency, "latency", 100*time.Millisecond, "device buffer length")
	cmd.Flags().DurationVar(&flags.fadeOut, "fade-out", 250*time.Millisecond, "fade applied when interrupted")
	return cmd
}

func runPlay(ctx context.Context, root *rootFlags, flags *playFlags, paths []string, stdout, stderr io.Writer) error {
	settings, err := loadSettings(root.config)
	if err != nil {
		return err
	}
	m, r := manager.New(settings, manager.WithLogger(root.logger(stderr)))

	handles, err := flags.startMix(m, paths)
	if err != nil {
		return err
	}

	closeDevice, err := openDevice(flags, r, settings.BlockSize)
	if err != nil {
		return err
	}
	defer closeDevice()

	fmt.Fprintf(stdout, "playing %d sounds through %s\n", len(handles), flags.backend)
	if !waitStopped(ctx, m, handles) {
		fade := parameter.Tween{Duration: flags.fadeOut}
		for _, h := range handles {
			if err := h.Stop(fade); err != nil {
				return err
			}
		}
		time.Sleep(flags.fadeOut + pollInterval)
		return ctx.Err()
	}

	select {
	case <-time.After(flags.tail):
	case <-ctx.Done():
	}
	m.FreeUnusedResources()
	return nil
}

func openDevice(flags *playFlags, r *manager.Renderer, blockSize int) (func(), error) {
	switch flags.backend {
	case "oto":
		p, err := output.NewOtoPlayer(r, flags.latency)
		if err != nil {
			return nil, err
		}
		p.Start()
		return func() { p.Close() }, nil
	case "beep":
		if err := output.PlaySpeaker(output.NewStreamer(r, blockSize), flags.latency); err != nil {
			return nil, err
		}
		return output.CloseSpeaker, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", flags.backend)
	}
}

// waitStopped reports whether every sound finished before ctx was done.
func waitStopped(ctx context.Context, m *manager.Manager, handles []*manager.SoundHandle) bool {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		m.FreeUnusedResources()
		if lo.EveryBy(handles, isStopped) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

func isStopped(h *manager.SoundHandle) bool { return h.State() == sound.Stopped }
