// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/manager"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	mixFlags
	output string
	limit  time.Duration
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [flags] file...",
		Short: "Mix files offline into a WAV file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(root, &flags, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&flags.output, "output", "o", "mix.wav", "WAV file to write")
	cmd.Flags().DurationVar(&flags.limit, "limit", 10*time.Minute, "longest mix to render")
	return cmd
}

func runRender(root *rootFlags, flags *renderFlags, paths []string, stdout, stderr io.Writer) error {
	settings, err := loadSettings(root.config)
	if err != nil {
		return err
	}
	off, err := audmix.NewOffline(settings, manager.WithLogger(root.logger(stderr)))
	if err != nil {
		return err
	}

	handles, err := flags.startMix(off.Manager(), paths)
	if err != nil {
		return err
	}
	mix := off.RenderUntilStopped(handles, flags.tail, flags.limit)

	f, err := os.Create(flags.output)
	if err != nil {
		return err
	}
	if err := off.WriteWAV(f, mix); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	rendered := time.Duration(float64(len(mix)/2) / float64(settings.SampleRate) * float64(time.Second))
	fmt.Fprintf(stdout, "wrote %s: %d sounds, %s (longest input %s)\n",
		flags.output, len(handles), rendered.Round(time.Millisecond), longest(handles).Round(time.Millisecond))
	return nil
}
