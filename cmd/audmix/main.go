// SPDX-License-Identifier: EPL-2.0

// Command audmix mixes audio files through a delay track, either into a
// WAV file or straight to the sound card.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "audmix:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	config  string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "audmix",
		Short:         "Mix audio files through a track graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&flags.config, "config", "", "YAML settings file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newRenderCmd(&flags), newPlayCmd(&flags))
	return root
}

func (f *rootFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
