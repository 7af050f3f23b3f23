// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/effect/delay"
	"github.com/ik5/audmix/effect/filter"
	"github.com/ik5/audmix/manager"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/sound"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// mixFlags shape the track graph both subcommands build.
type mixFlags struct {
	delay    float64
	feedback float64
	cutoff   float64
	volume   float64
	fadeIn   time.Duration
	tail     time.Duration
}

func (f *mixFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.delay, "delay", 0, "echo delay in seconds, 0 disables the delay track")
	fs.Float64Var(&f.feedback, "feedback", 0.5, "echo feedback in [-1, 1]")
	fs.Float64Var(&f.cutoff, "cutoff", 0, "low-pass cutoff in Hz inside the echo loop, 0 disables it")
	fs.Float64Var(&f.volume, "volume", 1, "volume of every sound")
	fs.DurationVar(&f.fadeIn, "fade-in", 0, "fade each sound in over this long")
	fs.DurationVar(&f.tail, "tail", 2*time.Second, "keep going this long after the last sound ends")
}

func loadSettings(path string) (manager.Settings, error) {
	if path == "" {
		return manager.DefaultSettings(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return manager.Settings{}, err
	}
	defer f.Close()
	return manager.LoadSettings(f)
}

// trackSettings builds the delay sub-track, or reports false when the
// sounds should go straight to the main track.
func (f *mixFlags) trackSettings() (mixer.TrackSettings, bool) {
	if f.delay <= 0 {
		return mixer.TrackSettings{}, false
	}
	ds := delay.DefaultSettings()
	ds.DelayTime = parameter.Fixed(f.delay)
	ds.Feedback = parameter.Fixed(f.feedback)
	ds.BufferLength = max(ds.BufferLength, f.delay)
	if f.cutoff > 0 {
		fs := filter.DefaultSettings()
		fs.Cutoff = parameter.Fixed(f.cutoff)
		ds.Filter = &fs
	}

	ts := mixer.DefaultTrackSettings()
	ts.Effects = []mixer.Effect{delay.New(ds)}
	return ts, true
}

// startMix loads every file and starts playing it on the track the flags
// describe.
func (f *mixFlags) startMix(m *manager.Manager, paths []string) ([]*manager.SoundHandle, error) {
	sounds := make([]*sound.StaticSound, 0, len(paths))
	for _, p := range paths {
		s, err := audmix.LoadSound(p)
		if err != nil {
			return nil, err
		}
		sounds = append(sounds, s)
	}

	ps := sound.DefaultPlayerSettings()
	ps.Volume = parameter.Fixed(f.volume)
	ps.FadeIn = parameter.Tween{Duration: f.fadeIn}
	if ts, ok := f.trackSettings(); ok {
		track, err := m.AddSubTrack(ts)
		if err != nil {
			return nil, fmt.Errorf("adding delay track: %w", err)
		}
		ps.Track = track.ID()
	}

	handles := make([]*manager.SoundHandle, 0, len(sounds))
	for i, s := range sounds {
		h, err := m.PlaySound(s, ps)
		if err != nil {
			return nil, fmt.Errorf("playing %s: %w", paths[i], err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func longest(handles []*manager.SoundHandle) time.Duration {
	return lo.MaxBy(handles, func(a, b *manager.SoundHandle) bool {
		return a.Duration() > b.Duration()
	}).Duration()
}
