// SPDX-License-Identifier: EPL-2.0

package manager

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/mixer"
	"gopkg.in/yaml.v3"
)

// Capacities bound how many resources of each kind can exist at once. They
// are fixed for the lifetime of a Manager.
type Capacities struct {
	Sounds     int `yaml:"sounds"`
	SubTracks  int `yaml:"sub_tracks"`
	Parameters int `yaml:"parameters"`
	Commands   int `yaml:"commands"`
}

func DefaultCapacities() Capacities {
	return Capacities{
		Sounds:     128,
		SubTracks:  128,
		Parameters: 128,
		Commands:   128,
	}
}

// Settings configures a Manager and its Renderer.
type Settings struct {
	Capacities Capacities `yaml:"capacities"`
	SampleRate uint32     `yaml:"sample_rate"`
	// BlockSize is the number of frames rendered between command drains
	// when reading through Renderer.Read.
	BlockSize int `yaml:"block_size"`
	// MasterVolume scales the final output after the main track.
	MasterVolume float32 `yaml:"master_volume"`

	MainTrack mixer.TrackSettings `yaml:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		Capacities:   DefaultCapacities(),
		SampleRate:   48000,
		BlockSize:    512,
		MasterVolume: 1,
		MainTrack:    mixer.DefaultTrackSettings(),
	}
}

// LoadSettings reads YAML on top of DefaultSettings, so a document only
// needs the keys it changes.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	c := s.Capacities
	switch {
	case c.Sounds < 1, c.SubTracks < 1, c.Parameters < 1, c.Commands < 1:
		return fmt.Errorf("%w: capacities must be positive: %+v", ErrInvalidSettings, c)
	case s.SampleRate == 0:
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidSettings)
	case s.BlockSize < 1:
		return fmt.Errorf("%w: block size must be positive", ErrInvalidSettings)
	case s.MasterVolume < 0:
		return fmt.Errorf("%w: master volume must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Dt is the duration of one frame in seconds.
func (s Settings) Dt() float64 { return 1 / float64(s.SampleRate) }
