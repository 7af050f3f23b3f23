// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
)

var (
	ErrNoAudio                         = errors.New("the file does not contain any audio")
	ErrVariableSampleRate              = errors.New("the audio has multiple sample rates")
	ErrUnsupportedChannelConfiguration = errors.New("only mono and stereo audio is supported")
)

// LoadError is returned when a sound cannot be loaded. Err is one of the
// sentinels above or the underlying I/O or decoder error.
type LoadError struct {
	Path string
	Op   string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load sound: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("load sound %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
