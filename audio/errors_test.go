// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrInvalidDstSize, ErrUnknownFormat} {
		wrapped := fmt.Errorf("loading sound: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, sentinel)
		}
	}

	if errors.Is(ErrInvalidDstSize, ErrUnknownFormat) {
		t.Error("distinct sentinels compare equal")
	}
}
