// SPDX-License-Identifier: EPL-2.0

package parameter

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(x float64) float64

func Linear(x float64) float64 { return x }

// InPowi accelerates from zero with x^n.
func InPowi(n int) Easing {
	return func(x float64) float64 { return math.Pow(x, float64(n)) }
}

// OutPowi decelerates to the target with 1-(1-x)^n.
func OutPowi(n int) Easing {
	return func(x float64) float64 { return 1 - math.Pow(1-x, float64(n)) }
}

// Tween describes a transition over time. The zero Tween is instant.
type Tween struct {
	Duration time.Duration
	Easing   Easing
}

// Value returns the eased progress after elapsed seconds, in [0, 1].
func (t Tween) Value(elapsed float64) float64 {
	d := t.Duration.Seconds()
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	x := elapsed / d
	if t.Easing == nil {
		return x
	}
	return t.Easing(x)
}

// Done reports whether elapsed seconds cover the whole tween.
func (t Tween) Done(elapsed float64) bool {
	return elapsed >= t.Duration.Seconds()
}
