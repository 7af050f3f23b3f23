// SPDX-License-Identifier: EPL-2.0

// Package parameter provides values that effects and sounds read once per
// sample without caring how they change.
//
// A Value is either fixed or linked to a Parameter living in a Parameters
// arena on the processing side. CachedValue snapshots a Value, clamped to
// a valid range, so hot loops read a plain float64:
//
//	feedback := parameter.NewCachedValue(settings.Feedback, -1, 1, 0.5)
//	...
//	feedback.Update(params) // once per sample
//	y := x * float32(feedback.Get())
//
// Parameters can be tweened to a new target over time. How the value
// moves is opaque to readers.
package parameter
