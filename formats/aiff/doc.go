// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 or 32 bits is supported. Samples come out
// interleaved and normalized to [-1, 1].
package aiff
