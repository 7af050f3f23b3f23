// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis. Vorbis decodes straight to float, so
// samples are passed through without conversion.
package vorbis
