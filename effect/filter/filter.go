// SPDX-License-Identifier: EPL-2.0

// Package filter implements a resonant state-variable filter usable as a
// track effect or inside another effect's signal path.
package filter

import (
	"math"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/parameter"
)

// Mode picks which filter response is taken from the state-variable core.
type Mode int

const (
	LowPass Mode = iota
	BandPass
	HighPass
	Notch
)

func (m Mode) String() string {
	switch m {
	case LowPass:
		return "low-pass"
	case BandPass:
		return "band-pass"
	case HighPass:
		return "high-pass"
	case Notch:
		return "notch"
	default:
		return "unknown"
	}
}

const (
	minCutoff = 1.0
	maxCutoff = 20000.0
	// keeps tan(pi * cutoff * dt) finite when the cutoff reaches Nyquist
	maxNormalizedCutoff = 0.49
)

// Settings for a Filter. Mix is the wet/dry balance: 0 passes the input
// through, 1 outputs only the filtered signal.
type Settings struct {
	Mode      Mode
	Cutoff    parameter.Value
	Resonance parameter.Value
	Mix       parameter.Value
}

func DefaultSettings() Settings {
	return Settings{
		Mode:      LowPass,
		Cutoff:    parameter.Fixed(1000),
		Resonance: parameter.Fixed(0),
		Mix:       parameter.Fixed(1),
	}
}

// Filter is a two-integrator state-variable filter. Each channel keeps its
// own integrator state.
type Filter struct {
	mode      Mode
	cutoff    parameter.CachedValue
	resonance parameter.CachedValue
	mix       parameter.CachedValue
	ic1eq     audio.Frame
	ic2eq     audio.Frame
}

func New(settings Settings) *Filter {
	return &Filter{
		mode:      settings.Mode,
		cutoff:    parameter.NewCachedValue(settings.Cutoff, minCutoff, maxCutoff, 1000),
		resonance: parameter.NewCachedValue(settings.Resonance, 0, 1, 0),
		mix:       parameter.NewCachedValue(settings.Mix, 0, 1, 1),
	}
}

func (f *Filter) Mode() Mode { return f.mode }

// Init has nothing to allocate; the filter works at any sample rate since
// Process derives the coefficients from dt.
func (f *Filter) Init(uint32) {}

// Reset clears the integrators.
func (f *Filter) Reset() {
	f.ic1eq = audio.Frame{}
	f.ic2eq = audio.Frame{}
}

func (f *Filter) Process(input audio.Frame, dt float64, params *parameter.Parameters) audio.Frame {
	f.cutoff.Update(params)
	f.resonance.Update(params)
	f.mix.Update(params)

	normalized := min(f.cutoff.Get()*dt, maxNormalizedCutoff)
	g := math.Tan(math.Pi * normalized)
	k := 2 - 1.9*f.resonance.Get()
	a1 := 1 / (1 + g*(g+k))
	a2 := g * a1
	a3 := g * a2

	left := f.channel(input.Left, &f.ic1eq.Left, &f.ic2eq.Left, k, a1, a2, a3)
	right := f.channel(input.Right, &f.ic1eq.Right, &f.ic2eq.Right, k, a1, a2, a3)

	mix := f.mix.Get()
	wet := float32(math.Sqrt(mix))
	dry := float32(math.Sqrt(1 - mix))
	return audio.Frame{Left: left, Right: right}.Scale(wet).Add(input.Scale(dry))
}

func (f *Filter) channel(in float32, ic1, ic2 *float32, k, a1, a2, a3 float64) float32 {
	x := float64(in)
	v3 := x - float64(*ic2)
	v1 := a1*float64(*ic1) + a2*v3
	v2 := float64(*ic2) + a2*float64(*ic1) + a3*v3
	*ic1 = float32(2*v1 - float64(*ic1))
	*ic2 = float32(2*v2 - float64(*ic2))

	var out float64
	switch f.mode {
	case BandPass:
		out = v1
	case HighPass:
		out = x - k*v1 - v2
	case Notch:
		out = x - k*v1
	default:
		out = v2
	}
	return float32(out)
}
