// SPDX-License-Identifier: EPL-2.0

package parameter

import "github.com/ik5/audmix/arena"

// Parameter is a value that can be tweened from one target to another.
type Parameter struct {
	value    float64
	start    float64
	target   float64
	tween    Tween
	elapsed  float64
	tweening bool
}

// New returns a parameter resting at value.
func New(value float64) Parameter {
	return Parameter{value: value, target: value}
}

func (p *Parameter) Value() float64 { return p.value }

// Set starts moving the parameter toward target.
func (p *Parameter) Set(target float64, tween Tween) {
	p.start = p.value
	p.target = target
	p.tween = tween
	p.elapsed = 0
	p.tweening = true
	p.Update(0)
}

// Update advances the current tween by dt seconds.
func (p *Parameter) Update(dt float64) {
	if !p.tweening {
		return
	}
	p.elapsed += dt
	if p.tween.Done(p.elapsed) {
		p.value = p.target
		p.tweening = false
		return
	}
	p.value = p.start + (p.target-p.start)*p.tween.Value(p.elapsed)
}

// Parameters is the processing-side store of parameters.
type Parameters struct {
	params *arena.Arena[Parameter]
}

func NewParameters(capacity int) *Parameters {
	return &Parameters{params: arena.New[Parameter](capacity)}
}

// Controller reserves parameter keys from the control side.
func (ps *Parameters) Controller() *arena.Controller { return ps.params.Controller() }

func (ps *Parameters) Len() int { return ps.params.Len() }

// Add stores p at a reserved id.
func (ps *Parameters) Add(id ID, p Parameter) {
	ps.params.InsertWithKey(id.key, p)
}

// Get returns the current value of a parameter.
func (ps *Parameters) Get(id ID) (float64, bool) {
	if ps == nil {
		return 0, false
	}
	p := ps.params.Get(id.key)
	if p == nil {
		return 0, false
	}
	return p.value, true
}

// Set tweens a parameter to target. Unknown ids are ignored.
func (ps *Parameters) Set(id ID, target float64, tween Tween) {
	if p := ps.params.Get(id.key); p != nil {
		p.Set(target, tween)
	}
}

// Remove drops a parameter. Values linked to it keep their last reading.
func (ps *Parameters) Remove(id ID) bool {
	_, ok := ps.params.Remove(id.key)
	return ok
}

// Update advances every parameter by dt seconds.
func (ps *Parameters) Update(dt float64) {
	for _, p := range ps.params.All() {
		p.Update(dt)
	}
}
