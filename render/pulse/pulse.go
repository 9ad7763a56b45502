// Package pulse scales a value up and eases it back whenever a watched
// number changes.
package pulse

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse tracks one integer and produces a scale for drawing it.
type Pulse struct {
	peak     float32
	duration float32
	tween    *gween.Tween
	scale    float32
	last     int
}

// New returns an idle pulse watching a value that starts at initial.
// Each change jumps to peak and eases back to 1 over duration seconds.
func New(initial int, peak, duration float32) *Pulse {
	return &Pulse{
		peak:     peak,
		duration: duration,
		scale:    1,
		last:     initial,
	}
}

// Advance restarts the pulse if value changed and steps it by dt seconds.
func (p *Pulse) Advance(value int, dt float32) {
	if value != p.last {
		p.last = value
		p.tween = gween.New(p.peak, 1, p.duration, ease.OutCubic)
	}
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(dt)
	p.scale = v
	if done {
		p.tween = nil
		p.scale = 1
	}
}

// Active reports whether a pulse is running.
func (p *Pulse) Active() bool {
	return p.tween != nil
}

// Scale returns the current scale, 1 when idle.
func (p *Pulse) Scale() float32 {
	return p.scale
}
