// Package stub provides host-side stand-ins for the receiver hardware: an
// input line whose edges are driven by the caller and a settable clock.
package stub

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNotConfigured is returned by Listen before Configure.
var ErrNotConfigured = errors.New("stub: pin not configured")

// Pin implements irdetect.Input.
type Pin struct {
	id uint8

	mu         sync.Mutex
	configured bool
	handler    func(high bool)
}

func NewPin(id uint8) *Pin {
	return &Pin{id: id}
}

func (p *Pin) ID() uint8 { return p.id }

func (p *Pin) Configure() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.configured = true
	return nil
}

func (p *Pin) Listen(handler func(high bool)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.configured && handler != nil {
		return ErrNotConfigured
	}
	p.handler = handler
	return nil
}

// Armed reports whether a handler is installed.
func (p *Pin) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handler != nil
}

// Fall delivers a falling edge. It does nothing while the pin is disarmed.
func (p *Pin) Fall() { p.change(false) }

// Rise delivers a rising edge.
func (p *Pin) Rise() { p.change(true) }

func (p *Pin) change(high bool) {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h != nil {
		h(high)
	}
}

// Clock implements irdetect.Clock with a value the caller sets.
type Clock struct {
	now atomic.Uint32
}

func (c *Clock) Micros() uint32 { return c.now.Load() }

func (c *Clock) Set(us uint32) { c.now.Store(us) }

// Advance moves the clock forward by us, wrapping like a hardware counter.
func (c *Clock) Advance(us uint32) { c.now.Add(us) }
