//go:build tinygo

// Package gpio adapts a machine.Pin to irdetect.Input.
package gpio

import "machine"

// Pin is an irdetect.Input on a GPIO pin with edge interrupts.
type Pin struct {
	pin machine.Pin
	// Pullup enables the internal pull-up. The most common receivers have
	// one built in, so it is off by default.
	Pullup bool
}

func New(pin machine.Pin) *Pin {
	return &Pin{pin: pin}
}

func (p *Pin) ID() uint8 {
	return uint8(p.pin)
}

func (p *Pin) Configure() error {
	mode := machine.PinInput
	if p.Pullup {
		mode = machine.PinInputPullup
	}
	p.pin.Configure(machine.PinConfig{Mode: mode})
	return nil
}

// Listen arms the interrupt for both edges. Not every port can trigger on a
// single direction, so the handler filters.
func (p *Pin) Listen(handler func(high bool)) error {
	if handler == nil {
		return p.pin.SetInterrupt(machine.PinFalling|machine.PinRising, nil)
	}
	return p.pin.SetInterrupt(machine.PinFalling|machine.PinRising, func(ip machine.Pin) {
		handler(ip.Get())
	})
}
