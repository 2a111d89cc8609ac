//go:build tinygo

package avremote

import (
	"machine"

	"github.com/sparques/irdetect"
	"github.com/sparques/irdetect/driver/gpio"
)

// NewPinDetector binds a detector to a receiver wired to pin, timed by the
// system clock.
func NewPinDetector(pin machine.Pin, opts ...Option) (*Detector, error) {
	return NewDetector(gpio.New(pin), irdetect.NewSystemClock(), opts...)
}
