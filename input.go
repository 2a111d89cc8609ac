package irdetect

import (
	"errors"
	"sync"
	"time"
)

// Input is the digital line a demodulating IR receiver is wired to.
//
// Listen installs handler as the line's change notification; it is called
// from interrupt context with the level of the line after the change, so a
// true value means a rising edge. Passing a nil handler disarms the line.
// Implementations may report both edge directions.
type Input interface {
	ID() uint8
	Configure() error
	Listen(handler func(high bool)) error
}

// Clock is a monotonically increasing microsecond counter. It wraps at
// 2^32 microseconds (about 71 minutes); receivers only ever subtract
// two readings, so the wrap is harmless.
type Clock interface {
	Micros() uint32
}

// SystemClock counts microseconds since it was created using the runtime's
// monotonic clock.
type SystemClock struct {
	epoch time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// Micros implements Clock.
func (c *SystemClock) Micros() uint32 {
	return uint32(time.Since(c.epoch) / time.Microsecond)
}

var (
	// ErrPinInUse is returned when a second receiver is bound to a pin that
	// already has one.
	ErrPinInUse = errors.New("irdetect: pin already bound to a receiver")
)

var claims struct {
	sync.Mutex
	bound [256]bool
}

// Claim marks pin as owned by a receiver. It fails with ErrPinInUse if the
// pin is already claimed.
func Claim(pin uint8) error {
	claims.Lock()
	defer claims.Unlock()

	if claims.bound[pin] {
		return ErrPinInUse
	}
	claims.bound[pin] = true
	return nil
}

// Release gives up a claim made with Claim. Releasing an unclaimed pin is a no-op.
func Release(pin uint8) {
	claims.Lock()
	claims.bound[pin] = false
	claims.Unlock()
}
