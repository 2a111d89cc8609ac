package avremote

import (
	"errors"
	"fmt"

	"github.com/sparques/irdetect"
	"github.com/sparques/irdetect/ring"
)

var (
	// ErrAlreadySetup is returned by a second call to Setup.
	ErrAlreadySetup = errors.New("avremote: detector already set up")
	// ErrClosed is returned by Setup after Close.
	ErrClosed = errors.New("avremote: detector closed")
)

// Stats is a snapshot of a Detector's counters.
type Stats struct {
	Frames   uint32 // commands decoded
	Aborted  uint32 // partial frames discarded by a frame start
	Dropped  uint32 // commands lost to buffer overflow
	Buffered int    // commands waiting to be popped
}

type Option func(*Detector)

// WithTiming overrides DefaultTiming.
func WithTiming(t Timing) Option {
	return func(d *Detector) {
		d.timing = t
	}
}

// WithOverflowPolicy selects what is lost when the main loop falls behind.
// The default is ring.DropOldest.
func WithOverflowPolicy(p ring.Policy) Option {
	return func(d *Detector) {
		d.policy = p
	}
}

// WithRequireFrameStart makes the decoder ignore bits that don't follow a
// frame start. Off by default.
func WithRequireFrameStart(on bool) Option {
	return func(d *Detector) {
		d.strict = on
	}
}

// Detector is the receiver for one remote on one input. Edges are decoded
// in the input's interrupt handler and queued; the main loop drains them
// with Available and Pop.
type Detector struct {
	in    irdetect.Input
	clock irdetect.Clock

	timing Timing
	policy ring.Policy
	strict bool

	dec Decoder
	buf ring.Buffer[Command]

	armed  bool
	closed bool
}

// NewDetector binds a detector to in. Only one detector may own a pin at a
// time; a second one fails with irdetect.ErrPinInUse until the first is
// closed. Nothing happens on the line until Setup is called.
func NewDetector(in irdetect.Input, clock irdetect.Clock, opts ...Option) (*Detector, error) {
	if err := irdetect.Claim(in.ID()); err != nil {
		return nil, fmt.Errorf("avremote: pin %d: %w", in.ID(), err)
	}
	d := &Detector{
		in:     in,
		clock:  clock,
		timing: DefaultTiming,
		policy: ring.DropOldest,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.dec.init(d.timing, d.strict, d.enqueue)
	return d, nil
}

// Setup resets the decoder and buffer, configures the input and arms the
// edge interrupt. It must be called once, before any edges can arrive.
func (d *Detector) Setup() error {
	if d.closed {
		return ErrClosed
	}
	if d.armed {
		return ErrAlreadySetup
	}
	d.dec.Reset()
	d.buf.Init(d.policy)

	if err := d.in.Configure(); err != nil {
		return fmt.Errorf("avremote: configure pin %d: %w", d.in.ID(), err)
	}
	if err := d.in.Listen(d.handleChange); err != nil {
		return fmt.Errorf("avremote: arm pin %d: %w", d.in.ID(), err)
	}
	d.armed = true
	return nil
}

// handleChange is the interrupt entry point.
func (d *Detector) handleChange(high bool) {
	if high {
		// only falling edges carry timing
		return
	}
	d.dec.HandleEdge(d.clock.Micros())
}

func (d *Detector) enqueue(c Command) {
	d.buf.Push(c)
}

// Available reports whether a decoded command is waiting.
func (d *Detector) Available() bool {
	return d.buf.Available()
}

// Pop returns the oldest waiting command. Call it only after Available
// has returned true; an empty Pop returns garbage.
func (d *Detector) Pop() Command {
	return d.buf.Pop()
}

// TryPop returns the oldest waiting command, if there is one.
func (d *Detector) TryPop() (Command, bool) {
	return d.buf.TryPop()
}

func (d *Detector) Stats() Stats {
	return Stats{
		Frames:   d.dec.Frames(),
		Aborted:  d.dec.Aborted(),
		Dropped:  d.buf.Dropped(),
		Buffered: d.buf.Len(),
	}
}

// Close disarms the input and releases the pin. Buffered commands can
// still be popped.
func (d *Detector) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	defer irdetect.Release(d.in.ID())

	if !d.armed {
		return nil
	}
	d.armed = false
	if err := d.in.Listen(nil); err != nil {
		return fmt.Errorf("avremote: disarm pin %d: %w", d.in.ID(), err)
	}
	return nil
}
