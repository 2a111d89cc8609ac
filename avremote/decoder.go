// Package avremote decodes the 16-bit pulse distance code of a small
// 7-button AV remote.
//
// The remote's frames are a long start marker followed by 16 bits, MSB first.
// Only falling edges of the receiver output matter: the time from one
// falling edge to the next is the symbol. Shorter than 1.5ms is a zero,
// shorter than 2.5ms a one, anything longer starts a new frame.
//
// The usual way in is a Detector, which owns the decoder and a ring buffer
// and hands commands to the main loop:
//
//	det, err := avremote.NewPinDetector(machine.GPIO2)
//	if err != nil {
//		println("ir:", err.Error())
//	}
//	det.Setup()
//	for {
//		for det.Available() {
//			println(det.Pop().String())
//		}
//		time.Sleep(10 * time.Millisecond)
//	}
package avremote

import "sync/atomic"

// FrameBits is the number of bits in a command.
const FrameBits = 16

// Timing holds the upper bounds, in microseconds, of the edge-to-edge
// intervals that mean zero and one. Intervals at or above OneMax start a
// frame.
type Timing struct {
	ZeroMax uint32
	OneMax  uint32
}

// DefaultTiming matches the stock remote.
var DefaultTiming = Timing{ZeroMax: 1500, OneMax: 2500}

// Decoder turns falling-edge timestamps into Commands.
//
// HandleEdge is meant to run in interrupt context: it does not allocate or
// block, and calls emit directly when a frame completes. Everything except
// the counters is touched only by HandleEdge.
type Decoder struct {
	timing Timing
	// strict ignores bits until a frame start has been seen since the
	// last command, so a glitch can't splice two frames together.
	strict bool
	emit   func(Command)

	last   uint32
	bits   uint8
	acc    uint16
	synced bool

	frames  atomic.Uint32
	aborted atomic.Uint32
}

// NewDecoder creates a Decoder that calls emit with each complete command.
// emit is called from HandleEdge, so the same restrictions apply to it.
func NewDecoder(timing Timing, emit func(Command)) *Decoder {
	d := &Decoder{}
	d.init(timing, false, emit)
	return d
}

func (d *Decoder) init(timing Timing, strict bool, emit func(Command)) {
	d.timing = timing
	d.strict = strict
	d.emit = emit
	d.Reset()
}

// SetRequireFrameStart turns on the frame-start guard; see Decoder.
func (d *Decoder) SetRequireFrameStart(on bool) {
	d.strict = on
}

// Reset returns the decoder to its power-on state. It must not race with
// HandleEdge.
func (d *Decoder) Reset() {
	d.last = 0
	d.bits = 0
	d.acc = 0
	d.synced = false
	d.frames.Store(0)
	d.aborted.Store(0)
}

// HandleEdge processes one falling edge seen at timestamp microseconds.
func (d *Decoder) HandleEdge(timestamp uint32) {
	elapsed := timestamp - d.last // wraps with the counter
	d.last = timestamp

	switch {
	case elapsed < d.timing.ZeroMax:
		d.acc <<= 1
	case elapsed < d.timing.OneMax:
		d.acc = d.acc<<1 | 1
	default:
		// start of frame. Stale bits in acc are shifted out by the
		// next 16, so only the count is reset.
		if d.bits != 0 {
			d.aborted.Add(1)
		}
		d.bits = 0
		d.synced = true
		return
	}

	if d.strict && !d.synced {
		return
	}

	d.bits++
	if d.bits != FrameBits {
		return
	}

	d.bits = 0
	d.synced = false
	d.frames.Add(1)
	d.emit(Command(d.acc))
}

// Frames returns the number of commands emitted since Reset.
func (d *Decoder) Frames() uint32 {
	return d.frames.Load()
}

// Aborted returns how many partial frames were cut short by a frame start.
func (d *Decoder) Aborted() uint32 {
	return d.aborted.Load()
}
