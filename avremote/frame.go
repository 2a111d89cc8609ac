package avremote

import (
	"time"

	"github.com/sparques/irdetect"
)

var (
	StartPair = irdetect.TimePair{9 * time.Millisecond, 4500 * time.Microsecond}
	ZeroPair  = irdetect.TimePair{560 * time.Microsecond, 560 * time.Microsecond}
	OnePair   = irdetect.TimePair{560 * time.Microsecond, 1690 * time.Microsecond}
	// TrailPair is a lone mark; its falling edge closes the last bit.
	TrailPair = irdetect.TimePair{560 * time.Microsecond, 0}
)

// MarshalFrame implements irdetect.FrameMarshaller.
func (c Command) MarshalFrame() []irdetect.TimePair {
	out := make([]irdetect.TimePair, FrameBits+2)
	out[0] = StartPair
	for bit := 0; bit < FrameBits; bit++ {
		if c>>(FrameBits-1-bit)&1 == 1 {
			out[bit+1] = OnePair
		} else {
			out[bit+1] = ZeroPair
		}
	}
	out[FrameBits+1] = TrailPair
	return out
}

// Edges returns the falling-edge timestamps a receiver sees for c when the
// frame starts at start.
func (c Command) Edges(start uint32) []uint32 {
	return irdetect.FallingEdges(start, c.MarshalFrame())
}
