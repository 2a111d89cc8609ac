// Package irdetect holds the pieces shared by the IR receivers and
// transmitters in this module: pulse timing pairs, the digital input and
// clock abstractions the receivers are built on, and the registry that keeps
// one receiver per pin.
package irdetect

import "time"

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000
)

// TimePair encodes two durations used to encode an on-off amount of time:
// pair[0] is carrier on (mark), pair[1] is carrier off (space).
type TimePair [2]time.Duration

// Period is the full mark+space length of the pair.
func (p TimePair) Period() time.Duration {
	return p[0] + p[1]
}

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// FallingEdges returns the timestamps, in microseconds, of the falling edge
// at the start of each pair, with the first pair starting at start.
//
// Demodulating receivers idle high and pull the line low while the carrier
// is present, so every mark begins with a falling edge. Timestamps wrap the
// same way the receiver's microsecond counter does.
func FallingEdges(start uint32, pairs []TimePair) []uint32 {
	out := make([]uint32, len(pairs))
	t := start
	for i, p := range pairs {
		out[i] = t
		t += uint32(p.Period() / time.Microsecond)
	}
	return out
}
