package avremote

import (
	"math"
	"strconv"
	"testing"
)

const (
	startGap = 2600
	zeroGap  = 1000
	oneGap   = 2200
)

// gaps turns a bit string into the edge-to-edge intervals that encode it.
func gaps(bits string) []uint32 {
	out := make([]uint32, len(bits))
	for i, b := range bits {
		if b == '1' {
			out[i] = oneGap
		} else {
			out[i] = zeroGap
		}
	}
	return out
}

func frame(bits string) []uint32 {
	return append([]uint32{startGap}, gaps(bits)...)
}

type recorder struct {
	got []Command
}

func (r *recorder) emit(c Command) { r.got = append(r.got, c) }

// feed delivers edges separated by the given intervals, starting at start,
// and returns the timestamp of the last edge.
func feed(d *Decoder, start uint32, intervals ...[]uint32) uint32 {
	t := start
	for _, iv := range intervals {
		for _, e := range iv {
			t += e
			d.HandleEdge(t)
		}
	}
	return t
}

func mustBits(t *testing.T, bits string) Command {
	t.Helper()
	v, err := strconv.ParseUint(bits, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	return Command(v)
}

func TestDecoderBitMapping(t *testing.T) {
	tests := []struct {
		name string
		bits string
	}{
		{"all zero", "0000000000000000"},
		{"all one", "1111111111111111"},
		{"msb only", "1000000000000000"},
		{"lsb only", "0000000000000001"},
		{"mixed", "1001011100001111"},
		{"on-off", "1110001001000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			d := NewDecoder(DefaultTiming, r.emit)
			feed(d, 0, frame(tc.bits))

			if len(r.got) != 1 {
				t.Fatalf("emitted %d commands, want 1", len(r.got))
			}
			if want := mustBits(t, tc.bits); r.got[0] != want {
				t.Fatalf("got %016b, want %016b", uint16(r.got[0]), uint16(want))
			}
		})
	}
}

func TestDecoderKnownCommand(t *testing.T) {
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	feed(d, 0, frame("1110001001000000"))

	if len(r.got) != 1 || r.got[0] != 57920 {
		t.Fatalf("got %v, want [57920]", r.got)
	}
	if s := CommandToString(r.got[0]); s != "ON-OFF" {
		t.Fatalf("CommandToString = %q, want ON-OFF", s)
	}
}

func TestDecoderEmitsOnSixteenthBit(t *testing.T) {
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	bits := gaps("1110001001000000")

	ts := feed(d, 0, []uint32{startGap}, bits[:15])
	if len(r.got) != 0 {
		t.Fatalf("emitted after 15 bits: %v", r.got)
	}
	d.HandleEdge(ts + bits[15])
	if len(r.got) != 1 || r.got[0] != OnOff {
		t.Fatalf("got %v after 16 bits, want [ON-OFF]", r.got)
	}
	if d.Frames() != 1 {
		t.Fatalf("Frames = %d, want 1", d.Frames())
	}
}

func TestDecoderThresholds(t *testing.T) {
	tests := []struct {
		name    string
		gap     uint32
		wantBit uint16
		isStart bool
	}{
		{"tiny", 1, 0, false},
		{"just below one", 1499, 0, false},
		{"one lower bound", 1500, 1, false},
		{"just below start", 2499, 1, false},
		{"start lower bound", 2500, 0, true},
		{"long idle", 90000, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			d := NewDecoder(DefaultTiming, r.emit)
			// 15 zero bits followed by the symbol under test
			ts := feed(d, 0, frame("000000000000000"))
			d.HandleEdge(ts + tc.gap)

			if tc.isStart {
				if len(r.got) != 0 {
					t.Fatalf("start symbol emitted %v", r.got)
				}
				if d.Aborted() != 1 {
					t.Fatalf("Aborted = %d, want 1", d.Aborted())
				}
				return
			}
			if len(r.got) != 1 || uint16(r.got[0]) != tc.wantBit {
				t.Fatalf("got %v, want [%d]", r.got, tc.wantBit)
			}
		})
	}
}

func TestDecoderFrameStartDiscardsPartial(t *testing.T) {
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	feed(d, 0, frame("11111"), frame("1110001001000000"))

	if len(r.got) != 1 || r.got[0] != OnOff {
		t.Fatalf("got %v, want [ON-OFF]", r.got)
	}
	if d.Aborted() != 1 {
		t.Fatalf("Aborted = %d, want 1", d.Aborted())
	}
}

func TestDecoderWraparound(t *testing.T) {
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	// land the counter wrap in the middle of the frame
	start := uint32(math.MaxUint32 - 8*oneGap)
	d.HandleEdge(start)
	feed(d, start, frame("1110001001000000"))

	if len(r.got) != 1 || r.got[0] != OnOff {
		t.Fatalf("got %v, want [ON-OFF]", r.got)
	}
}

func TestDecoderBackToBackWithoutStart(t *testing.T) {
	// Without the guard, bits keep accumulating after a command and the
	// next 16 form another one.
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	feed(d, 0, frame("1110001001000000"), gaps("1110001001001000"))

	if len(r.got) != 2 || r.got[0] != OnOff || r.got[1] != Up {
		t.Fatalf("got %v, want [ON-OFF UP]", r.got)
	}
}

func TestDecoderRequireFrameStart(t *testing.T) {
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	d.SetRequireFrameStart(true)

	// bits before any start are ignored
	feed(d, 0, gaps("1111111111111111"))
	if len(r.got) != 0 {
		t.Fatalf("emitted %v without a frame start", r.got)
	}

	ts := feed(d, 100000, frame("1110001001000000"))
	// a second run of bits with no start in front is not a command
	ts = feed(d, ts, gaps("1110001001001000"))
	feed(d, ts, frame("1110001001010000"))

	if len(r.got) != 2 || r.got[0] != OnOff || r.got[1] != Down {
		t.Fatalf("got %v, want [ON-OFF DOWN]", r.got)
	}
}

func TestDecoderCustomTiming(t *testing.T) {
	var r recorder
	d := NewDecoder(Timing{ZeroMax: 500, OneMax: 900}, r.emit)
	iv := []uint32{5000}
	for _, b := range "1110001001000000" {
		if b == '1' {
			iv = append(iv, 700)
		} else {
			iv = append(iv, 300)
		}
	}
	feed(d, 0, iv)

	if len(r.got) != 1 || r.got[0] != OnOff {
		t.Fatalf("got %v, want [ON-OFF]", r.got)
	}
}

func TestDecoderReset(t *testing.T) {
	var r recorder
	d := NewDecoder(DefaultTiming, r.emit)
	feed(d, 0, frame("1110001001000000"), frame("111"))
	d.Reset()
	if d.Frames() != 0 || d.Aborted() != 0 {
		t.Fatalf("after Reset: frames=%d aborted=%d", d.Frames(), d.Aborted())
	}
	// the three stale bits are gone: a full frame decodes cleanly
	feed(d, 0, frame("1110001001001100"))
	if len(r.got) != 2 || r.got[1] != Mute {
		t.Fatalf("got %v, want [ON-OFF MUTE]", r.got)
	}
}
