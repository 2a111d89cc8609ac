//go:build tinygo

package irdetect

import (
	"fmt"
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

// TxDevice drives an IR LED with a PWM carrier. Marks switch the carrier on
// at 50% duty, spaces switch it off.
type TxDevice struct {
	pin    Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
}

// NewTxDevice configures pin for PWM output at the given carrier frequency.
// Use Freq38Khz unless the receiver is tuned to something else.
func NewTxDevice(pin Pin, carrier uint64) (*TxDevice, error) {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(1e9) / carrier})
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, fmt.Errorf("irdetect: carrier channel: %w", err)
	}
	pgroup.Set(ch, 0)
	return &TxDevice{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
	}, nil
}

func (tx *TxDevice) SendPair(pair TimePair) {
	tx.pgroup.Set(tx.ch, tx.duty)
	time.Sleep(pair[0])
	tx.pgroup.Set(tx.ch, 0)
	if pair[1] > 0 {
		time.Sleep(pair[1])
	}
}

func (tx *TxDevice) SendPairs(pairs ...TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}

// SendFrames sends each frame followed by gap of silence.
func (tx *TxDevice) SendFrames(gap time.Duration, fms ...FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
		time.Sleep(gap)
	}
}
