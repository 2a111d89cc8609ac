// internal/config/normalize.go
package config

import (
	"github.com/sparques/irdetect/avremote"
	"github.com/sparques/irdetect/ring"
)

// Normalize fills in defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	t := &cfg.Receiver.Timing
	if t.ZeroMaxUs == 0 {
		t.ZeroMaxUs = avremote.DefaultTiming.ZeroMax
	}
	if t.OneMaxUs == 0 {
		t.OneMaxUs = avremote.DefaultTiming.OneMax
	}
	// a lone override can still cross the other default
	if t.ZeroMaxUs >= t.OneMaxUs {
		t.OneMaxUs = t.ZeroMaxUs + 1
	}

	if cfg.Receiver.Overflow == "" {
		cfg.Receiver.Overflow = ring.DropOldest.String()
	}

	if len(cfg.Keys) == 0 {
		for _, k := range avremote.DefaultKeymap {
			cfg.Keys = append(cfg.Keys, KeyConfig{Name: k.Name, Code: uint16(k.Command)})
		}
	}
}

// Options converts a normalized config into detector options.
func (cfg *Config) Options() []avremote.Option {
	policy := ring.DropOldest
	if cfg.Receiver.Overflow == ring.DropNewest.String() {
		policy = ring.DropNewest
	}
	return []avremote.Option{
		avremote.WithTiming(avremote.Timing{
			ZeroMax: cfg.Receiver.Timing.ZeroMaxUs,
			OneMax:  cfg.Receiver.Timing.OneMaxUs,
		}),
		avremote.WithOverflowPolicy(policy),
		avremote.WithRequireFrameStart(cfg.Receiver.RequireFrameStart),
	}
}

// Keymap returns the configured key names.
func (cfg *Config) Keymap() avremote.Keymap {
	km := make(avremote.Keymap, len(cfg.Keys))
	for i, k := range cfg.Keys {
		km[i] = avremote.Key{Command: avremote.Command(k.Code), Name: k.Name}
	}
	return km
}
