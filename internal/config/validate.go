// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	t := cfg.Receiver.Timing
	if t.ZeroMaxUs != 0 && t.OneMaxUs != 0 && t.ZeroMaxUs >= t.OneMaxUs {
		return fmt.Errorf(
			"receiver.timing: zero_max_us (%d) must be below one_max_us (%d)",
			t.ZeroMaxUs,
			t.OneMaxUs,
		)
	}

	// ------------------------------------------------------------
	// OVERFLOW POLICY
	// ------------------------------------------------------------

	switch cfg.Receiver.Overflow {
	case "", "drop_oldest", "drop_newest":
	default:
		return fmt.Errorf(
			"receiver.overflow: unknown policy %q (want drop_oldest or drop_newest)",
			cfg.Receiver.Overflow,
		)
	}

	// ------------------------------------------------------------
	// KEYS
	// ------------------------------------------------------------

	names := make(map[string]int)
	codes := make(map[uint16]string)

	for i, k := range cfg.Keys {
		if k.Name == "" {
			return fmt.Errorf("keys[%d]: name is empty", i)
		}
		if prev, exists := names[k.Name]; exists {
			return fmt.Errorf("keys[%d]: name %q already used by keys[%d]", i, k.Name, prev)
		}
		names[k.Name] = i

		if prev, exists := codes[k.Code]; exists {
			return fmt.Errorf("keys[%d]: code %d already assigned to %q", i, k.Code, prev)
		}
		codes[k.Code] = k.Name
	}

	return nil
}
