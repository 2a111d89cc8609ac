// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Receiver ReceiverConfig `yaml:"receiver"`
	Keys     []KeyConfig    `yaml:"keys"`
}

// ---- RECEIVER ----

type ReceiverConfig struct {
	Timing            TimingConfig `yaml:"timing"`
	RequireFrameStart bool         `yaml:"require_frame_start"`
	Overflow          string       `yaml:"overflow"` // drop_oldest | drop_newest
}

// Zero means "use the default threshold".
type TimingConfig struct {
	ZeroMaxUs uint32 `yaml:"zero_max_us"`
	OneMaxUs  uint32 `yaml:"one_max_us"`
}

// ---- KEYS ----

// An empty key list keeps the built-in keymap.
type KeyConfig struct {
	Name string `yaml:"name"`
	Code uint16 `yaml:"code"`
}

// Load reads and decodes a YAML config file. It does not validate.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML config document. Unknown fields are rejected.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
