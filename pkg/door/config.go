// Package door defines the door configuration value object and its YAML form.
package door

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid door configuration")

// Swing is the side of the opening that carries the hinges.
type Swing string

const (
	SwingLeft  Swing = "left"
	SwingRight Swing = "right"
)

// Mirror returns the opposite side.
func (s Swing) Mirror() Swing {
	if s == SwingLeft {
		return SwingRight
	}
	return SwingLeft
}

// Threshold type keys. ThresholdNone and the empty string both mean no
// threshold is fitted. ThresholdAirGap fits none either but uses the
// configured air gap instead of a table value.
const (
	ThresholdNone   = "ingen"
	ThresholdAirGap = "luftspalte"
)

// Config describes one door. Lengths are millimeters.
type Config struct {
	DoorType      string  `yaml:"door_type"`
	FrameType     string  `yaml:"frame_type"`
	Leaves        int     `yaml:"leaves"`
	Width         int     `yaml:"width"`  // nominal opening width
	Height        int     `yaml:"height"` // nominal opening height
	WallThickness int     `yaml:"wall_thickness"`
	LeafThickness int     `yaml:"leaf_thickness"`
	BladeType     string  `yaml:"blade_type"`
	ThresholdType string  `yaml:"threshold_type"`
	AirGap        int     `yaml:"air_gap"`    // used with ThresholdAirGap
	Swing         Swing   `yaml:"swing"`      // hinge side of the active leaf
	LeafSplit     float64 `yaml:"leaf_split"` // first leaf share of a two-leaf door, percent
	HingeCount    int     `yaml:"hinge_count"`
	FrameColor    string  `yaml:"frame_color"`
	LeafColor     string  `yaml:"leaf_color"`
}

// Default returns a single-leaf interior door in a double-trim frame.
func Default() Config {
	return Config{
		DoorType:      "SDI",
		FrameType:     "SD1",
		Leaves:        1,
		Width:         1010,
		Height:        2110,
		WallThickness: 100,
		LeafThickness: 40,
		BladeType:     "SDI_ROCA",
		ThresholdType: ThresholdNone,
		AirGap:        22,
		Swing:         SwingLeft,
		LeafSplit:     50,
		FrameColor:    "RAL 9010",
		LeafColor:     "RAL 9010",
	}
}

// HasThreshold reports whether a threshold piece is fitted.
func (c Config) HasThreshold() bool {
	switch strings.ToLower(c.ThresholdType) {
	case "", ThresholdNone, "none", ThresholdAirGap:
		return false
	}
	return true
}

// Validate checks ranges. It does not consult the dimension catalog;
// an unknown frame or blade type is an unsupported configuration, not an
// invalid one.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: opening %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.WallThickness <= 0:
		return fmt.Errorf("%w: wall thickness %d must be positive", ErrInvalidConfig, c.WallThickness)
	case c.LeafThickness <= 0:
		return fmt.Errorf("%w: leaf thickness %d must be positive", ErrInvalidConfig, c.LeafThickness)
	case c.Leaves != 1 && c.Leaves != 2:
		return fmt.Errorf("%w: %d leaves, want 1 or 2", ErrInvalidConfig, c.Leaves)
	case c.Swing != SwingLeft && c.Swing != SwingRight:
		return fmt.Errorf("%w: swing %q, want left or right", ErrInvalidConfig, c.Swing)
	case c.Leaves == 2 && (c.LeafSplit <= 0 || c.LeafSplit >= 100):
		return fmt.Errorf("%w: leaf split %v must be between 0 and 100", ErrInvalidConfig, c.LeafSplit)
	case c.AirGap < 0:
		return fmt.Errorf("%w: air gap %d is negative", ErrInvalidConfig, c.AirGap)
	case c.HingeCount < 0:
		return fmt.Errorf("%w: hinge count %d is negative", ErrInvalidConfig, c.HingeCount)
	}
	return nil
}

// Parse decodes a YAML configuration. Missing keys keep their Default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse door config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read door config: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
