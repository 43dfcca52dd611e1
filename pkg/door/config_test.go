package door

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -10 }},
		{"no wall", func(c *Config) { c.WallThickness = 0 }},
		{"no leaf", func(c *Config) { c.LeafThickness = 0 }},
		{"three leaves", func(c *Config) { c.Leaves = 3 }},
		{"bad swing", func(c *Config) { c.Swing = "up" }},
		{"split out of range", func(c *Config) { c.Leaves = 2; c.LeafSplit = 100 }},
		{"negative air gap", func(c *Config) { c.AirGap = -1 }},
		{"negative hinges", func(c *Config) { c.HingeCount = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSplitIgnoredForSingleLeaf(t *testing.T) {
	cfg := Default()
	cfg.LeafSplit = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestHasThreshold(t *testing.T) {
	tests := []struct {
		kind string
		want bool
	}{
		{"", false},
		{"ingen", false},
		{"none", false},
		{"luftspalte", false},
		{"slepelist", true},
		{"hc20", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			cfg := Config{ThresholdType: tt.kind}
			if got := cfg.HasThreshold(); got != tt.want {
				t.Errorf("HasThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("frame_type: SD2\nswing: right\nleaves: 2\nleaf_split: 60\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.FrameType != "SD2" || cfg.Swing != SwingRight || cfg.Leaves != 2 || cfg.LeafSplit != 60 {
		t.Errorf("parsed fields wrong: %+v", cfg)
	}
	if cfg.Width != 1010 || cfg.WallThickness != 100 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	if _, err := Parse([]byte("width: [")); err == nil {
		t.Error("expected YAML error")
	}
	if _, err := Parse([]byte("width: -5")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse() = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.ThresholdType = "hc20"
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "door.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSwingMirror(t *testing.T) {
	if SwingLeft.Mirror() != SwingRight || SwingRight.Mirror() != SwingLeft {
		t.Error("Mirror() is not an involution")
	}
}

func TestRAL(t *testing.T) {
	for _, code := range []string{"RAL 9010", "ral 9010", "9010", " RAL9010 "} {
		if _, ok := RAL(code); !ok {
			t.Errorf("RAL(%q) not found", code)
		}
	}
	if _, ok := RAL("RAL 0000"); ok {
		t.Error("RAL 0000 should be unknown")
	}
	if ColorOrDefault("nope") != FallbackColor {
		t.Error("unknown code should use FallbackColor")
	}
}

func TestEffectiveAirGap(t *testing.T) {
	tests := []struct {
		kind string
		gap  int
		want int
	}{
		{"ingen", 5, 22},
		{"hc20", 5, 8},
		{"HCID", 5, 18},
		{"anslag_kjorbar_25", 0, 13},
		{"luftspalte", 15, 15},
		{"unknown", 15, DefaultAirGap},
		{"", 15, DefaultAirGap},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			cfg := Config{ThresholdType: tt.kind, AirGap: tt.gap}
			if got := cfg.EffectiveAirGap(); got != tt.want {
				t.Errorf("EffectiveAirGap() = %d, want %d", got, tt.want)
			}
		})
	}
}
