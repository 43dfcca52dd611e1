// Package settings holds the graphics quality presets.
//
// A Settings value is immutable once built; swap it between rebuilds by
// handing a new value to the scene assembler.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/doorgeom/pkg/mesh"
	"github.com/taigrr/doorgeom/pkg/shade"
)

// ErrUnknownPreset is returned for a preset name that does not exist.
var ErrUnknownPreset = errors.New("unknown quality preset")

// ErrInvalidSettings is returned for settings the mesh builders cannot use.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings controls tessellation and lighting.
type Settings struct {
	Name          string          `yaml:"name"`
	TubeSegments  int             `yaml:"tube_segments"`  // ring size of the lever tube
	BendSegments  int             `yaml:"bend_segments"`  // steps along the lever bend
	PlateSegments int             `yaml:"plate_segments"` // steps per handle plate corner
	Light         shade.Light     `yaml:"light"`
	FaceLight     shade.FaceTable `yaml:"face_light"`
	Background    mesh.Color      `yaml:"background"`
}

func preset(name string, tube, bend, plate int) Settings {
	return Settings{
		Name:          name,
		TubeSegments:  tube,
		BendSegments:  bend,
		PlateSegments: plate,
		Light:         shade.DefaultLight(),
		FaceLight:     shade.DefaultFaceTable,
		Background:    mesh.RGB(50.0/255, 50.0/255, 55.0/255),
	}
}

// Low, Medium and High trade triangle count for smoothness.
var (
	Low    = preset("low", 24, 10, 8)
	Medium = preset("medium", 48, 20, 16)
	High   = preset("high", 64, 30, 24)
)

// Default is the preset used when none is chosen.
func Default() Settings {
	return High
}

// ByName returns a built-in preset.
func ByName(name string) (Settings, error) {
	switch strings.ToLower(name) {
	case "low":
		return Low, nil
	case "medium", "med":
		return Medium, nil
	case "high", "":
		return High, nil
	}
	return Settings{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Validate checks the segment counts the mesh builders require.
func (s Settings) Validate() error {
	switch {
	case s.TubeSegments < 3:
		return fmt.Errorf("%w: %q tube segments %d, need at least 3", ErrInvalidSettings, s.Name, s.TubeSegments)
	case s.BendSegments < 1:
		return fmt.Errorf("%w: %q bend segments %d, need at least 1", ErrInvalidSettings, s.Name, s.BendSegments)
	case s.PlateSegments < 1:
		return fmt.Errorf("%w: %q plate segments %d, need at least 1", ErrInvalidSettings, s.Name, s.PlateSegments)
	case s.Light.Shininess < 0:
		return fmt.Errorf("%w: %q negative shininess", ErrInvalidSettings, s.Name)
	}
	return nil
}

// Parse decodes YAML settings. The document may name a base preset in
// "name"; fields it leaves out keep the base preset's values.
func Parse(data []byte) (Settings, error) {
	var head struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	s, err := ByName(head.Name)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads YAML settings from a file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}
