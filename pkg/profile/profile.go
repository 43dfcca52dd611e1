// Package profile maps a door configuration to frame geometry.
//
// A Kind selects one of three frame cross-sections. Each emits the frame
// as axis-aligned boxes and answers where along the depth axis the leaf,
// hinges, handle and threshold sit. Widths and heights passed in already
// include the frame's own size offset from the nominal opening.
package profile

import (
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/mesh"
)

// Kind is a frame cross-section topology.
type Kind int

const (
	// DoubleTrim has trim strips on both wall faces joined by a thin
	// bridging spacer through the wall, with a stop block behind the leaf.
	DoubleTrim Kind = iota
	// SingleTrim has a front trim only and a leg reaching rearward into
	// the wall cavity.
	SingleTrim
	// Centered is a trimless frame centered in the wall cavity.
	Centered
)

// Kinds lists every profile.
var Kinds = []Kind{DoubleTrim, SingleTrim, Centered}

func (k Kind) String() string {
	switch k {
	case DoubleTrim:
		return "double-trim"
	case SingleTrim:
		return "single-trim"
	case Centered:
		return "centered"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse returns the Kind named by s.
func Parse(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown frame profile %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Frame carries the derived frame dimensions in millimeters.
type Frame struct {
	Width         float64
	Height        float64
	WallThickness float64
	Depth         float64
	SidePostWidth float64
}

// Shared sub-offsets, millimeters.
const (
	trimWidth     = 60.0
	trimThickness = 7.0
	bridgeWidth   = 5.0
	stopWidth     = 20.0
	stopDepth     = 44.0

	// DefaultAirGap is the floor clearance of the trimmed profiles.
	DefaultAirGap = 22.0
)

// FrameParts returns the frame as boxes. Every extent is at least zero.
func (k Kind) FrameParts(cfg door.Config, f Frame) []mesh.Box {
	leaf := float64(cfg.LeafThickness)
	switch k {
	case DoubleTrim:
		return doubleTrimParts(f, leaf)
	case SingleTrim:
		return singleTrimParts(f, leaf)
	case Centered:
		return centeredParts(f, leaf)
	}
	return nil
}

// BoxCount returns the number of boxes FrameParts emits.
func (k Kind) BoxCount() int {
	if k == DoubleTrim {
		return 12
	}
	return 9
}

// LeafDepthOffset returns the y of the leaf's back face.
func (k Kind) LeafDepthOffset(wall, leaf, depth float64) float64 {
	return k.frontFace(wall, depth) - leaf
}

// HingeDepthOffset returns the y of a hinge's back face. Hinges straddle
// the leaf's front face.
func (k Kind) HingeDepthOffset(wall, leaf, depth, hingeDepth float64) float64 {
	return k.frontFace(wall, depth) - hingeDepth/2
}

// HandleDepthOffset returns the y the handle plate is mounted on.
func (k Kind) HandleDepthOffset(wall, leaf, depth float64) float64 {
	return k.frontFace(wall, depth)
}

// ThresholdDepthOffset returns the y of the threshold's back face. The
// threshold sits behind the closed leaf.
func (k Kind) ThresholdDepthOffset(wall, leaf, depth, thresholdDepth float64) float64 {
	if k == Centered {
		return depth/2 - leaf - thresholdDepth
	}
	return wall/2 - thresholdDepth - leaf
}

// DefaultAirGap returns the leaf's floor clearance. The centered profile
// takes it from the configuration's threshold type.
func (k Kind) DefaultAirGap(cfg door.Config) float64 {
	if k == Centered {
		return float64(cfg.EffectiveAirGap())
	}
	return DefaultAirGap
}

// frontFace is the y of the closed leaf's front face: flush with the
// front trim, or with the front of a centered frame.
func (k Kind) frontFace(wall, depth float64) float64 {
	if k == Centered {
		return depth / 2
	}
	return wall/2 + trimThickness
}

// box builds a descriptor with extents clamped at zero.
func box(x, y, z, dx, dy, dz float64) mesh.Box {
	return mesh.B(x, y, z, math.Max(0, dx), math.Max(0, dy), math.Max(0, dz))
}
