package dimension

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/profile"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// LeafOffset is subtracted from the frame size to give the leaf size.
type LeafOffset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FrameSpec is the catalog entry of one frame type.
type FrameSpec struct {
	Profile        profile.Kind                  `yaml:"profile"`
	Depth          int                           `yaml:"depth"`
	WidthOffset    int                           `yaml:"width_offset"`
	HeightOffset   int                           `yaml:"height_offset"`
	SidePost       int                           `yaml:"side_post"`
	Flush          bool                          `yaml:"flush"`
	SubtractAirGap bool                          `yaml:"subtract_air_gap"`
	Leaves         map[int]LeafOffset            `yaml:"leaves"` // any blade type
	Blades         map[string]map[int]LeafOffset `yaml:"blades"` // per blade type
	Threshold      map[int]int                   `yaml:"threshold"`
}

// Catalog is an Engine backed by a YAML table. It also answers the frame
// depth, profile and hinge count questions the scene assembler asks.
type Catalog struct {
	Frames map[string]FrameSpec              `yaml:"frame_types"`
	Hinges map[string]map[string]map[int]int `yaml:"hinges"`
}

var _ Engine = (*Catalog)(nil)

var builtin = sync.OnceValue(func() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("dimension: embedded catalog: %v", err))
	}
	return c
})

// Default returns the built-in catalog. Callers must not modify it.
func Default() *Catalog {
	return builtin()
}

// Parse decodes and checks a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Frames) == 0 {
		return nil, fmt.Errorf("parse catalog: no frame types")
	}
	for name, f := range c.Frames {
		if f.Depth <= 0 {
			return nil, fmt.Errorf("parse catalog: frame type %s: depth %d must be positive", name, f.Depth)
		}
		if f.SidePost <= 0 {
			return nil, fmt.Errorf("parse catalog: frame type %s: side post %d must be positive", name, f.SidePost)
		}
	}
	return &c, nil
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// FrameWidth returns the outer frame width. Unknown frame types get no offset.
func (c *Catalog) FrameWidth(frameType string, nominalWidth int) int {
	return nominalWidth + c.Frames[frameType].WidthOffset
}

// FrameHeight returns the outer frame height.
func (c *Catalog) FrameHeight(frameType string, nominalHeight int) int {
	return nominalHeight + c.Frames[frameType].HeightOffset
}

func (c *Catalog) leafOffset(frameType string, leaves int, bladeType string) (LeafOffset, bool) {
	f, ok := c.Frames[frameType]
	if !ok {
		return LeafOffset{}, false
	}
	if f.Blades != nil {
		off, ok := f.Blades[bladeType][leaves]
		return off, ok
	}
	off, ok := f.Leaves[leaves]
	return off, ok
}

// LeafWidth returns the combined width of all leaves.
func (c *Catalog) LeafWidth(frameType string, frameWidth, leaves int, bladeType string) (int, bool) {
	off, ok := c.leafOffset(frameType, leaves, bladeType)
	if !ok || frameWidth-off.Width <= 0 {
		return 0, false
	}
	return frameWidth - off.Width, true
}

// LeafHeight returns the leaf height. Frame types that carry the floor
// clearance inside the frame height subtract airGap.
func (c *Catalog) LeafHeight(frameType string, frameHeight, leaves int, bladeType string, airGap int) (int, bool) {
	off, ok := c.leafOffset(frameType, leaves, bladeType)
	if !ok {
		return 0, false
	}
	h := frameHeight - off.Height
	if c.Frames[frameType].SubtractAirGap {
		h -= airGap
	}
	if h <= 0 {
		return 0, false
	}
	return h, true
}

// ThresholdLength returns the threshold length for the frame.
func (c *Catalog) ThresholdLength(frameType string, frameWidth, leaves int) (int, bool) {
	off, ok := c.Frames[frameType].Threshold[leaves]
	if !ok || frameWidth-off <= 0 {
		return 0, false
	}
	return frameWidth - off, true
}

// SidePostWidth returns the width of a frame side post, or 0 for an
// unknown frame type.
func (c *Catalog) SidePostWidth(frameType string) int {
	return c.Frames[frameType].SidePost
}

// IsLeafFlush reports whether the leaf closes flush with the frame face.
func (c *Catalog) IsLeafFlush(frameType string) bool {
	return c.Frames[frameType].Flush
}

// FrameDepth returns the frame depth.
func (c *Catalog) FrameDepth(frameType string) (int, bool) {
	f, ok := c.Frames[frameType]
	return f.Depth, ok
}

// Profile returns the cross-section of the frame type.
func (c *Catalog) Profile(frameType string) (profile.Kind, bool) {
	f, ok := c.Frames[frameType]
	return f.Profile, ok
}

// HingeCount returns the catalog hinge count for the whole door.
func (c *Catalog) HingeCount(doorType, bladeType string, leaves int) (int, bool) {
	n, ok := c.Hinges[doorType][bladeType][leaves]
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// FrameTypes returns the known frame type keys.
func (c *Catalog) FrameTypes() []string {
	keys := make([]string, 0, len(c.Frames))
	for k := range c.Frames {
		keys = append(keys, k)
	}
	return keys
}

// Supports reports whether every dimension of cfg can be derived:
// frame, leaf width and height, and the threshold when one is fitted.
func (c *Catalog) Supports(cfg door.Config) bool {
	kind, ok := c.Profile(cfg.FrameType)
	if !ok {
		return false
	}
	kb := c.FrameWidth(cfg.FrameType, cfg.Width)
	kh := c.FrameHeight(cfg.FrameType, cfg.Height)
	if _, ok := c.LeafWidth(cfg.FrameType, kb, cfg.Leaves, cfg.BladeType); !ok {
		return false
	}
	gap := int(kind.DefaultAirGap(cfg))
	if _, ok := c.LeafHeight(cfg.FrameType, kh, cfg.Leaves, cfg.BladeType, gap); !ok {
		return false
	}
	if cfg.HasThreshold() {
		if _, ok := c.ThresholdLength(cfg.FrameType, kb, cfg.Leaves); !ok {
			return false
		}
	}
	return true
}
