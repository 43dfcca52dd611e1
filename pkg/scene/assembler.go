// Package scene assembles the parts of a door scene from a configuration.
//
// An Assembler starts Empty. SetConfiguration rebuilds every part from
// scratch and leaves it Built. Visibility and the open angle change flags
// and transforms on the existing parts without regenerating geometry.
// An Assembler is not safe for concurrent use.
package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/doorgeom/pkg/dimension"
	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/profile"
	"github.com/taigrr/doorgeom/pkg/settings"
	"github.com/taigrr/doorgeom/pkg/shade"
)

// ErrUnknownFrameType is returned for a frame type the catalog lacks.
var ErrUnknownFrameType = errors.New("unknown frame type")

// State is the assembler lifecycle state.
type State int

const (
	Empty State = iota
	Built
)

func (s State) String() string {
	if s == Built {
		return "built"
	}
	return "empty"
}

// Catalog answers the frame and hardware questions the dimension engine
// does not cover.
type Catalog interface {
	Profile(frameType string) (profile.Kind, bool)
	FrameDepth(frameType string) (int, bool)
	HingeCount(doorType, bladeType string, leaves int) (int, bool)
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithOpenClearance shifts opened leaves forward by mm after rotation.
func WithOpenClearance(mm float64) Option {
	return func(a *Assembler) { a.clearance = mm }
}

// Assembler builds and owns the parts of one door scene.
type Assembler struct {
	dims      dimension.Engine
	catalog   Catalog
	settings  settings.Settings
	clearance float64

	state   State
	cfg     door.Config
	parts   []*Part
	pivots  []OpenTransform // closed-state pivot per leaf
	visible [groupCount]bool
	angle   float64
}

// New creates an Empty assembler. It fails when s cannot drive the mesh
// builders.
func New(dims dimension.Engine, catalog Catalog, s settings.Settings, opts ...Option) (*Assembler, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	a := &Assembler{
		dims:     dims,
		catalog:  catalog,
		settings: s,
	}
	for i := range a.visible {
		a.visible[i] = true
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// NewDefault creates an assembler backed by the built-in catalog.
func NewDefault(opts ...Option) *Assembler {
	c := dimension.Default()
	a, err := New(c, c, settings.Default(), opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// State returns the lifecycle state.
func (a *Assembler) State() State {
	return a.state
}

// Config returns the configuration of the current build.
func (a *Assembler) Config() door.Config {
	return a.cfg
}

// Settings returns the active quality preset.
func (a *Assembler) Settings() settings.Settings {
	return a.settings
}

// SetConfiguration validates cfg and rebuilds the whole scene. On error
// the previous build is kept.
func (a *Assembler) SetConfiguration(cfg door.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kind, ok := a.catalog.Profile(cfg.FrameType)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFrameType, cfg.FrameType)
	}
	depth, ok := a.catalog.FrameDepth(cfg.FrameType)
	if !ok {
		return fmt.Errorf("%w: %q has no depth", ErrUnknownFrameType, cfg.FrameType)
	}

	b := &builder{
		cfg:      cfg,
		kind:     kind,
		depth:    float64(depth),
		dims:     a.dims,
		catalog:  a.catalog,
		settings: a.settings,
	}
	b.build()

	a.cfg = cfg
	a.parts = b.parts
	a.pivots = b.pivots
	a.state = Built
	for _, p := range a.parts {
		p.Visible = a.visible[p.Group]
		a.shadePart(p)
	}
	a.applyOpen()

	Logger().Debug("scene rebuilt",
		"frame_type", cfg.FrameType,
		"profile", kind.String(),
		"parts", len(a.parts),
		"leaves", len(a.pivots),
	)
	return nil
}

// SetSettings swaps the quality preset and rebuilds a Built scene.
func (a *Assembler) SetSettings(s settings.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s
	if a.state == Built {
		return a.SetConfiguration(a.cfg)
	}
	return nil
}

// ToggleVisibility flips the visibility of g and returns the new value.
func (a *Assembler) ToggleVisibility(g Group) bool {
	a.SetVisible(g, !a.Visible(g))
	return a.Visible(g)
}

// SetVisible shows or hides g.
func (a *Assembler) SetVisible(g Group, v bool) {
	if g < 0 || int(g) >= groupCount {
		return
	}
	a.visible[g] = v
	for _, p := range a.parts {
		if p.Group == g {
			p.Visible = v
		}
	}
}

// Visible reports whether g is shown.
func (a *Assembler) Visible(g Group) bool {
	if g < 0 || int(g) >= groupCount {
		return false
	}
	return a.visible[g]
}

// ToggleOpen opens a closed door fully or closes an open one, and
// reports whether the door is now open.
func (a *Assembler) ToggleOpen() bool {
	if a.IsOpen() {
		a.SetOpenAngle(0)
	} else {
		a.SetOpenAngle(OpenAngle)
	}
	return a.IsOpen()
}

// IsOpen reports whether the leaves are swung away from closed.
func (a *Assembler) IsOpen() bool {
	return a.angle != 0
}

// OpenAngle returns the current swing in degrees.
func (a *Assembler) OpenAngle() float64 {
	return a.angle
}

// SetOpenAngle swings every leaf with its hinges and handle by deg
// degrees, clamped to [0, OpenAngle].
func (a *Assembler) SetOpenAngle(deg float64) {
	a.angle = max(0, min(deg, OpenAngle))
	a.applyOpen()
}

// applyOpen recomputes the transform and shading of every swinging part.
func (a *Assembler) applyOpen() {
	xforms := make([]*OpenTransform, len(a.pivots))
	if a.angle != 0 {
		for i, p := range a.pivots {
			o := p
			o.Degrees = p.Degrees * a.angle / OpenAngle
			o.DepthOffset = a.clearance * a.angle / OpenAngle
			xforms[i] = &o
		}
	}
	for _, p := range a.parts {
		if p.Leaf < 0 || p.Leaf >= len(xforms) {
			continue
		}
		p.Transform = xforms[p.Leaf]
		a.shadePart(p)
	}
}

// shadePart colors p for its current transform. Untransformed boxes use
// the face table; everything else is lit per triangle.
func (a *Assembler) shadePart(p *Part) {
	if p.Kind.flat() && p.Transform == nil {
		shade.FlatBox(p.Mesh, p.base, a.settings.FaceLight)
		return
	}
	if p.Transform == nil {
		shade.Computed(p.Mesh, nil, p.base, a.settings.Light)
		return
	}
	m := p.Transform.Matrix()
	shade.Computed(p.Mesh, &m, p.base, a.settings.Light)
}

// Snapshot returns the current parts. Meshes are shared; callers must
// not modify them.
func (a *Assembler) Snapshot() Snapshot {
	s := Snapshot{
		Config:    a.cfg,
		Parts:     make([]Part, len(a.parts)),
		Visible:   a.visible,
		OpenAngle: a.angle,
	}
	for i, p := range a.parts {
		s.Parts[i] = *p
		if p.Transform != nil {
			t := *p.Transform
			s.Parts[i].Transform = &t
		}
	}
	return s
}
