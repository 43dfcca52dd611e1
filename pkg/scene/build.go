package scene

import (
	"fmt"
	"math"

	"github.com/taigrr/doorgeom/pkg/dimension"
	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/math3d"
	"github.com/taigrr/doorgeom/pkg/mesh"
	"github.com/taigrr/doorgeom/pkg/profile"
	"github.com/taigrr/doorgeom/pkg/settings"
)

// Fixed part dimensions, millimeters.
const (
	wallMargin = 1000.0
	leafGap    = 4.0

	hingeWidth  = 15.0
	hingeDepth  = 8.0
	hingeHeight = 60.0

	plateWidth  = 40.0
	plateHeight = 160.0
	plateDepth  = 8.0
	plateRadius = 6.0
	plateInset  = 60.0 // plate center from the leaf's free edge
	handleZ     = 1000.0

	leverRadius = 9.0
	leverBend   = 25.0
	leverRun    = 110.0

	thresholdDepth     = 60.0
	thresholdClearance = 3.0
	thresholdMinHeight = 2.0
)

var (
	wallColor      = mesh.Color{R: 0.55, G: 0.55, B: 0.52, A: 0.6}
	hingeColor     = mesh.Gray(0.25)
	handleColor    = mesh.Gray(0.12)
	thresholdColor = mesh.Gray(0.6)
)

// hingeRatios gives hinge center heights as fractions of leaf height.
func hingeRatios(n int) []float64 {
	switch n {
	case 2:
		return []float64{0.20, 0.80}
	case 3:
		return []float64{0.15, 0.50, 0.85}
	}
	r := make([]float64, n)
	for i := range r {
		r[i] = float64(i+1) / float64(n+1)
	}
	return r
}

// leafLayout places one leaf along X.
type leafLayout struct {
	x0, width float64
	hinge     door.Swing
	active    bool // carries the handle
}

// builder holds one rebuild's inputs and output.
type builder struct {
	cfg      door.Config
	kind     profile.Kind
	depth    float64
	dims     dimension.Engine
	catalog  Catalog
	settings settings.Settings

	wall, leafT    float64
	airGap         float64
	shift          float64 // y shift of the blade assembly for recessed leaves
	leafW, leafH   float64
	frameW, frameH int

	parts  []*Part
	pivots []OpenTransform
}

func (b *builder) add(name string, kind PartKind, leaf int, buf *mesh.Buffer, base mesh.Color) {
	buf.Name = name
	b.parts = append(b.parts, &Part{
		Name:  name,
		Kind:  kind,
		Group: kind.Group(),
		Leaf:  leaf,
		Mesh:  buf,
		base:  base,
	})
}

func (b *builder) build() {
	cfg := b.cfg
	b.wall = float64(cfg.WallThickness)
	b.leafT = float64(cfg.LeafThickness)
	b.frameW = b.dims.FrameWidth(cfg.FrameType, cfg.Width)
	b.frameH = b.dims.FrameHeight(cfg.FrameType, cfg.Height)
	b.airGap = math.Round(b.kind.DefaultAirGap(cfg))
	// A leaf that is not flush with the wall face closes against the
	// front of a frame centered in the wall.
	if !b.dims.IsLeafFlush(cfg.FrameType) {
		b.shift = b.depth/2 - b.kind.HandleDepthOffset(b.wall, b.leafT, b.depth)
	}

	b.buildWall()
	b.buildFrame()

	w, okW := b.dims.LeafWidth(cfg.FrameType, b.frameW, cfg.Leaves, cfg.BladeType)
	h, okH := b.dims.LeafHeight(cfg.FrameType, b.frameH, cfg.Leaves, cfg.BladeType, int(b.airGap))
	if okW && okH {
		b.leafW, b.leafH = float64(w), float64(h)
		for i, l := range b.layoutLeaves() {
			b.buildLeaf(i, l)
		}
	} else {
		Logger().Debug("omitting leaves: unsupported leaf size",
			"frame_type", cfg.FrameType, "leaves", cfg.Leaves, "blade_type", cfg.BladeType)
	}

	b.buildThreshold()
}

// buildWall frames the nominal opening with two inverted-L segments,
// each a pier plus half of the lintel.
func (b *builder) buildWall() {
	bm, hm := float64(b.cfg.Width), float64(b.cfg.Height)
	y := -b.wall / 2

	left := mesh.NewBox(mesh.B(-bm/2-wallMargin, y, 0, wallMargin, b.wall, hm+wallMargin))
	left.Append(mesh.NewBox(mesh.B(-bm/2, y, hm, bm/2, b.wall, wallMargin)))
	b.add("wall-left", KindWall, -1, left, wallColor)

	right := mesh.NewBox(mesh.B(bm/2, y, 0, wallMargin, b.wall, hm+wallMargin))
	right.Append(mesh.NewBox(mesh.B(0, y, hm, bm/2, b.wall, wallMargin)))
	b.add("wall-right", KindWall, -1, right, wallColor)
}

func (b *builder) buildFrame() {
	f := profile.Frame{
		Width:         float64(b.frameW),
		Height:        float64(b.frameH),
		WallThickness: b.wall,
		Depth:         b.depth,
		SidePostWidth: float64(b.dims.SidePostWidth(b.cfg.FrameType)),
	}
	color := door.ColorOrDefault(b.cfg.FrameColor)
	for i, box := range b.kind.FrameParts(b.cfg, f) {
		b.add(fmt.Sprintf("frame-%02d", i+1), KindFrame, -1, mesh.NewBox(box), color)
	}
}

// layoutLeaves splits the leaf width. Two-leaf doors hinge on their
// outer edges with the active leaf, the first LeafSplit share, on the
// swing side; a right swing is the mirror image of a left one.
func (b *builder) layoutLeaves() []leafLayout {
	if b.cfg.Leaves != 2 {
		return []leafLayout{{x0: -b.leafW / 2, width: b.leafW, hinge: b.cfg.Swing, active: true}}
	}
	w1 := math.Round(b.leafW * b.cfg.LeafSplit / 100)
	w2 := b.leafW - w1
	x0 := -(b.leafW + leafGap) / 2
	leaves := []leafLayout{
		{x0: x0, width: w1, hinge: door.SwingLeft, active: true},
		{x0: x0 + w1 + leafGap, width: w2, hinge: door.SwingRight},
	}
	if b.cfg.Swing == door.SwingRight {
		for i := range leaves {
			l := &leaves[i]
			l.x0 = -(l.x0 + l.width)
			l.hinge = l.hinge.Mirror()
		}
	}
	return leaves
}

func (b *builder) buildLeaf(i int, l leafLayout) {
	y := b.kind.LeafDepthOffset(b.wall, b.leafT, b.depth) + b.shift
	leaf := mesh.NewBox(mesh.B(l.x0, y, b.airGap, l.width, b.leafT, b.leafH))
	b.add(fmt.Sprintf("leaf-%d", i+1), KindLeaf, i, leaf, door.ColorOrDefault(b.cfg.LeafColor))

	hy := b.kind.HingeDepthOffset(b.wall, b.leafT, b.depth, hingeDepth) + b.shift
	hx := l.x0 + l.width
	if l.hinge == door.SwingLeft {
		hx = l.x0 - hingeWidth
	}
	for j, r := range hingeRatios(b.hingesPerLeaf()) {
		hz := b.airGap + b.leafH*r - hingeHeight/2
		box := mesh.NewBox(mesh.B(hx, hy, hz, hingeWidth, hingeDepth, hingeHeight))
		b.add(fmt.Sprintf("hinge-%d-%d", i+1, j+1), KindHinge, i, box, hingeColor)
	}

	deg := OpenAngle
	if l.hinge == door.SwingRight {
		deg = -OpenAngle
	}
	b.pivots = append(b.pivots, OpenTransform{
		Degrees: deg,
		PivotX:  hx + hingeWidth/2,
		PivotY:  hy + hingeDepth/2,
	})

	if l.active {
		b.buildHandle(i, l)
	}
}

// hingesPerLeaf takes the catalog count for the door, else the user
// count, else 2, and shares it between two leaves.
func (b *builder) hingesPerLeaf() int {
	cfg := b.cfg
	n, ok := b.catalog.HingeCount(cfg.DoorType, cfg.BladeType, cfg.Leaves)
	if !ok {
		n = cfg.HingeCount
	}
	if n <= 0 {
		n = 2
	}
	if cfg.Leaves == 2 {
		n = max(1, n/2)
	}
	return n
}

// buildHandle mounts a plate near the leaf's free edge and a lever that
// leaves the plate forward, bends a quarter turn and runs toward the hinges.
func (b *builder) buildHandle(i int, l leafLayout) {
	cx := l.x0 + l.width - plateInset
	toHinge := math3d.Right().Negate()
	if l.hinge == door.SwingRight {
		cx = l.x0 + plateInset
		toHinge = math3d.Right()
	}
	lo := b.airGap + plateHeight/2
	hi := b.airGap + b.leafH - plateHeight/2
	cz := math.Max(lo, math.Min(handleZ, hi))
	y := b.kind.HandleDepthOffset(b.wall, b.leafT, b.depth) + b.shift

	plate := mesh.RoundedRectExtrusion(math3d.V3(cx, y+plateDepth/2, cz),
		plateWidth, plateHeight, plateDepth, plateRadius, b.settings.PlateSegments)
	b.add("handle-plate", KindHandlePlate, i, plate, handleColor)

	start := math3d.V3(cx, y+plateDepth, cz)
	path := mesh.QuarterBend(start, math3d.Front(), toHinge, leverBend, b.settings.BendSegments)
	path = append(path, path[len(path)-1].Add(toHinge.Scale(leverRun)))
	lever := mesh.SweptTube(path, leverRadius, b.settings.TubeSegments)
	b.add("handle-lever", KindHandleLever, i, lever, handleColor)
}

func (b *builder) buildThreshold() {
	cfg := b.cfg
	if !cfg.HasThreshold() {
		return
	}
	n, ok := b.dims.ThresholdLength(cfg.FrameType, b.frameW, cfg.Leaves)
	if !ok {
		Logger().Debug("omitting threshold: unsupported length",
			"frame_type", cfg.FrameType, "leaves", cfg.Leaves)
		return
	}
	length := float64(n)
	y := b.kind.ThresholdDepthOffset(b.wall, b.leafT, b.depth, thresholdDepth) + b.shift
	h := math.Max(thresholdMinHeight, b.airGap-thresholdClearance)
	box := mesh.NewBox(mesh.B(-length/2, y, 0, length, thresholdDepth, h))
	b.add("threshold", KindThreshold, -1, box, thresholdColor)
}
