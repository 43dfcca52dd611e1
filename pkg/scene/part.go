package scene

import (
	"fmt"

	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/mesh"
)

// Group is a visibility group. Every part belongs to exactly one.
type Group int

const (
	GroupWall Group = iota
	GroupFrame
	// GroupBlade holds the leaves, hinges, handle and threshold.
	GroupBlade

	groupCount = 3
)

// Groups lists every group.
var Groups = []Group{GroupWall, GroupFrame, GroupBlade}

func (g Group) String() string {
	switch g {
	case GroupWall:
		return "wall"
	case GroupFrame:
		return "frame"
	case GroupBlade:
		return "blade"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// ParseGroup returns the group named s.
func ParseGroup(s string) (Group, error) {
	for _, g := range Groups {
		if s == g.String() {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown group %q", s)
}

// PartKind says what a part is.
type PartKind int

const (
	KindWall PartKind = iota
	KindFrame
	KindLeaf
	KindHinge
	KindHandlePlate
	KindHandleLever
	KindThreshold
)

var kindNames = [...]string{"wall", "frame", "leaf", "hinge", "handle-plate", "handle-lever", "threshold"}

func (k PartKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
	return kindNames[k]
}

// Group returns the visibility group of the kind.
func (k PartKind) Group() Group {
	switch k {
	case KindWall:
		return GroupWall
	case KindFrame:
		return GroupFrame
	}
	return GroupBlade
}

// flat reports whether the part is an axis-aligned box lit from the face table.
func (k PartKind) flat() bool {
	return k != KindHandlePlate && k != KindHandleLever
}

// Part is one visual part of the scene.
type Part struct {
	Name  string
	Kind  PartKind
	Group Group
	// Leaf is the index of the leaf the part swings with, or -1.
	Leaf int
	// Mesh is in world space for the closed door. Do not modify it.
	Mesh *mesh.Buffer
	// Transform is nil while the door is closed.
	Transform *OpenTransform
	Visible   bool

	base mesh.Color
}

// Snapshot is a read-only view of a built scene.
type Snapshot struct {
	Config    door.Config
	Parts     []Part
	Visible   [groupCount]bool
	OpenAngle float64
}

// VisibleParts returns the parts whose group is shown.
func (s Snapshot) VisibleParts() []Part {
	out := make([]Part, 0, len(s.Parts))
	for _, p := range s.Parts {
		if p.Visible {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many parts have kind k.
func (s Snapshot) Count(k PartKind) int {
	n := 0
	for _, p := range s.Parts {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// ByKind returns the parts of kind k in build order.
func (s Snapshot) ByKind(k PartKind) []Part {
	var out []Part
	for _, p := range s.Parts {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}
