// Package export writes door scenes to mesh interchange formats.
package export

import (
	"errors"

	"github.com/taigrr/doorgeom/pkg/math3d"
	"github.com/taigrr/doorgeom/pkg/mesh"
	"github.com/taigrr/doorgeom/pkg/scene"
)

// ErrEmptyScene is returned when there is nothing to export.
var ErrEmptyScene = errors.New("no visible parts to export")

// zUpToYUp converts Z-up millimeters to glTF's Y-up meters with the door
// front (+Y) facing glTF's +Z. X flips to keep the basis right-handed.
var zUpToYUp = math3d.Mat4{
	-0.001, 0, 0, 0,
	0, 0, 0.001, 0,
	0, 0.001, 0, 0,
	0, 0, 0, 1,
}

// yUpToZUp is the inverse of zUpToYUp.
var yUpToZUp = math3d.Mat4{
	-1000, 0, 0, 0,
	0, 0, 1000, 0,
	0, 1000, 0, 0,
	0, 0, 0, 1,
}

// selectParts returns the visible parts, or the parts of the given groups
// when any are named.
func selectParts(s scene.Snapshot, groups []scene.Group) []scene.Part {
	if len(groups) == 0 {
		return s.VisibleParts()
	}
	var out []scene.Part
	for _, p := range s.Parts {
		for _, g := range groups {
			if p.Group == g {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// worldMesh returns the part's mesh with its open transform applied.
func worldMesh(p scene.Part) *mesh.Buffer {
	if p.Transform == nil {
		return p.Mesh
	}
	return p.Mesh.Transform(p.Transform.Matrix())
}
