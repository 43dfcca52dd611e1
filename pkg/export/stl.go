package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/taigrr/doorgeom/pkg/scene"
)

// Triangles returns the triangles of the selected parts in millimeters
// with their open transforms applied. With no groups the visible parts
// are used.
func Triangles(s scene.Snapshot, groups ...scene.Group) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, p := range selectParts(s, groups) {
		b := worldMesh(p)
		for i := range b.TriangleCount() {
			var t sdf.Triangle3
			for j, vi := range b.Triangle(i) {
				v := b.Vertex(vi)
				t[j] = v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
			}
			out = append(out, &t)
		}
	}
	return out
}

// SaveSTL writes the selected parts to path as binary STL.
func SaveSTL(path string, s scene.Snapshot, groups ...scene.Group) error {
	tris := Triangles(s, groups...)
	if len(tris) == 0 {
		return ErrEmptyScene
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("save stl: %w", err)
	}
	return nil
}
