package render

import (
	"github.com/taigrr/doorgeom/pkg/math3d"
	"github.com/taigrr/doorgeom/pkg/scene"
)

// WireColor is the line color of wireframe mode.
var WireColor = RGB(200, 220, 255)

// DrawSnapshot draws the visible parts of s. Opaque parts go first so
// translucent ones, like the wall, blend over them.
func (r *Rasterizer) DrawSnapshot(s scene.Snapshot, wireframe bool) {
	parts := s.VisibleParts()
	for pass := range 2 {
		for _, p := range parts {
			translucent := p.Mesh.TriangleCount() > 0 && p.Mesh.TriangleColor(0).A < 255
			if translucent != (pass == 1) {
				continue
			}
			xf := p.Transform.Matrix()
			if wireframe {
				r.DrawMeshWireframe(p.Mesh, xf, WireColor)
				continue
			}
			r.DrawMesh(p.Mesh, xf)
		}
	}
}

// SnapshotBounds returns the world bounds of the visible parts with their
// current transforms. ok is false when nothing is visible.
func SnapshotBounds(s scene.Snapshot) (box AABB, ok bool) {
	for _, p := range s.VisibleParts() {
		if p.Mesh.VertexCount() == 0 {
			continue
		}
		lo, hi := p.Mesh.Bounds()
		b := AABB{Min: lo, Max: hi}.Transform(p.Transform.Matrix())
		if !ok {
			box, ok = b, true
			continue
		}
		box.Min = box.Min.Min(b.Min)
		box.Max = box.Max.Max(b.Max)
	}
	return box, ok
}

// RenderImage draws s into a new width x height framebuffer from a camera
// framing the visible parts.
func RenderImage(s scene.Snapshot, width, height int, background Color, wireframe bool) *Framebuffer {
	fb := NewFramebuffer(width, height)
	fb.Clear(background)
	cam := NewCamera()
	cam.SetAspectRatio(float64(width) / float64(max(1, height)))
	if box, ok := SnapshotBounds(s); ok {
		cam.Frame(box.Min, box.Max)
	} else {
		cam.SetTarget(math3d.Vec3{})
	}
	NewRasterizer(cam, fb).DrawSnapshot(s, wireframe)
	return fb
}
