// Package mesh builds the triangle meshes that make up a door scene.
//
// Every builder returns a fresh Buffer whose triangles wind counter-clockwise
// when seen from outside the solid, so the cross product of the first two
// edges of a triangle is its outward normal.
package mesh

import (
	"image/color"
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// Gray returns an opaque gray of the given level.
func Gray(v float64) Color {
	return Color{v, v, v, 1}
}

// Shade multiplies the color channels by f, clamping each to 1.
// Alpha is kept.
func (c Color) Shade(f float64) Color {
	return Color{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

// ToRGBA converts to 8-bit color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Buffer is an indexed triangle mesh with one color per triangle.
type Buffer struct {
	Name      string
	Vertices  []math3d.Vec3
	Triangles [][3]int
	Colors    []Color // parallel to Triangles, may be empty
}

// New creates an empty buffer.
func New(name string) *Buffer {
	return &Buffer{Name: name}
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles.
func (b *Buffer) TriangleCount() int {
	return len(b.Triangles)
}

// Vertex returns the position of vertex i.
func (b *Buffer) Vertex(i int) math3d.Vec3 {
	return b.Vertices[i]
}

// Triangle returns the vertex indices of triangle i.
func (b *Buffer) Triangle(i int) [3]int {
	return b.Triangles[i]
}

// TriangleColor returns the color of triangle i, or opaque white when
// the buffer is not colored.
func (b *Buffer) TriangleColor(i int) color.RGBA {
	if i >= len(b.Colors) {
		return color.RGBA{255, 255, 255, 255}
	}
	return b.Colors[i].ToRGBA()
}

// TriangleNormal returns the unit normal of triangle i from its winding.
func (b *Buffer) TriangleNormal(i int) math3d.Vec3 {
	t := b.Triangles[i]
	v0 := b.Vertices[t[0]]
	return b.Vertices[t[1]].Sub(v0).Cross(b.Vertices[t[2]].Sub(v0)).Normalize()
}

// Paint sets every triangle to c.
func (b *Buffer) Paint(c Color) {
	b.Colors = make([]Color, len(b.Triangles))
	for i := range b.Colors {
		b.Colors[i] = c
	}
}

// Append merges o into b, rebasing its triangle indices.
// Colors are kept only when both buffers carry them.
func (b *Buffer) Append(o *Buffer) {
	base := len(b.Vertices)
	colored := len(b.Colors) == len(b.Triangles) && len(o.Colors) == len(o.Triangles)

	b.Vertices = append(b.Vertices, o.Vertices...)
	for _, t := range o.Triangles {
		b.Triangles = append(b.Triangles, [3]int{t[0] + base, t[1] + base, t[2] + base})
	}
	if colored {
		b.Colors = append(b.Colors, o.Colors...)
	} else {
		b.Colors = nil
	}
}

// Bounds returns the axis-aligned bounding box. An empty buffer has zero bounds.
func (b *Buffer) Bounds() (lo, hi math3d.Vec3) {
	if len(b.Vertices) == 0 {
		return
	}
	lo, hi = b.Vertices[0], b.Vertices[0]
	for _, v := range b.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Center returns the center of the bounding box.
func (b *Buffer) Center() math3d.Vec3 {
	lo, hi := b.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (b *Buffer) Size() math3d.Vec3 {
	lo, hi := b.Bounds()
	return hi.Sub(lo)
}

// Transform returns a copy of the buffer with every vertex transformed by m.
func (b *Buffer) Transform(m math3d.Mat4) *Buffer {
	out := b.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = m.MulVec3(v)
	}
	return out
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{
		Name:      b.Name,
		Vertices:  make([]math3d.Vec3, len(b.Vertices)),
		Triangles: make([][3]int, len(b.Triangles)),
	}
	copy(clone.Vertices, b.Vertices)
	copy(clone.Triangles, b.Triangles)
	if b.Colors != nil {
		clone.Colors = make([]Color, len(b.Colors))
		copy(clone.Colors, b.Colors)
	}
	return clone
}
