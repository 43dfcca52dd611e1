package mesh

import (
	"fmt"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// Box describes an axis-aligned solid by its minimum corner and extents.
type Box struct {
	Origin math3d.Vec3
	Size   math3d.Vec3
}

// B is shorthand for a Box from origin and extents.
func B(x, y, z, dx, dy, dz float64) Box {
	return Box{Origin: math3d.V3(x, y, z), Size: math3d.V3(dx, dy, dz)}
}

// Max returns the corner opposite Origin.
func (b Box) Max() math3d.Vec3 {
	return b.Origin.Add(b.Size)
}

// Center returns the center of the box.
func (b Box) Center() math3d.Vec3 {
	return b.Origin.Add(b.Size.Scale(0.5))
}

// Face identifies one side of a box. Triangles 2f and 2f+1 of a box
// buffer belong to face f.
type Face int

const (
	FaceBottom Face = iota // -Z
	FaceTop                // +Z
	FaceFront              // +Y
	FaceBack               // -Y
	FaceLeft               // -X
	FaceRight              // +X

	BoxFaceCount = 6
)

var faceNames = [BoxFaceCount]string{"bottom", "top", "front", "back", "left", "right"}

func (f Face) String() string {
	if f < 0 || int(f) >= BoxFaceCount {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() math3d.Vec3 {
	switch f {
	case FaceBottom:
		return math3d.V3(0, 0, -1)
	case FaceTop:
		return math3d.V3(0, 0, 1)
	case FaceFront:
		return math3d.V3(0, 1, 0)
	case FaceBack:
		return math3d.V3(0, -1, 0)
	case FaceLeft:
		return math3d.V3(-1, 0, 0)
	case FaceRight:
		return math3d.V3(1, 0, 0)
	}
	return math3d.Vec3{}
}

// Corner indices: 0-3 on the bottom walking +X then +Y, 4-7 above them.
var boxFaces = [BoxFaceCount][2][3]int{
	FaceBottom: {{0, 2, 1}, {0, 3, 2}},
	FaceTop:    {{4, 5, 6}, {4, 6, 7}},
	FaceFront:  {{3, 6, 2}, {3, 7, 6}},
	FaceBack:   {{0, 1, 5}, {0, 5, 4}},
	FaceLeft:   {{0, 7, 3}, {0, 4, 7}},
	FaceRight:  {{1, 2, 6}, {1, 6, 5}},
}

// NewBox builds the 8-vertex, 12-triangle mesh of b.
func NewBox(b Box) *Buffer {
	mustExtent("box dx", b.Size.X)
	mustExtent("box dy", b.Size.Y)
	mustExtent("box dz", b.Size.Z)
	mustPoint("box origin", b.Origin)

	x0, y0, z0 := b.Origin.X, b.Origin.Y, b.Origin.Z
	x1, y1, z1 := x0+b.Size.X, y0+b.Size.Y, z0+b.Size.Z

	buf := &Buffer{
		Vertices: []math3d.Vec3{
			{X: x0, Y: y0, Z: z0},
			{X: x1, Y: y0, Z: z0},
			{X: x1, Y: y1, Z: z0},
			{X: x0, Y: y1, Z: z0},
			{X: x0, Y: y0, Z: z1},
			{X: x1, Y: y0, Z: z1},
			{X: x1, Y: y1, Z: z1},
			{X: x0, Y: y1, Z: z1},
		},
		Triangles: make([][3]int, 0, 2*BoxFaceCount),
	}
	for _, face := range boxFaces {
		buf.Triangles = append(buf.Triangles, face[0], face[1])
	}
	return buf
}
