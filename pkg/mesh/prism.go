package mesh

import (
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// prism extrudes a convex profile along Y. The profile lives in the XZ
// plane relative to center and must run counter-clockwise with X right
// and Z up. Vertices are the back ring, the front ring, then the back
// and front cap centers.
func prism(name string, center math3d.Vec3, profile []math3d.Vec2, depth float64) *Buffer {
	n := len(profile)
	yBack := center.Y - depth/2
	yFront := center.Y + depth/2

	buf := &Buffer{
		Name:      name,
		Vertices:  make([]math3d.Vec3, 0, 2*n+2),
		Triangles: make([][3]int, 0, 4*n),
	}
	for _, y := range []float64{yBack, yFront} {
		for _, p := range profile {
			buf.Vertices = append(buf.Vertices, math3d.V3(center.X+p.X, y, center.Z+p.Y))
		}
	}
	backCenter := len(buf.Vertices)
	buf.Vertices = append(buf.Vertices,
		math3d.V3(center.X, yBack, center.Z),
		math3d.V3(center.X, yFront, center.Z),
	)
	frontCenter := backCenter + 1

	for j := range n {
		next := (j + 1) % n
		buf.Triangles = append(buf.Triangles,
			[3]int{j, n + next, next},
			[3]int{j, n + j, n + next},
		)
	}
	for j := range n {
		next := (j + 1) % n
		buf.Triangles = append(buf.Triangles,
			[3]int{backCenter, j, next},
			[3]int{frontCenter, n + next, n + j},
		)
	}
	return buf
}

// RoundedRectProfile returns the 4*(segments+1) profile points of a
// width x height rectangle with rounded corners, walking the corners
// counter-clockwise from the top-right one. The radius is clamped to
// [0, min(width, height)/2].
func RoundedRectProfile(width, height, radius float64, segments int) []math3d.Vec2 {
	r := math.Max(0, math.Min(radius, math.Min(width, height)/2))
	hw, hh := width/2, height/2
	corners := [4]math3d.Vec2{
		{X: hw - r, Y: hh - r},
		{X: -hw + r, Y: hh - r},
		{X: -hw + r, Y: -hh + r},
		{X: hw - r, Y: -hh + r},
	}

	pts := make([]math3d.Vec2, 0, 4*(segments+1))
	for c, corner := range corners {
		start := float64(c) * math.Pi / 2
		for k := range segments + 1 {
			a := start + math.Pi/2*float64(k)/float64(segments)
			pts = append(pts, math3d.V2(corner.X+r*math.Cos(a), corner.Y+r*math.Sin(a)))
		}
	}
	return pts
}

// RoundedRectExtrusion builds a plate centered on center: width along X,
// height along Z, depth along Y.
func RoundedRectExtrusion(center math3d.Vec3, width, height, depth, radius float64, segments int) *Buffer {
	mustPoint("extrusion center", center)
	mustExtent("extrusion width", width)
	mustExtent("extrusion height", height)
	mustExtent("extrusion depth", depth)
	mustExtent("corner radius", math.Abs(radius))
	mustSegments("corner segments", segments, 1)

	return prism("rounded-rect", center, RoundedRectProfile(width, height, radius, segments), depth)
}

// Cylinder builds a capped cylinder whose axis runs along Y through center.
func Cylinder(center math3d.Vec3, radius, depth float64, segments int) *Buffer {
	mustPoint("cylinder center", center)
	mustExtent("cylinder radius", radius)
	mustExtent("cylinder depth", depth)
	mustSegments("cylinder segments", segments, 3)

	profile := make([]math3d.Vec2, segments)
	for k := range profile {
		a := 2 * math.Pi * float64(k) / float64(segments)
		profile[k] = math3d.V2(radius*math.Cos(a), radius*math.Sin(a))
	}
	return prism("cylinder", center, profile, depth)
}
