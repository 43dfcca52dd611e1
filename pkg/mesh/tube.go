package mesh

import (
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// parallelLimit is the |tangent·up| above which the ring frame switches
// to the fallback reference axis.
const parallelLimit = 0.99

// tangents returns unit tangents along path: forward difference at the
// ends, centered difference inside. A zero-length difference reuses the
// previous tangent.
func tangents(path []math3d.Vec3) []math3d.Vec3 {
	n := len(path)
	out := make([]math3d.Vec3, n)
	for i := range path {
		var d math3d.Vec3
		switch i {
		case 0:
			d = path[1].Sub(path[0])
		case n - 1:
			d = path[n-1].Sub(path[n-2])
		default:
			d = path[i+1].Sub(path[i-1])
		}
		t := d.Normalize()
		if t == (math3d.Vec3{}) {
			if i > 0 {
				t = out[i-1]
			} else {
				t = math3d.Front()
			}
		}
		out[i] = t
	}
	return out
}

// RingFrame returns two unit vectors u, v spanning the plane normal to
// tangent t, with u × v = t. The reference axis is world up, or world
// right when t is nearly vertical.
func RingFrame(t math3d.Vec3) (u, v math3d.Vec3) {
	ref := math3d.Up()
	if math.Abs(t.Dot(ref)) > parallelLimit {
		ref = math3d.Right()
	}
	u = t.Cross(ref).Normalize()
	v = t.Cross(u)
	return u, v
}

// SweptTube sweeps a circle of the given radius along path. Each path
// point gets a ring of segments vertices; both ends are closed with a
// fan to the path endpoint.
func SweptTube(path []math3d.Vec3, radius float64, segments int) *Buffer {
	if len(path) < 2 {
		panic("mesh: swept tube needs at least 2 path points")
	}
	for _, p := range path {
		mustPoint("tube path point", p)
	}
	mustExtent("tube radius", radius)
	mustSegments("tube segments", segments, 3)

	m, n := len(path), segments
	buf := &Buffer{
		Name:      "tube",
		Vertices:  make([]math3d.Vec3, 0, m*n+2),
		Triangles: make([][3]int, 0, 2*n*(m-1)+2*n),
	}

	for i, t := range tangents(path) {
		u, v := RingFrame(t)
		for j := range n {
			a := 2 * math.Pi * float64(j) / float64(n)
			off := u.Scale(radius * math.Cos(a)).Add(v.Scale(radius * math.Sin(a)))
			buf.Vertices = append(buf.Vertices, path[i].Add(off))
		}
	}

	for i := range m - 1 {
		for j := range n {
			next := (j + 1) % n
			a := i*n + j
			b := i*n + next
			c := (i+1)*n + next
			d := (i+1)*n + j
			buf.Triangles = append(buf.Triangles, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	start := len(buf.Vertices)
	end := start + 1
	buf.Vertices = append(buf.Vertices, path[0], path[m-1])
	last := (m - 1) * n
	for j := range n {
		next := (j + 1) % n
		buf.Triangles = append(buf.Triangles,
			[3]int{start, next, j},
			[3]int{end, last + j, last + next},
		)
	}
	return buf
}

// QuarterBend returns segments+1 points on a 90 degree arc that leaves
// start heading along dir1 and arrives heading along dir2. dir1 and dir2
// must be perpendicular unit vectors.
func QuarterBend(start, dir1, dir2 math3d.Vec3, radius float64, segments int) []math3d.Vec3 {
	mustSegments("bend segments", segments, 1)
	center := start.Add(dir2.Scale(radius))
	pts := make([]math3d.Vec3, 0, segments+1)
	for k := range segments + 1 {
		phi := math.Pi / 2 * float64(k) / float64(segments)
		p := center.
			Sub(dir2.Scale(radius * math.Cos(phi))).
			Add(dir1.Scale(radius * math.Sin(phi)))
		pts = append(pts, p)
	}
	return pts
}
