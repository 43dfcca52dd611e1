package render

import (
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// ColoredMesh is a triangle mesh with one color per triangle.
// Triangles wind counter-clockwise seen from outside.
type ColoredMesh interface {
	VertexCount() int
	TriangleCount() int
	Vertex(i int) math3d.Vec3
	Triangle(i int) [3]int
	TriangleColor(i int) Color
}

// BoundedMesh is a ColoredMesh that can report its bounds for culling.
type BoundedMesh interface {
	ColoredMesh
	Bounds() (lo, hi math3d.Vec3)
}

// CullingStats counts meshes tested against the frustum since the last reset.
type CullingStats struct {
	MeshesTested int
	MeshesCulled int
	MeshesDrawn  int
}

// Rasterizer fills triangles into a framebuffer with a depth buffer.
type Rasterizer struct {
	camera       *Camera
	fb           *Framebuffer
	zbuffer      []float64
	CullingStats CullingStats
	// DisableBackfaceCulling draws both sides of every triangle.
	DisableBackfaceCulling bool
}

// NewRasterizer creates a rasterizer drawing into fb through camera.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{camera: camera, fb: fb}
	r.Resize()
	return r
}

// Resize matches the depth buffer to the framebuffer.
func (r *Rasterizer) Resize() {
	if len(r.zbuffer) != r.fb.Width*r.fb.Height {
		r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
	}
	r.ClearDepth()
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int { return r.fb.Width }

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int { return r.fb.Height }

// ClearDepth resets the depth buffer. Call it once per frame.
func (r *Rasterizer) ClearDepth() {
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	r.zbuffer[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

func (r *Rasterizer) getDepth(x, y int) float64 {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return math.MaxFloat64
	}
	return r.zbuffer[y*r.Width()+x]
}

func (r *Rasterizer) setDepth(x, y int, z float64) {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return
	}
	r.zbuffer[y*r.Width()+x] = z
}

// screenVertex is a vertex after projection. Y grows downward.
type screenVertex struct {
	X, Y, Z float64
}

// project maps a world point to the screen. ok is false behind the eye.
func (r *Rasterizer) project(vp math3d.Mat4, p math3d.Vec3) (screenVertex, bool) {
	clip := vp.MulVec4(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return screenVertex{}, false
	}
	inv := 1 / clip.W
	return screenVertex{
		X: (clip.X*inv + 1) * 0.5 * float64(r.Width()),
		Y: (1 - clip.Y*inv) * 0.5 * float64(r.Height()),
		Z: clip.Z * inv,
	}, true
}

// edgeCoeffs returns A, B, C with edge(x, y) = A*x + B*y + C.
func edgeCoeffs(x0, y0, x1, y1 float64) (a, b, c float64) {
	return y0 - y1, x1 - x0, x0*y1 - x1*y0
}

// blend composites the straight-alpha color src over dst. The result is opaque.
func blend(src, dst Color) Color {
	a := uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return Color{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}

// DrawTriangle fills a world-space triangle with a flat color. Colors
// with alpha below 255 are blended over the framebuffer and leave the
// depth buffer untouched, so draw them after everything opaque.
func (r *Rasterizer) DrawTriangle(v0, v1, v2 math3d.Vec3, c Color) {
	r.drawTriangle(r.camera.ViewProjectionMatrix(), v0, v1, v2, c)
}

func (r *Rasterizer) drawTriangle(vp math3d.Mat4, v0, v1, v2 math3d.Vec3, c Color) {
	s0, ok0 := r.project(vp, v0)
	s1, ok1 := r.project(vp, v1)
	s2, ok2 := r.project(vp, v2)
	if !ok0 || !ok1 || !ok2 {
		return
	}

	// Counter-clockwise in world space turns clockwise once Y points down.
	area := (s1.X-s0.X)*(s2.Y-s0.Y) - (s1.Y-s0.Y)*(s2.X-s0.X)
	if area == 0 || (area > 0 && !r.DisableBackfaceCulling) {
		return
	}
	if area > 0 {
		s1, s2 = s2, s1
		area = -area
	}

	minX := max(0, int(math.Floor(min(s0.X, s1.X, s2.X))))
	maxX := min(r.Width()-1, int(math.Ceil(max(s0.X, s1.X, s2.X))))
	minY := max(0, int(math.Floor(min(s0.Y, s1.Y, s2.Y))))
	maxY := min(r.Height()-1, int(math.Ceil(max(s0.Y, s1.Y, s2.Y))))
	if minX > maxX || minY > maxY {
		return
	}

	// Edge i is opposite vertex i; all three are <= 0 inside.
	a0, b0, c0 := edgeCoeffs(s1.X, s1.Y, s2.X, s2.Y)
	a1, b1, c1 := edgeCoeffs(s2.X, s2.Y, s0.X, s0.Y)
	a2, b2, c2 := edgeCoeffs(s0.X, s0.Y, s1.X, s1.Y)
	inv := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		px := float64(minX) + 0.5
		w0 := a0*px + b0*py + c0
		w1 := a1*px + b1*py + c1
		w2 := a2*px + b2*py + c2
		for x := minX; x <= maxX; x++ {
			if w0 <= 0 && w1 <= 0 && w2 <= 0 {
				z := (w0*s0.Z + w1*s1.Z + w2*s2.Z) * inv
				if z < r.getDepth(x, y) {
					if c.A == 255 {
						r.setDepth(x, y, z)
						r.fb.SetPixel(x, y, c)
					} else {
						r.fb.SetPixel(x, y, blend(c, r.fb.GetPixel(x, y)))
					}
				}
			}
			w0 += a0
			w1 += a1
			w2 += a2
		}
	}
}

// visible tests mesh bounds against the view frustum and updates the stats.
func (r *Rasterizer) visible(m ColoredMesh, xf math3d.Mat4) bool {
	bm, ok := m.(BoundedMesh)
	if !ok {
		return true
	}
	r.CullingStats.MeshesTested++
	lo, hi := bm.Bounds()
	box := AABB{Min: lo, Max: hi}.Transform(xf)
	if !NewFrustumFromMatrix(r.camera.ViewProjectionMatrix()).IntersectAABB(box) {
		r.CullingStats.MeshesCulled++
		return false
	}
	r.CullingStats.MeshesDrawn++
	return true
}

// DrawMesh fills every triangle of m after applying xf.
func (r *Rasterizer) DrawMesh(m ColoredMesh, xf math3d.Mat4) {
	if !r.visible(m, xf) {
		return
	}
	vp := r.camera.ViewProjectionMatrix()
	for i := range m.TriangleCount() {
		t := m.Triangle(i)
		r.drawTriangle(vp,
			xf.MulVec3(m.Vertex(t[0])),
			xf.MulVec3(m.Vertex(t[1])),
			xf.MulVec3(m.Vertex(t[2])),
			m.TriangleColor(i))
	}
}

// DrawMeshWireframe draws the triangle edges of m in one color.
func (r *Rasterizer) DrawMeshWireframe(m ColoredMesh, xf math3d.Mat4, c Color) {
	if !r.visible(m, xf) {
		return
	}
	vp := r.camera.ViewProjectionMatrix()
	for i := range m.TriangleCount() {
		t := m.Triangle(i)
		v := [3]math3d.Vec3{
			xf.MulVec3(m.Vertex(t[0])),
			xf.MulVec3(m.Vertex(t[1])),
			xf.MulVec3(m.Vertex(t[2])),
		}
		for j := range 3 {
			r.drawLine3D(vp, v[j], v[(j+1)%3], c)
		}
	}
}

func (r *Rasterizer) drawLine3D(vp math3d.Mat4, a, b math3d.Vec3, c Color) {
	sa, okA := r.project(vp, a)
	sb, okB := r.project(vp, b)
	if !okA || !okB {
		return
	}
	r.fb.DrawLine(int(sa.X), int(sa.Y), int(sb.X), int(sb.Y), c)
}
