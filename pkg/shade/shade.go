// Package shade colors mesh buffers without a renderer's material system.
//
// Axis-aligned boxes use a fixed brightness per face. Everything else,
// and any part carrying a non-identity transform, is lit per triangle
// with a Blinn-Phong term evaluated on the triangle's world normal.
package shade

import (
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
	"github.com/taigrr/doorgeom/pkg/mesh"
)

// FaceTable holds one brightness factor per box face, indexed by mesh.Face.
type FaceTable [mesh.BoxFaceCount]float64

// DefaultFaceTable brightens the top and front faces and darkens the
// faces turned away from the viewer.
var DefaultFaceTable = FaceTable{
	mesh.FaceBottom: 0.52,
	mesh.FaceTop:    1.12,
	mesh.FaceFront:  0.98,
	mesh.FaceBack:   0.58,
	mesh.FaceLeft:   0.68,
	mesh.FaceRight:  0.85,
}

// Light holds the Blinn-Phong coefficients and directions.
type Light struct {
	Ambient   float64     `yaml:"ambient"`
	Diffuse   float64     `yaml:"diffuse"`
	Specular  float64     `yaml:"specular"`
	Shininess float64     `yaml:"shininess"`
	Direction math3d.Vec3 `yaml:"direction"` // toward the light
	View      math3d.Vec3 `yaml:"view"`      // toward the viewer
}

// DefaultLight returns the light used by every built-in preset.
func DefaultLight() Light {
	return Light{
		Ambient:   0.65,
		Diffuse:   0.40,
		Specular:  0.25,
		Shininess: 64,
		Direction: math3d.V3(0.3, 0.6, 0.5),
		View:      math3d.V3(0, 1, 0.3),
	}
}

// Intensity evaluates ambient + diffuse*max(0, n·L) + specular*max(0, n·H)^shininess
// for a unit normal n.
func (l Light) Intensity(n math3d.Vec3) float64 {
	ld := l.Direction.Normalize()
	h := ld.Add(l.View.Normalize()).Normalize()

	diff := math.Max(0, n.Dot(ld))
	spec := math.Pow(math.Max(0, n.Dot(h)), l.Shininess)
	return l.Ambient + l.Diffuse*diff + l.Specular*spec
}

// FlatBox colors a box buffer built by mesh.NewBox (or several of them
// appended) from the face table. Triangles 2f and 2f+1 of every box get
// base * table[f].
func FlatBox(b *mesh.Buffer, base mesh.Color, table FaceTable) {
	b.Colors = make([]mesh.Color, len(b.Triangles))
	for i := range b.Triangles {
		face := (i / 2) % mesh.BoxFaceCount
		b.Colors[i] = base.Shade(table[face])
	}
}

// Computed colors every triangle of b from its normal after applying xf.
// A nil xf means the buffer is already in world space.
func Computed(b *mesh.Buffer, xf *math3d.Mat4, base mesh.Color, light Light) {
	b.Colors = make([]mesh.Color, len(b.Triangles))
	for i := range b.Triangles {
		n := b.TriangleNormal(i)
		if xf != nil {
			n = xf.MulVec3Dir(n).Normalize()
		}
		b.Colors[i] = base.Shade(light.Intensity(n))
	}
}
