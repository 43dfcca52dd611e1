package scene

import "github.com/taigrr/doorgeom/pkg/math3d"

// OpenAngle is the swing of a fully opened leaf, in degrees.
const OpenAngle = 90.0

// OpenTransform is a rigid rotation about a vertical pivot line at
// (PivotX, PivotY), followed by a shift of DepthOffset along Y.
// A nil *OpenTransform is the identity.
type OpenTransform struct {
	Degrees     float64
	PivotX      float64
	PivotY      float64
	DepthOffset float64
}

// Matrix returns the transform as a matrix.
func (o *OpenTransform) Matrix() math3d.Mat4 {
	if o == nil {
		return math3d.Identity()
	}
	rot := math3d.RotateAbout(math3d.V3(o.PivotX, o.PivotY, 0), math3d.Up(), math3d.Radians(o.Degrees))
	if o.DepthOffset == 0 {
		return rot
	}
	return math3d.Translate(math3d.V3(0, o.DepthOffset, 0)).Mul(rot)
}

// Apply transforms a point.
func (o *OpenTransform) Apply(p math3d.Vec3) math3d.Vec3 {
	if o == nil {
		return p
	}
	return o.Matrix().MulVec3(p)
}
