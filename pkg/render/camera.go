package render

import (
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// Camera orbits a target point. The world is Z-up; azimuth 0 looks at the
// target from +Y, the front of the door.
type Camera struct {
	Target    math3d.Vec3
	Distance  float64
	Azimuth   float64 // radians about Z
	Elevation float64 // radians above the XY plane

	FOV         float64 // vertical, radians
	AspectRatio float64
	Near        float64
	Far         float64

	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	vpDirty        bool
}

const maxElevation = math.Pi/2 - 0.01

// NewCamera creates a camera four meters in front of the origin.
func NewCamera() *Camera {
	return &Camera{
		Distance:    4000,
		Azimuth:     0.5,
		Elevation:   0.25,
		FOV:         math.Pi / 4,
		AspectRatio: 16.0 / 9.0,
		Near:        10,
		Far:         50000,
		viewDirty:   true,
		projDirty:   true,
	}
}

// Position returns the eye position.
func (c *Camera) Position() math3d.Vec3 {
	ce := math.Cos(c.Elevation)
	offset := math3d.V3(
		c.Distance*ce*math.Sin(c.Azimuth),
		c.Distance*ce*math.Cos(c.Azimuth),
		c.Distance*math.Sin(c.Elevation),
	)
	return c.Target.Add(offset)
}

// SetTarget moves the orbit center.
func (c *Camera) SetTarget(p math3d.Vec3) {
	c.Target = p
	c.viewDirty = true
}

// Orbit turns the camera about the target. Elevation is clamped short of
// the poles.
func (c *Camera) Orbit(dAzimuth, dElevation float64) {
	c.Azimuth += dAzimuth
	c.Elevation = max(-maxElevation, min(maxElevation, c.Elevation+dElevation))
	c.viewDirty = true
}

// Zoom scales the orbit distance by factor.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.SetDistance(c.Distance * factor)
}

// SetDistance sets the orbit distance, kept outside the near plane.
func (c *Camera) SetDistance(d float64) {
	c.Distance = max(c.Near*2, d)
	c.viewDirty = true
}

// SetAspectRatio sets width / height.
func (c *Camera) SetAspectRatio(aspect float64) {
	if aspect <= 0 {
		return
	}
	c.AspectRatio = aspect
	c.projDirty = true
}

// Frame aims at the center of the box lo..hi from far enough away that
// its bounding sphere fills the view.
func (c *Camera) Frame(lo, hi math3d.Vec3) {
	c.Target = lo.Add(hi).Scale(0.5)
	radius := hi.Sub(lo).Len() / 2 * 1.1
	fov := c.FOV
	if c.AspectRatio < 1 {
		fov = 2 * math.Atan(math.Tan(c.FOV/2)*c.AspectRatio)
	}
	c.Distance = max(c.Near*2, radius/math.Sin(fov/2))
	c.Far = max(c.Far, c.Distance+radius*2)
	c.viewDirty = true
	c.projDirty = true
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Position(), c.Target, math3d.Up())
		c.viewDirty = false
		c.vpDirty = true
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
		c.vpDirty = true
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns projection * view.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	if c.vpDirty {
		c.viewProjMatrix = proj.Mul(view)
		c.vpDirty = false
	}
	return c.viewProjMatrix
}

// WorldToScreen projects a world point onto a width x height screen.
func (c *Camera) WorldToScreen(p math3d.Vec3, width, height int) (x, y, depth float64, visible bool) {
	clip := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X + 1) * 0.5 * float64(width)
	y = (1 - ndc.Y) * 0.5 * float64(height)
	return x, y, ndc.Z, true
}
