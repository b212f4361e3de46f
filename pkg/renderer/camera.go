package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sky-raytracer/pkg/core"
)

// Camera generates rays through an axis-aligned image plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// CameraConfig describes a positioned camera
type CameraConfig struct {
	Center      core.Vec3 `json:"center"`      // Camera position
	LookAt      core.Vec3 `json:"lookAt"`      // Point the camera looks at
	Up          core.Vec3 `json:"up"`          // Up direction
	VFov        float32   `json:"vfov"`        // Vertical field of view in degrees
	AspectRatio float32   `json:"aspectRatio"` // Width / height of the image plane
}

// NewCamera creates the fixed 2:1 camera at the origin looking down -Z
func NewCamera() *Camera {
	return &Camera{
		origin:          core.NewVec3(0, 0, 0),
		lowerLeftCorner: core.NewVec3(-2, -1, -1),
		horizontal:      core.NewVec3(4, 0, 0),
		vertical:        core.NewVec3(0, 2, 0),
	}
}

// NewCameraFromConfig creates a camera whose image plane sits one unit in
// front of Center, facing LookAt
func NewCameraFromConfig(config CameraConfig) *Camera {
	theta := mgl32.DegToRad(config.VFov)
	halfHeight := math32.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	center := config.Center.Mgl()
	w := center.Sub(config.LookAt.Mgl()).Normalize()
	u := config.Up.Mgl().Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeft := center.Sub(u.Mul(halfWidth)).Sub(v.Mul(halfHeight)).Sub(w)

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: core.FromMgl(lowerLeft),
		horizontal:      core.FromMgl(u.Mul(2 * halfWidth)),
		vertical:        core.FromMgl(v.Mul(2 * halfHeight)),
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1
func (c *Camera) GetRay(u, v float32) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

func (c *Camera) Origin() core.Vec3 { return c.origin }
