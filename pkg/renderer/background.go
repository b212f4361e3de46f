package renderer

import "github.com/df07/go-sky-raytracer/pkg/core"

var (
	White   = core.NewVec3(1.0, 1.0, 1.0)
	SkyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// Background is a vertical sky gradient
type Background struct {
	Bottom core.Vec3 `json:"bottom"` // Color for rays pointing straight down
	Top    core.Vec3 `json:"top"`    // Color for rays pointing straight up
}

// DefaultBackground fades from white at the horizon to sky blue overhead
func DefaultBackground() Background {
	return Background{Bottom: White, Top: SkyBlue}
}

// Color returns the gradient color for a ray based on its direction
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y() + 1.0)

	return b.Bottom.Lerp(b.Top, t)
}
