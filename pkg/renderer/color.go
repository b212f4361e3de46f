package renderer

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sky-raytracer/pkg/core"
	"github.com/df07/go-sky-raytracer/pkg/raster"
)

// ToByte maps a channel in [0,1] to [0,255]. Values outside [0,1] are not
// clamped and convert with Go's implementation-defined float to uint8 rules.
func ToByte(c float32) uint8 {
	return uint8(math32.Floor(255.99 * c))
}

// ColorToPixel converts a linear color to a pixel of type P
func ColorToPixel[P raster.Pixel](color core.Vec3) P {
	return raster.FromColor[P](ToByte(color.X()), ToByte(color.Y()), ToByte(color.Z()))
}
