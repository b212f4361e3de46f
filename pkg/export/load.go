package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/df07/go-sky-raytracer/pkg/raster"
)

// LoadPNG reads a PNG file back into a raw buffer with the given layout.
// Loading as RGB8 drops the alpha channel.
func LoadPNG(path string, format raster.Format) ([]byte, int, int, error) {
	if format != raster.FormatRGB8 && format != raster.FormatRGBA8 {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	img, err := gg.LoadPNG(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to load PNG %s: %w", path, err)
	}

	return FromImage(img, format), img.Bounds().Dx(), img.Bounds().Dy(), nil
}

// FromImage flattens any image into raw bytes with the given layout
func FromImage(img image.Image, format raster.Format) []byte {
	bounds := img.Bounds()
	channels := format.Channels()
	buf := make([]byte, 0, bounds.Dx()*bounds.Dy()*channels)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf = append(buf, c.R, c.G, c.B)
			if channels == 4 {
				buf = append(buf, c.A)
			}
		}
	}

	return buf
}
