package export

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/df07/go-sky-raytracer/pkg/raster"
)

var (
	ErrBufferSize        = errors.New("buffer size does not match image dimensions")
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
)

// ToImage wraps a raw RGB8 or RGBA8 buffer in an NRGBA image.
// RGB8 pixels become fully opaque.
func ToImage(buf []byte, width, height int, format raster.Format) (*image.NRGBA, error) {
	if format != raster.FormatRGB8 && format != raster.FormatRGBA8 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrBufferSize, width, height)
	}
	channels := format.Channels()
	if len(buf) != width*height*channels {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d %v",
			ErrBufferSize, len(buf), width*height*channels, width, height, format)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if format == raster.FormatRGBA8 {
		copy(img.Pix, buf)
		return img, nil
	}

	for i := 0; i < width*height; i++ {
		src := buf[i*3 : i*3+3]
		dst := img.Pix[i*4 : i*4+4]
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 255
	}
	return img, nil
}

// SavePNG writes a raw pixel buffer to path as a PNG file
func SavePNG(path string, buf []byte, width, height int, format raster.Format) error {
	img, err := ToImage(buf, width, height, format)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}
