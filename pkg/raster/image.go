package raster

import (
	"fmt"
	"image"
)

// Image is a width x height raster of pixels stored in row-major order
type Image[P Pixel] struct {
	width  int
	height int
	pixels []P
}

// NewImage creates an image filled with zero pixels
func NewImage[P Pixel](width, height int) *Image[P] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: invalid image size %dx%d", width, height))
	}
	return &Image[P]{
		width:  width,
		height: height,
		pixels: make([]P, width*height),
	}
}

func (img *Image[P]) Width() int  { return img.width }
func (img *Image[P]) Height() int { return img.height }

// Format returns the channel layout of the image's pixels
func (img *Image[P]) Format() Format {
	return FormatOf[P]()
}

// Bounds returns the pixel rectangle covered by the image
func (img *Image[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// PixelAt returns a pointer to the pixel at (x, y), or false if (x, y) is
// outside the image.
func (img *Image[P]) PixelAt(x, y int) (*P, bool) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return nil, false
	}
	return &img.pixels[x+y*img.width], true
}

// Set writes p at (x, y) and reports whether (x, y) was in bounds
func (img *Image[P]) Set(x, y int, p P) bool {
	slot, ok := img.PixelAt(x, y)
	if !ok {
		return false
	}
	*slot = p
	return true
}

// RawBuffer flattens the image into its channel bytes, row by row.
// The result has Width()*Height()*Format().Channels() bytes.
func (img *Image[P]) RawBuffer() []byte {
	buf := make([]byte, 0, len(img.pixels)*img.Format().Channels())
	for _, p := range img.pixels {
		buf = append(buf, p.Values()...)
	}
	return buf
}
