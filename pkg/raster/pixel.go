package raster

import (
	"fmt"
	"strings"
)

// RGB is an opaque 8-bit pixel
type RGB struct {
	R, G, B uint8
}

// RGBA is an 8-bit pixel with an alpha channel
type RGBA struct {
	R, G, B, A uint8
}

// Values returns the channels in R, G, B order
func (p RGB) Values() []byte {
	return []byte{p.R, p.G, p.B}
}

// Values returns the channels in R, G, B, A order
func (p RGBA) Values() []byte {
	return []byte{p.R, p.G, p.B, p.A}
}

// Pixel is the closed set of pixel layouts an Image can hold.
// len(Values()) always equals the layout's channel count.
type Pixel interface {
	RGB | RGBA
	Values() []byte
}

// Format tags the channel layout of a raw pixel buffer
type Format int

const (
	FormatRGB8 Format = iota
	FormatRGBA8
)

// Channels returns the number of 8-bit channels per pixel
func (f Format) Channels() int {
	switch f {
	case FormatRGB8:
		return 3
	case FormatRGBA8:
		return 4
	default:
		panic(fmt.Sprintf("raster: unknown format %d", int(f)))
	}
}

func (f Format) String() string {
	switch f {
	case FormatRGB8:
		return "rgb"
	case FormatRGBA8:
		return "rgba"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "rgb" or "rgba" (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb", "rgb8":
		return FormatRGB8, nil
	case "rgba", "rgba8":
		return FormatRGBA8, nil
	}
	return 0, fmt.Errorf("unknown pixel format %q: expected rgb or rgba", s)
}

// FormatOf returns the format tag for pixel type P
func FormatOf[P Pixel]() Format {
	var zero P
	switch any(zero).(type) {
	case RGB:
		return FormatRGB8
	case RGBA:
		return FormatRGBA8
	}
	panic("raster: unreachable pixel type")
}

// FromColor builds a pixel of type P from 8-bit color channels.
// RGBA pixels are fully opaque.
func FromColor[P Pixel](r, g, b uint8) P {
	var p P
	switch q := any(&p).(type) {
	case *RGB:
		*q = RGB{R: r, G: g, B: b}
	case *RGBA:
		*q = RGBA{R: r, G: g, B: b, A: 255}
	}
	return p
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
