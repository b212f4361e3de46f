package renderer

import (
	"context"

	"github.com/df07/go-sky-raytracer/pkg/raster"
)

// Render renders scene with the pixel layout named by config.Format and
// returns the flattened pixel bytes ready for an encoder
func Render(ctx context.Context, scene Scene, config Config) ([]byte, RenderStats, error) {
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	switch config.Format {
	case raster.FormatRGBA8:
		return renderRaw[raster.RGBA](ctx, scene, config)
	default:
		return renderRaw[raster.RGB](ctx, scene, config)
	}
}

func renderRaw[P raster.Pixel](ctx context.Context, scene Scene, config Config) ([]byte, RenderStats, error) {
	img, stats, err := NewRaytracer[P](scene, config).RenderPass(ctx)
	if err != nil {
		return nil, stats, err
	}
	return img.RawBuffer(), stats, nil
}
