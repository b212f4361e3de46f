package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-sky-raytracer/pkg/core"
	"github.com/df07/go-sky-raytracer/pkg/raster"
)

var ErrPixelOutOfBounds = errors.New("pixel out of bounds")

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackground() Background
}

// Raytracer shades one camera ray per pixel into an image of P pixels
type Raytracer[P raster.Pixel] struct {
	scene  Scene
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer[P raster.Pixel](scene Scene, config Config) *Raytracer[P] {
	return &Raytracer[P]{
		scene:  scene,
		config: config,
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer[P]) SetConfig(config Config) {
	rt.config = config
}

// RayColor returns the color seen along a ray. Nothing is intersected, so
// every ray sees the background.
func (rt *Raytracer[P]) RayColor(r core.Ray) core.Vec3 {
	return rt.scene.GetBackground().Color(r)
}

// rasterPosition maps logical pixel (x, y) to its position in the image
func (rt *Raytracer[P]) rasterPosition(x, y int) (int, int) {
	if rt.config.FlipRaster {
		return rt.config.Width - 1 - x, rt.config.Height - 1 - y
	}
	return x, y
}

// RenderBounds shades every logical pixel inside bounds into img
func (rt *Raytracer[P]) RenderBounds(img *raster.Image[P], bounds image.Rectangle) (RenderStats, error) {
	camera := rt.scene.GetCamera()
	width := float32(rt.config.Width)
	height := float32(rt.config.Height)

	stats := RenderStats{Tiles: 1}
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			u := float32(i) / width
			v := float32(j) / height
			color := rt.RayColor(camera.GetRay(u, v))

			x, y := rt.rasterPosition(i, j)
			pixel, ok := img.PixelAt(x, y)
			if !ok {
				return stats, fmt.Errorf("%w: (%d, %d) in %dx%d image", ErrPixelOutOfBounds, x, y, img.Width(), img.Height())
			}
			*pixel = ColorToPixel[P](color)
			stats.TotalPixels++
		}
	}

	return stats, nil
}

// RenderPass renders the whole image, in parallel when more than one
// worker is configured
func (rt *Raytracer[P]) RenderPass(ctx context.Context) (*raster.Image[P], RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	img := raster.NewImage[P](rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)

	var stats RenderStats
	var err error
	if rt.config.Workers == 1 {
		stats, err = rt.renderSequential(ctx, img, tiles)
	} else {
		stats, err = rt.renderParallel(ctx, img, tiles)
	}
	stats.Duration = time.Since(startTime)
	if err != nil {
		return nil, stats, err
	}

	return img, stats, nil
}

func (rt *Raytracer[P]) renderSequential(ctx context.Context, img *raster.Image[P], tiles []*Tile) (RenderStats, error) {
	stats := RenderStats{Workers: 1}
	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		tileStats, err := rt.RenderBounds(img, tile.Bounds)
		stats.Merge(tileStats)
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (rt *Raytracer[P]) renderParallel(ctx context.Context, img *raster.Image[P], tiles []*Tile) (RenderStats, error) {
	pool := NewWorkerPool(ctx, rt, img, rt.config.Workers, len(tiles))
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	err := pool.Stop()

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}

	// Cancellation of the caller's context wins over a worker's wrapped error
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stats, ctxErr
	}
	return stats, err
}
