package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-sky-raytracer/pkg/raster"
)

var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width    int           `json:"width"`    // Image width in pixels
	Height   int           `json:"height"`   // Image height in pixels
	Format   raster.Format `json:"format"`   // Output pixel layout ("rgb" or "rgba")
	Workers  int           `json:"workers"`  // 1 renders sequentially, 0 uses one worker per CPU
	TileSize int           `json:"tileSize"` // Edge length of the square tiles handed to workers

	// FlipRaster writes logical pixel (x, y) at (width-1-x, height-1-y):
	// v grows upwards in the output image and u grows right to left.
	FlipRaster bool `json:"flipRaster"`
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      200,
		Height:     100,
		Format:     raster.FormatRGB8,
		Workers:    1,
		TileSize:   32,
		FlipRaster: true,
	}
}

// Validate reports the first problem with the config, if any
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	case c.Format != raster.FormatRGB8 && c.Format != raster.FormatRGBA8:
		return fmt.Errorf("%w: unsupported format %v", ErrInvalidConfig, c.Format)
	}
	return nil
}

// LoadConfig reads a JSON config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	return config, config.Validate()
}
