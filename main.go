package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sky-raytracer/pkg/export"
	"github.com/df07/go-sky-raytracer/pkg/raster"
	"github.com/df07/go-sky-raytracer/pkg/renderer"
	"github.com/df07/go-sky-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	configPath string
	outputPath string
	width      int
	height     int
	format     string
	workers    int
	tileSize   int
	flip       bool
	help       bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	defaults := renderer.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name (see -help for the list)")
	fs.StringVar(&opts.configPath, "config", "", "Optional JSON render config; flags set explicitly override it")
	fs.StringVar(&opts.outputPath, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	fs.StringVar(&opts.format, "format", defaults.Format.String(), "Pixel format: 'rgb' or 'rgba'")
	fs.IntVar(&opts.workers, "workers", defaults.Workers, "Render workers (1 = sequential, 0 = one per CPU)")
	fs.IntVar(&opts.tileSize, "tile", defaults.TileSize, "Tile size in pixels for parallel rendering")
	fs.BoolVar(&opts.flip, "flip", defaults.FlipRaster, "Write pixel (x, y) at (width-1-x, height-1-y)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	err := fs.Parse(args)
	return opts, fs, err
}

// buildConfig merges defaults, the optional config file and explicit flags
func buildConfig(opts options, fs *flag.FlagSet) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := renderer.LoadConfig(opts.configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Width = opts.width
		case "height":
			config.Height = opts.height
		case "workers":
			config.Workers = opts.workers
		case "tile":
			config.TileSize = opts.tileSize
		case "flip":
			config.FlipRaster = opts.flip
		case "format":
			var format raster.Format
			if format, err = raster.ParseFormat(opts.format); err == nil {
				config.Format = format
			}
		}
	})
	if err != nil {
		return config, err
	}

	return config, config.Validate()
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Sky Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -output is set")
}

func outputPath(opts options, sceneName string) string {
	if opts.outputPath != "" {
		return opts.outputPath
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func run(ctx context.Context, args []string) error {
	opts, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(fs)
		return nil
	}

	config, err := buildConfig(opts, fs)
	if err != nil {
		return err
	}

	selectedScene, err := scene.NewScene(opts.sceneName)
	if err != nil {
		return err
	}
	log.Printf("Rendering scene %q at %dx%d (%v, %d workers)",
		selectedScene.Name, config.Width, config.Height, config.Format, config.Workers)

	buf, stats, err := renderer.Render(ctx, selectedScene, config)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	log.Printf("Render completed in %v (%d pixels, %d tiles, %.0f pixels/s)",
		stats.Duration, stats.TotalPixels, stats.Tiles, stats.PixelsPerSecond())

	filename := outputPath(opts, selectedScene.Name)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := export.SavePNG(filename, buf, config.Width, config.Height, config.Format); err != nil {
		return err
	}

	log.Printf("Render saved as %s", filename)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Error: %v", err)
	}
}
