package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Number of pixels shaded
	Tiles       int           // Number of tiles rendered
	Workers     int           // Number of workers used
	Duration    time.Duration // Wall time of the whole pass
}

// Merge adds the pixel and tile counts of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.Tiles += other.Tiles
}

// PixelsPerSecond returns the shading throughput of the pass
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}
