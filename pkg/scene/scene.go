package scene

import (
	"github.com/df07/go-sky-raytracer/pkg/core"
	"github.com/df07/go-sky-raytracer/pkg/renderer"
)

// Scene pairs a camera with the sky it looks at
type Scene struct {
	Name         string
	Description  string
	Camera       *renderer.Camera
	CameraConfig *renderer.CameraConfig // nil when the fixed camera is used
	Background   renderer.Background
}

func (s *Scene) GetCamera() *renderer.Camera        { return s.Camera }
func (s *Scene) GetBackground() renderer.Background { return s.Background }

// NewDefaultScene creates the fixed camera under a white to sky blue gradient
func NewDefaultScene() *Scene {
	return &Scene{
		Name:        "default",
		Description: "Fixed camera, white horizon fading to sky blue",
		Camera:      renderer.NewCamera(),
		Background:  renderer.DefaultBackground(),
	}
}

// NewSunsetScene uses the fixed camera with warm horizon colors
func NewSunsetScene() *Scene {
	return &Scene{
		Name:        "sunset",
		Description: "Fixed camera, orange horizon fading to deep blue",
		Camera:      renderer.NewCamera(),
		Background: renderer.Background{
			Bottom: core.NewVec3(1.0, 0.55, 0.3),
			Top:    core.NewVec3(0.2, 0.25, 0.6),
		},
	}
}

// NewTiltedScene points a positioned camera up at the sky so that the
// gradient fills more of the frame with blue
func NewTiltedScene() *Scene {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0.6, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 2,
	}
	return &Scene{
		Name:         "tilted",
		Description:  "Camera tilted upwards, 60 degree field of view",
		Camera:       renderer.NewCameraFromConfig(config),
		CameraConfig: &config,
		Background:   renderer.DefaultBackground(),
	}
}
