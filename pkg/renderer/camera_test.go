package renderer

import (
	"testing"

	"github.com/df07/go-sky-raytracer/pkg/core"
)

const tolerance = 1e-5

func TestCameraGetRay_Corners(t *testing.T) {
	camera := NewCamera()

	tests := []struct {
		name     string
		u, v     float32
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"lower right", 1, 0, core.NewVec3(2, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)
			if !ray.Direction.ApproxEqual(tt.expected, tolerance) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if ray.Origin != camera.Origin() {
				t.Errorf("Ray origin %v should be the camera origin %v", ray.Origin, camera.Origin())
			}
		})
	}
}

func TestNewCameraFromConfig_MatchesFixedCamera(t *testing.T) {
	// 90 degree vertical FOV at aspect 2 spans the same plane as NewCamera
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	}
	configured := NewCameraFromConfig(config)
	fixed := NewCamera()

	for _, uv := range [][2]float32{{0, 0}, {0.25, 0.75}, {1, 1}} {
		got := configured.GetRay(uv[0], uv[1]).Direction
		expected := fixed.GetRay(uv[0], uv[1]).Direction
		if !got.ApproxEqual(expected, tolerance) {
			t.Errorf("GetRay(%v, %v): expected %v, got %v", uv[0], uv[1], expected, got)
		}
	}
}

func TestNewCameraFromConfig_LooksAtTarget(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(3, 2, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
	}
	camera := NewCameraFromConfig(config)

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != config.Center {
		t.Errorf("Expected origin %v, got %v", config.Center, ray.Origin)
	}

	forward := config.LookAt.Subtract(config.Center).Normalize()
	if got := ray.Direction.Normalize(); !got.ApproxEqual(forward, tolerance) {
		t.Errorf("Center ray should point at LookAt: expected %v, got %v", forward, got)
	}
}
