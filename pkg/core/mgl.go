package core

import "github.com/go-gl/mathgl/mgl32"

// FromMgl converts an mgl32 vector into a Vec3
func FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mgl converts v into an mgl32 vector
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.x, v.y, v.z}
}
