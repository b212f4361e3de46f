package core

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes v as a three element array
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float32{v.x, v.y, v.z})
}

// UnmarshalJSON decodes a three element array such as [0.5, 0.7, 1.0]
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var components []float32
	if err := json.Unmarshal(data, &components); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	if len(components) != 3 {
		return fmt.Errorf("vec3: expected 3 components, got %d", len(components))
	}
	*v = NewVec3(components[0], components[1], components[2])
	return nil
}
