package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var builtinScenes = map[string]func() *Scene{
	"default": NewDefaultScene,
	"sunset":  NewSunsetScene,
	"tilted":  NewTiltedScene,
}

// NewScene creates the built-in scene with the given name
func NewScene(name string) (*Scene, error) {
	create, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return create(), nil
}

// ListScenes returns every built-in scene sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, create := range builtinScenes {
		s := create()
		scenes = append(scenes, SceneInfo{Name: s.Name, Description: s.Description})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes
}
