package prefabs

import (
	"fmt"

	"github.com/milk9111/boxbounce/ecs/component"
	"gopkg.in/yaml.v3"
)

// BodySnapshot is the serialized state of one body.
type BodySnapshot struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	VX     float64   `yaml:"vx"`
	VY     float64   `yaml:"vy"`
	Width  float64   `yaml:"w"`
	Height float64   `yaml:"h"`
	Mass   float64   `yaml:"mass"`
	Fill   YAMLColor `yaml:"fill"`
}

// Snapshot is a point-in-time dump of the body store.
type Snapshot struct {
	Frame  uint64         `yaml:"frame"`
	Bodies []BodySnapshot `yaml:"bodies"`
}

func NewSnapshot(frame uint64, bodies []component.Body) Snapshot {
	s := Snapshot{Frame: frame, Bodies: make([]BodySnapshot, 0, len(bodies))}
	for _, b := range bodies {
		s.Bodies = append(s.Bodies, BodySnapshot{
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			VX:     b.Vel.X,
			VY:     b.Vel.Y,
			Width:  b.Size.X,
			Height: b.Size.Y,
			Mass:   b.Mass,
			Fill:   YAMLColor{Color: b.Fill},
		})
	}
	return s
}

// MarshalSnapshot renders the body store as YAML.
func MarshalSnapshot(frame uint64, bodies []component.Body) ([]byte, error) {
	data, err := yaml.Marshal(NewSnapshot(frame, bodies))
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal snapshot: %w", err)
	}
	return data, nil
}
