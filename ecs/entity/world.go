package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs"
	"github.com/milk9111/boxbounce/ecs/component"
	"github.com/milk9111/boxbounce/ecs/system"
	"github.com/milk9111/boxbounce/prefabs"
)

// BuildWorld creates a world sized by spec with the physics systems
// registered. Bodies are added separately with Populate.
func BuildWorld(spec *prefabs.WorldSpec) *ecs.World {
	bounds := cp.BB{L: 0, B: 0, R: spec.Width, T: spec.Height}
	w := ecs.NewWorld(bounds, spec.Gravity, spec.TimeStep)
	system.AddPhysicsSystems(w)
	return w
}

// Populate produces the initial body store, from a scenario script when one
// is named and from the random source otherwise.
func Populate(spec *prefabs.WorldSpec, r Rand, scenario string) ([]component.Body, error) {
	if scenario != "" {
		return LoadScenario(scenario, spec)
	}
	return SpawnBodies(spec, r), nil
}
