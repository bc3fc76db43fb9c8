package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boxbounce/ecs/component"
	"github.com/milk9111/boxbounce/prefabs"
)

var ErrScenario = errors.New("entity: invalid scenario")

// LoadScenario runs scripts/<name>.tengo and converts its global `bodies`
// array into bodies. Scripts see width, height, body_width and body_height.
// Entries need x and y; vx, vy, r, g, b, w, h and mass are optional.
func LoadScenario(name string, spec *prefabs.WorldSpec) ([]component.Body, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil world spec", ErrScenario)
	}
	scriptBytes, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return RunScenario(scriptBytes, spec)
}

// RunScenario evaluates scenario source against spec.
func RunScenario(src []byte, spec *prefabs.WorldSpec) ([]component.Body, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	globals := map[string]any{
		"width":       spec.Width,
		"height":      spec.Height,
		"body_width":  spec.Bodies.Width,
		"body_height": spec.Bodies.Height,
	}
	for k, v := range globals {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("%w: add %s: %v", ErrScenario, k, err)
		}
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenario, err)
	}

	raw := compiled.Get("bodies")
	if raw == nil || raw.IsUndefined() {
		return nil, fmt.Errorf("%w: script does not define 'bodies'", ErrScenario)
	}
	entries, ok := toAnySlice(raw.Value())
	if !ok {
		return nil, fmt.Errorf("%w: 'bodies' must be an array", ErrScenario)
	}

	bodies := make([]component.Body, 0, len(entries))
	for i, entry := range entries {
		m, ok := toStringAnyMap(entry)
		if !ok {
			return nil, fmt.Errorf("%w: body %d must be a map", ErrScenario, i)
		}
		b, err := decodeBody(m, spec)
		if err != nil {
			return nil, fmt.Errorf("%w: body %d: %v", ErrScenario, i, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func decodeBody(m map[string]any, spec *prefabs.WorldSpec) (component.Body, error) {
	var errs []error
	field := func(key string, def float64, required bool) float64 {
		v, present, err := toFloat(m[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		if !present {
			if required {
				errs = append(errs, fmt.Errorf("missing %q", key))
			}
			return def
		}
		return v
	}
	channel := func(key string) uint8 {
		v := field(key, 255, false)
		if v < 0 || v > 255 {
			errs = append(errs, fmt.Errorf("%s out of range: %g", key, v))
			return 0
		}
		return uint8(v)
	}

	pos := cp.Vector{X: field("x", 0, true), Y: field("y", 0, true)}
	vel := cp.Vector{X: field("vx", 0, false), Y: field("vy", 0, false)}
	w := field("w", spec.Bodies.Width, false)
	h := field("h", spec.Bodies.Height, false)
	mass := field("mass", spec.Bodies.Mass, false)
	fill := color.RGBA{R: channel("r"), G: channel("g"), B: channel("b"), A: 255}

	if w <= 0 || h <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive: %gx%g", w, h))
	}
	if mass <= 0 {
		errs = append(errs, fmt.Errorf("mass must be positive: %g", mass))
	}
	if err := errors.Join(errs...); err != nil {
		return component.Body{}, err
	}
	return NewBody(w, h, mass, pos, vel, fill), nil
}

func toFloat(v any) (float64, bool, error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case float64:
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("expected number, got %T", v)
	}
}

func toStringAnyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func toAnySlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	default:
		return nil, false
	}
}
