package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/boxbounce/prefabs"
)

func TestLoadScenarioHeadOn(t *testing.T) {
	bodies, err := LoadScenario("head_on", testSpec())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	a, b := bodies[0], bodies[1]
	if a.Pos.X != 100 || a.Pos.Y != 100 || a.Vel.X != 5 {
		t.Fatalf("unexpected first body %+v", a)
	}
	if b.Pos.X != 115 || b.Vel.X != -5 {
		t.Fatalf("unexpected second body %+v", b)
	}
	if a.Size.X != 30 || a.Size.Y != 30 || a.Mass != 1 {
		t.Fatalf("defaults not applied: %+v", a)
	}
	if a.Fill.R != 220 || a.Fill.G != 60 || a.Fill.B != 60 || a.Fill.A != 255 {
		t.Fatalf("unexpected fill %v", a.Fill)
	}
}

func TestLoadScenarioFloorBounce(t *testing.T) {
	bodies, err := LoadScenario("scripts/floor_bounce.tengo", testSpec())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(bodies))
	}
	if bodies[0].Pos.X != 400 || bodies[0].Pos.Y != 595 || bodies[0].Vel.Y != 3 {
		t.Fatalf("unexpected body %+v", bodies[0])
	}
}

func TestLoadScenarioStackAndRain(t *testing.T) {
	stack, err := LoadScenario("stack", testSpec())
	if err != nil {
		t.Fatalf("stack: %v", err)
	}
	if len(stack) != 6 {
		t.Fatalf("expected 6 stacked bodies, got %d", len(stack))
	}
	if stack[0].Pos.Y != 555 || stack[5].Pos.Y != 330 {
		t.Fatalf("unexpected stack heights %v and %v", stack[0].Pos.Y, stack[5].Pos.Y)
	}

	rain, err := LoadScenario("rain", testSpec())
	if err != nil {
		t.Fatalf("rain: %v", err)
	}
	if len(rain) != 13 {
		t.Fatalf("expected 13 rain bodies, got %d", len(rain))
	}
	for i, b := range rain {
		if b.Vel.X < -2 || b.Vel.X > 2 || b.Pos.Y != 30 {
			t.Fatalf("rain body %d out of range: %+v", i, b)
		}
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := LoadScenario("does_not_exist", testSpec()); err == nil {
		t.Fatalf("expected error for missing script")
	}
	if _, err := LoadScenario("head_on", nil); !errors.Is(err, ErrScenario) {
		t.Fatalf("expected ErrScenario for nil spec, got %v", err)
	}
}

func TestRunScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "syntax", src: `bodies := [`, want: ""},
		{name: "no bodies", src: `x := 1`, want: "does not define"},
		{name: "not array", src: `bodies := 5`, want: "must be an array"},
		{name: "not map", src: `bodies := [1]`, want: "must be a map"},
		{name: "missing y", src: `bodies := [{x: 1}]`, want: `missing "y"`},
		{name: "bad type", src: `bodies := [{x: "a", y: 1}]`, want: "expected number"},
		{name: "bad channel", src: `bodies := [{x: 1, y: 1, r: 300}]`, want: "r out of range"},
		{name: "bad mass", src: `bodies := [{x: 1, y: 1, mass: 0}]`, want: "mass must be positive"},
		{name: "bad size", src: `bodies := [{x: 1, y: 1, w: -3}]`, want: "size must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunScenario([]byte(tt.src), testSpec())
			if !errors.Is(err, ErrScenario) {
				t.Fatalf("expected ErrScenario, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestRunScenarioOverrides(t *testing.T) {
	src := `bodies := [{x: 10.5, y: 20, w: 10, h: 40, mass: 2, vx: -1.5}]`
	bodies, err := RunScenario([]byte(src), testSpec())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b := bodies[0]
	if b.Pos.X != 10.5 || b.Size.X != 10 || b.Size.Y != 40 || b.Mass != 2 || b.Vel.X != -1.5 {
		t.Fatalf("unexpected body %+v", b)
	}
	if b.Fill.R != 255 || b.Fill.G != 255 || b.Fill.B != 255 {
		t.Fatalf("missing channels should default to white, got %v", b.Fill)
	}
}

func TestPopulateScenario(t *testing.T) {
	bodies, err := Populate(testSpec(), edgeRand{}, "head_on")
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected scenario bodies, got %d", len(bodies))
	}

	if _, err := Populate(testSpec(), edgeRand{}, "missing_scenario"); err == nil {
		t.Fatalf("expected error for unknown scenario")
	}
}

func TestEmbeddedScenariosLoad(t *testing.T) {
	names, err := prefabs.ScriptNames()
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("no embedded scenarios")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			bodies, err := LoadScenario(name, testSpec())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(bodies) == 0 {
				t.Fatalf("scenario %s has no bodies", name)
			}
		})
	}
}
