package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/boxbounce/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const WorldSpecFile = "world.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// WorldSpec configures the world, the spawned bodies and collision sound.
type WorldSpec struct {
	Title      string    `yaml:"title"`
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	FrameRate  int       `yaml:"frame_rate"`
	Gravity    float64   `yaml:"gravity"`
	TimeStep   float64   `yaml:"time_step"`
	Background YAMLColor `yaml:"background"`
	Bodies     BodySpec  `yaml:"bodies"`
	Sound      SoundSpec `yaml:"sound"`
}

type BodySpec struct {
	Count            int       `yaml:"count"`
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	Mass             float64   `yaml:"mass"`
	VelocityX        IntRange  `yaml:"velocity_x"`
	VelocityY        IntRange  `yaml:"velocity_y"`
	Color            IntRange  `yaml:"color"`
	Outline          YAMLColor `yaml:"outline"`
	OutlineThickness float64   `yaml:"outline_thickness"`
}

type SoundSpec struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	Frequency float64 `yaml:"frequency"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) valid() bool {
	return r.Min <= r.Max
}

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := LoadSpecInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// LoadSpecInto decodes filename over spec. Keys missing from the file keep
// the values spec already holds.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// LoadWorldSpec loads world.yaml, preferring the on-disk copy, over
// DefaultWorldSpec and validates the result.
func LoadWorldSpec() (*WorldSpec, error) {
	spec := DefaultWorldSpec()
	if err := LoadSpecInto(WorldSpecFile, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WorldSpecFile, err)
	}
	return &spec, nil
}

// DefaultWorldSpec is the world used for every key world.yaml leaves out.
func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		Title:      "boxbounce",
		Width:      common.BaseWidth,
		Height:     common.BaseHeight,
		FrameRate:  common.FrameRate,
		Gravity:    common.Gravity,
		TimeStep:   common.TimeStep,
		Background: YAMLColor{Color: colornames.Black},
		Bodies: BodySpec{
			Count:            common.BodyCount,
			Width:            common.BodySize,
			Height:           common.BodySize,
			Mass:             1,
			VelocityX:        IntRange{Min: -10, Max: 10},
			VelocityY:        IntRange{Min: -2, Max: 2},
			Color:            IntRange{Min: 0, Max: 255},
			Outline:          YAMLColor{Color: colornames.Black},
			OutlineThickness: 1,
		},
		Sound: SoundSpec{
			Enabled:   true,
			Volume:    0.5,
			Frequency: 660,
		},
	}
}

// Validate reports the first field that cannot produce a valid world.
func (s *WorldSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidSpec, s.Width, s.Height)
	case s.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d", ErrInvalidSpec, s.FrameRate)
	case s.TimeStep <= 0:
		return fmt.Errorf("%w: time_step %g", ErrInvalidSpec, s.TimeStep)
	case s.Bodies.Count < 0:
		return fmt.Errorf("%w: bodies.count %d", ErrInvalidSpec, s.Bodies.Count)
	case s.Bodies.Width <= 0 || s.Bodies.Height <= 0:
		return fmt.Errorf("%w: body size %gx%g", ErrInvalidSpec, s.Bodies.Width, s.Bodies.Height)
	case s.Bodies.Width >= s.Width || s.Bodies.Height >= s.Height:
		return fmt.Errorf("%w: body %gx%g does not fit world %gx%g", ErrInvalidSpec, s.Bodies.Width, s.Bodies.Height, s.Width, s.Height)
	case s.Bodies.Mass <= 0:
		return fmt.Errorf("%w: bodies.mass %g", ErrInvalidSpec, s.Bodies.Mass)
	case !s.Bodies.VelocityX.valid():
		return fmt.Errorf("%w: bodies.velocity_x %d > %d", ErrInvalidSpec, s.Bodies.VelocityX.Min, s.Bodies.VelocityX.Max)
	case !s.Bodies.VelocityY.valid():
		return fmt.Errorf("%w: bodies.velocity_y %d > %d", ErrInvalidSpec, s.Bodies.VelocityY.Min, s.Bodies.VelocityY.Max)
	case !s.Bodies.Color.valid() || s.Bodies.Color.Min < 0 || s.Bodies.Color.Max > 255:
		return fmt.Errorf("%w: bodies.color [%d, %d]", ErrInvalidSpec, s.Bodies.Color.Min, s.Bodies.Color.Max)
	case s.Sound.Volume < 0 || s.Sound.Volume > 1:
		return fmt.Errorf("%w: sound.volume %g", ErrInvalidSpec, s.Sound.Volume)
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
