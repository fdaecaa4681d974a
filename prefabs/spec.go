package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	CarFile    = "car.yaml"
	CameraFile = "camera.yaml"
	SceneFile  = "scene.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CarSpec struct {
	Name      string        `yaml:"name"`
	Tuning    TuningSpec    `yaml:"tuning"`
	Transform TransformSpec `yaml:"transform"`
	Parts     []PartSpec    `yaml:"parts"`
}

func LoadCarSpec() (*CarSpec, error) {
	spec, err := LoadSpec[CarSpec](CarFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// TuningSpec leaves zero fields to the builder's defaults.
type TuningSpec struct {
	Acceleration  float64 `yaml:"acceleration"`
	ReverseFactor float64 `yaml:"reverse_factor"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Friction      float64 `yaml:"friction"`
	TurnSpeed     float64 `yaml:"turn_speed"`
	BrakeFactor   float64 `yaml:"brake_factor"`
	DeadZone      float64 `yaml:"dead_zone"`
	SpeedScale    float64 `yaml:"speed_scale"`
}

type TransformSpec struct {
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
}

type PartSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Offset   Vec3Spec   `yaml:"offset"`
	Size     Vec3Spec   `yaml:"size"`
	Radius   float64    `yaml:"radius"`
	Segments int        `yaml:"segments"`
	RotZ     float64    `yaml:"rot_z"`
	Color    *YAMLColor `yaml:"color"`
	Emissive *YAMLColor `yaml:"emissive"`
}

type CameraSpec struct {
	Name       string   `yaml:"name"`
	Target     string   `yaml:"target"`
	Offset     Vec3Spec `yaml:"offset"`
	LookHeight float64  `yaml:"look_height"`
	Smoothing  float64  `yaml:"smoothing"`
	FOV        float64  `yaml:"fov"`
	Near       float64  `yaml:"near"`
	Far        float64  `yaml:"far"`
	Start      Vec3Spec `yaml:"start"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SceneSpec struct {
	ClearColor *YAMLColor `yaml:"clear_color"`
	Fog        FogSpec    `yaml:"fog"`
	Lights     LightsSpec `yaml:"lights"`
	Stars      StarsSpec  `yaml:"stars"`
	Ground     GroundSpec `yaml:"ground"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type FogSpec struct {
	Color *YAMLColor `yaml:"color"`
	Near  float64    `yaml:"near"`
	Far   float64    `yaml:"far"`
}

type LightSpec struct {
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  Vec3Spec   `yaml:"position"`
}

type LightsSpec struct {
	Ambient     LightSpec `yaml:"ambient"`
	Directional LightSpec `yaml:"directional"`
}

type StarsSpec struct {
	Count         int     `yaml:"count"`
	Radius        float64 `yaml:"radius"`
	SpreadXZ      float64 `yaml:"spread_xz"`
	MinY          float64 `yaml:"min_y"`
	RangeY        float64 `yaml:"range_y"`
	TwinkleChance float64 `yaml:"twinkle_chance"`
	MinOpacity    float64 `yaml:"min_opacity"`
}

type GroundSpec struct {
	GridSize     float64    `yaml:"grid_size"`
	Divisions    int        `yaml:"divisions"`
	CenterColor  *YAMLColor `yaml:"center_color"`
	LineColor    *YAMLColor `yaml:"line_color"`
	PlaneSize    float64    `yaml:"plane_size"`
	PlaneColor   *YAMLColor `yaml:"plane_color"`
	PlaneOpacity float64    `yaml:"plane_opacity"`
	PlaneY       float64    `yaml:"plane_y"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

// Or returns the decoded colour, or fallback when c was not set.
func (c *YAMLColor) Or(fallback color.NRGBA) color.NRGBA {
	if c == nil {
		return fallback
	}
	return c.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
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

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
