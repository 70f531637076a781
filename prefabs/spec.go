package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerFile    = "player.yaml"
	CameraFile    = "camera.yaml"
	AimTargetFile = "aim_target.yaml"
	ArenaFile     = "arena.yaml"
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

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type TransformSpec struct {
	Position Vec3Spec `yaml:"position"`
	// Yaw is in degrees.
	Yaw float64 `yaml:"yaw"`
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	WalkSpeed float64       `yaml:"walk_speed"`
	RunSpeed  float64       `yaml:"run_speed"`
	JumpSpeed float64       `yaml:"jump_speed"`
	Gravity   float64       `yaml:"gravity"`
	AimHeight float64       `yaml:"aim_height"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Color     *YAMLColor    `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string   `yaml:"name"`
	Target     string   `yaml:"target"`
	Offset     Vec3Spec `yaml:"offset"`
	FovY       float64  `yaml:"fov_y"`
	Near       float64  `yaml:"near"`
	Far        float64  `yaml:"far"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Smoothness float64  `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AimTargetSpec struct {
	Name  string     `yaml:"name"`
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
	// TargetColor is used while a target is under the crosshair.
	TargetColor *YAMLColor `yaml:"target_color"`
}

func LoadAimTargetSpec() (*AimTargetSpec, error) {
	spec, err := LoadSpec[AimTargetSpec](AimTargetFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MinZ float64 `yaml:"min_z"`
	MaxX float64 `yaml:"max_x"`
	MaxZ float64 `yaml:"max_z"`
}

type TargetSpec struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

type ArenaSpec struct {
	Name        string       `yaml:"name"`
	FloorY      float64      `yaml:"floor_y"`
	Bounds      BoundsSpec   `yaml:"bounds"`
	Walls       []BoundsSpec `yaml:"walls"`
	Targets     []TargetSpec `yaml:"targets"`
	WallColor   *YAMLColor   `yaml:"wall_color"`
	TargetColor *YAMLColor   `yaml:"target_color"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// Or returns the decoded color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
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

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
