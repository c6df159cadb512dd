package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type RectSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type PhysicsSpec struct {
	Gravity        float64 `yaml:"gravity"`
	MoveImpulse    float64 `yaml:"move_impulse"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	VelocityDecay  float64 `yaml:"velocity_decay"`
	VelocityCutoff float64 `yaml:"velocity_cutoff"`
	AccelDecay     float64 `yaml:"accel_decay"`
	AccelCutoff    float64 `yaml:"accel_cutoff"`
}

// DirectionSpec is the animation entry for one facing: sheet row,
// frame count, cycle length in ticks and an optional atlas offset.
type DirectionSpec struct {
	Row    int       `yaml:"row"`
	Frames int       `yaml:"frames"`
	Cycle  int       `yaml:"cycle"`
	Offset PointSpec `yaml:"offset"`
}

type AnimationSpec struct {
	Reverse    bool                     `yaml:"reverse"`
	Directions map[string]DirectionSpec `yaml:"directions"`
}

type FrameSpec struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Sheet     string        `yaml:"sheet"`
	Spawn     PointSpec     `yaml:"spawn"`
	Collider  RectSpec      `yaml:"collider"`
	Frame     FrameSpec     `yaml:"frame"`
	Physics   PhysicsSpec   `yaml:"physics"`
	Animation AnimationSpec `yaml:"animation"`
}

// LoadSpec loads and unmarshals a yaml prefab spec by filename.
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

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
