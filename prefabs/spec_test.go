package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/asib/platformer/obj"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	assert.Equal(t, "player", spec.Name)
	assert.NotEmpty(t, spec.Sheet)
	assert.Positive(t, spec.Frame.W)
	assert.Positive(t, spec.Frame.H)
	assert.Less(t, spec.Physics.VelocityDecay, 1.0)
	assert.Positive(t, spec.Physics.VelocityCutoff)

	// the shipped tuning must build a valid player outright
	_, err = spec.BuildPlayer(obj.TextureHandle{})
	require.NoError(t, err)
}

func TestShippedCadenceIsRegular(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	for name, d := range spec.Animation.Directions {
		require.Positive(t, d.Frames, "%s frame count", name)
		assert.Zerof(t, d.Cycle%d.Frames, "%s: cycle %d not divisible by %d frames", name, d.Cycle, d.Frames)
	}
}

func specFixture(t *testing.T) *PlayerSpec {
	t.Helper()
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	// deep-copy the direction table so edits stay local to the test
	dirs := make(map[string]DirectionSpec, len(spec.Animation.Directions))
	for k, v := range spec.Animation.Directions {
		dirs[k] = v
	}
	spec.Animation.Directions = dirs
	return spec
}

func TestBuildAnimationMissingDirection(t *testing.T) {
	spec := specFixture(t)
	delete(spec.Animation.Directions, "down")

	_, err := spec.BuildAnimation()
	assert.ErrorContains(t, err, `missing direction "down"`)
}

func TestBuildAnimationUnknownDirection(t *testing.T) {
	spec := specFixture(t)
	spec.Animation.Directions["sideways"] = DirectionSpec{Row: 1, Frames: 1, Cycle: 30}

	_, err := spec.BuildAnimation()
	assert.ErrorContains(t, err, `unknown direction "sideways"`)
}

func TestBuildAnimationRejectsZeroEntries(t *testing.T) {
	spec := specFixture(t)
	spec.Animation.Directions["left"] = DirectionSpec{Row: 4, Frames: 0, Cycle: 30}

	_, err := spec.BuildAnimation()
	assert.Error(t, err)
}

func TestSpecYAMLShape(t *testing.T) {
	var spec PlayerSpec
	err := yaml.Unmarshal([]byte(`
name: test
sheet: test.png
spawn: {x: 1, y: 2}
collider: {x: 3, y: 4, w: 5, h: 6}
frame: {w: 7, h: 8}
physics:
  gravity: 0.5
  jump_velocity: -9.5
animation:
  reverse: true
  directions:
    right: {row: 3, frames: 8, cycle: 32, offset: {x: 10, y: 20}}
`), &spec)
	require.NoError(t, err)

	assert.Equal(t, 1, spec.Spawn.X)
	assert.Equal(t, 6, spec.Collider.H)
	assert.Equal(t, 0.5, spec.Physics.Gravity)
	assert.Equal(t, -9.5, spec.Physics.JumpVelocity)
	assert.True(t, spec.Animation.Reverse)
	require.Contains(t, spec.Animation.Directions, "right")
	assert.Equal(t, 10, spec.Animation.Directions["right"].Offset.X)
}
