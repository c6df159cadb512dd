package prefabs

import (
	"fmt"

	"github.com/asib/platformer/common"
	"github.com/asib/platformer/obj"
)

// directionKeys maps yaml direction names onto the engine enum. Every
// key must be present in a spec's animation table.
var directionKeys = map[string]obj.Direction{
	"down":        obj.Down,
	"left":        obj.Left,
	"still_left":  obj.StillLeft,
	"right":       obj.Right,
	"still_right": obj.StillRight,
	"up":          obj.Up,
	"double_up":   obj.DoubleUp,
}

// BuildAnimation turns the spec's per-direction table into a validated
// animation. Unknown or missing direction names fail here, at load
// time, so the tick loop never sees an incomplete table.
func (s *PlayerSpec) BuildAnimation() (*obj.Animation, error) {
	var cycles, frames, rows obj.DirTable[int]
	var offsets obj.DirTable[common.Point]

	for name := range s.Animation.Directions {
		if _, ok := directionKeys[name]; !ok {
			return nil, fmt.Errorf("prefabs: player animation: unknown direction %q", name)
		}
	}
	for name, d := range directionKeys {
		entry, ok := s.Animation.Directions[name]
		if !ok {
			return nil, fmt.Errorf("prefabs: player animation: missing direction %q", name)
		}
		cycles[d] = entry.Cycle
		frames[d] = entry.Frames
		rows[d] = entry.Row
		offsets[d] = common.Point{X: entry.Offset.X, Y: entry.Offset.Y}
	}

	return obj.NewAnimation(cycles, frames, offsets, rows, s.Frame.W, s.Frame.H, s.Animation.Reverse)
}

// BuildPlayer constructs the player entity from the spec and its atlas.
func (s *PlayerSpec) BuildPlayer(texture obj.TextureHandle) (*obj.Player, error) {
	anim, err := s.BuildAnimation()
	if err != nil {
		return nil, err
	}

	phys := obj.PhysicsParams{
		Gravity:        s.Physics.Gravity,
		MoveImpulse:    s.Physics.MoveImpulse,
		JumpVelocity:   s.Physics.JumpVelocity,
		VelocityDecay:  s.Physics.VelocityDecay,
		VelocityCutoff: s.Physics.VelocityCutoff,
		AccelDecay:     s.Physics.AccelDecay,
		AccelCutoff:    s.Physics.AccelCutoff,
	}

	return obj.NewPlayer(
		common.Point{X: s.Spawn.X, Y: s.Spawn.Y},
		common.Rect{X: s.Collider.X, Y: s.Collider.Y, Width: s.Collider.W, Height: s.Collider.H},
		texture,
		anim,
		phys,
		obj.StillRight,
	), nil
}
