package obj

import (
	"github.com/asib/platformer/common"
)

// PhysicsParams are the per-entity tuning constants of the integrator.
type PhysicsParams struct {
	// Gravity is written to the vertical acceleration every tick; it is
	// a reset, not an accumulation.
	Gravity float64
	// MoveImpulse is added to the horizontal acceleration while a
	// movement key is held.
	MoveImpulse float64
	// JumpVelocity replaces the vertical velocity on a jump. Negative
	// is up.
	JumpVelocity float64

	VelocityDecay  float64
	VelocityCutoff float64
	AccelDecay     float64
	AccelCutoff    float64
}

// Moveable is an Entity with kinematics, an animation and a direction
// history. Last remembers the facing to restore on landing.
type Moveable struct {
	Entity
	Dir  Direction
	Last Direction
	Vel  common.Vec2
	Acc  common.Vec2
	Anim *Animation
	Phys PhysicsParams
}

// ChangeDir requests a new facing. While airborne every request except
// landing is ignored, so entities cannot turn mid-jump. Entering a
// standing direction rewinds the animation so the still pose shows at
// once.
func (m *Moveable) ChangeDir(d Direction) {
	if d == Landed {
		m.Land()
		return
	}
	if m.Dir.Airborne() {
		return
	}
	m.Last = m.Dir
	m.Dir = d
	if d == StillLeft || d == StillRight {
		m.Anim.Reset()
	}
}

// Land resolves ground contact: the facing stored before takeoff
// becomes current again and Last holds the Landed marker for exactly
// one transition.
func (m *Moveable) Land() {
	m.Dir, m.Last = m.Last, Landed
}

// Jump starts an ascent, or escalates a running ascent to the double
// jump. A second escalation is a no-op: the jump budget is two.
func (m *Moveable) Jump() {
	switch m.Dir {
	case DoubleUp:
		return
	case Up:
		m.Dir = DoubleUp
	default:
		m.Last = m.Dir
		m.Dir = Up
	}
	m.Vel.Y = m.Phys.JumpVelocity
}

// decay scales v toward zero and snaps it to exactly zero inside the
// cutoff band, so velocities cannot drift asymptotically forever.
func decay(v, factor, cutoff float64) float64 {
	v *= factor
	if v < cutoff && v > -cutoff {
		return 0
	}
	return v
}

// Integrate advances one tick of kinematics: truncated integer
// position update, velocity update, then per-axis decay with the
// snap-to-zero cutoff. Coming to a horizontal rest transitions a
// running direction to its standing variant.
func (m *Moveable) Integrate() {
	m.Pos.X += int(m.Vel.X)
	m.Pos.Y += int(m.Vel.Y)
	m.Vel.X += m.Acc.X
	m.Vel.Y += m.Acc.Y

	m.Vel.X = decay(m.Vel.X, m.Phys.VelocityDecay, m.Phys.VelocityCutoff)
	m.Vel.Y = decay(m.Vel.Y, m.Phys.VelocityDecay, m.Phys.VelocityCutoff)
	m.Acc.X = decay(m.Acc.X, m.Phys.AccelDecay, m.Phys.AccelCutoff)

	if m.Vel.X == 0 {
		if still, ok := m.Dir.still(); ok {
			m.ChangeDir(still)
		}
	}
}

// KeepWithin clamps the entity so its collision rect stays inside
// [0,width]x[0,height]. Hitting the bottom edge while airborne is
// ground contact and triggers the landing transition.
func (m *Moveable) KeepWithin(width, height int) {
	r := m.CollisionRect()

	if r.X < 0 {
		m.Pos.X -= r.X
	} else if r.Right() > width {
		m.Pos.X -= r.Right() - width
	}

	if r.Y < 0 {
		m.Pos.Y -= r.Y
	} else if r.Bottom() > height {
		m.Pos.Y -= r.Bottom() - height
		if m.Dir.Airborne() {
			m.Land()
		}
	}
}

// Animate advances the animation one tick and refreshes the entity's
// source rect. Entities with no source rect assigned have no live
// animation and are left untouched.
func (m *Moveable) Animate() {
	if m.Src == nil {
		return
	}
	m.Anim.Advance(m.Dir)
	*m.Src = m.Anim.FrameRect(m.Dir)
}

// Player is the controllable moveable entity.
type Player struct {
	Moveable
}

// NewPlayer builds the player from its tuning constants. The initial
// source rect is taken from the animation's starting frame so the
// animation is live from the first tick.
func NewPlayer(pos common.Point, collision common.Rect, texture TextureHandle, anim *Animation, phys PhysicsParams, dir Direction) *Player {
	src := anim.FrameRect(dir)
	return &Player{
		Moveable: Moveable{
			Entity: Entity{
				Pos:       pos,
				Collision: collision,
				Texture:   texture.Image,
				Src:       &src,
			},
			Dir:  dir,
			Last: dir,
			Anim: anim,
			Phys: phys,
		},
	}
}

// Update runs one full tick for the player: gravity reset, horizontal
// input impulses, integration and boundary clamping against the given
// world pixel bounds.
func (p *Player) Update(in *Input, boundsW, boundsH int) {
	p.Acc.Y = p.Phys.Gravity

	if in.Left {
		p.Acc.X -= p.Phys.MoveImpulse
		p.ChangeDir(Left)
	}
	if in.Right {
		p.Acc.X += p.Phys.MoveImpulse
		p.ChangeDir(Right)
	}
	p.Integrate()
	p.KeepWithin(boundsW, boundsH)

	if in.JumpPressed {
		p.Jump()
	}

	p.Animate()
}
