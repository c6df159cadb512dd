package obj

// Direction is the facing/motion state of a moveable entity. It doubles
// as the dense index into the per-direction animation tables.
type Direction int

const (
	Down Direction = iota
	Left
	StillLeft
	Right
	StillRight
	Up
	DoubleUp
	// Landed is a transient sentinel stored as the previous direction
	// for exactly one transition after ground contact. It is never a
	// real facing and never indexes an animation table.
	Landed

	directionCount
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case StillLeft:
		return "still-left"
	case Right:
		return "right"
	case StillRight:
		return "still-right"
	case Up:
		return "up"
	case DoubleUp:
		return "double-up"
	case Landed:
		return "landed"
	}
	return "unknown"
}

// Airborne reports whether the direction is a jump state. While
// airborne, horizontal facing changes are ignored.
func (d Direction) Airborne() bool {
	return d == Up || d == DoubleUp
}

// still maps a motion direction to its standing variant, or returns
// false if d has none.
func (d Direction) still() (Direction, bool) {
	switch d {
	case Left:
		return StillLeft, true
	case Right:
		return StillRight, true
	}
	return d, false
}
