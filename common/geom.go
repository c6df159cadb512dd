package common

// Point is an integer pixel position in world or atlas space.
type Point struct {
	X, Y int
}

// Vec2 is a 2D float vector used for velocity and acceleration.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box. It doubles as a collision bound in world
// space and a source rect in atlas space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Intersects reports whether r and other overlap. Each axis is tested
// independently so touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Right returns the x coordinate one past the rightmost column.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the lowest row.
func (r Rect) Bottom() int { return r.Y + r.Height }
