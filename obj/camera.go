package obj

import (
	"github.com/asib/platformer/common"
)

// Camera tracks a viewport over the world. The tracked entity may move
// freely inside the dead zone; once it pushes past a dead-zone edge the
// camera shifts by exactly the overflow on that axis, then clamps so
// the viewport never leaves the map.
type Camera struct {
	Pos common.Point

	// DeadZone is expressed relative to the viewport's top-left.
	DeadZone common.Rect

	viewW, viewH int
}

// NewCamera creates a camera with the given viewport size and an inner
// dead zone rect offset from the viewport's top-left.
func NewCamera(viewW, viewH int, deadZone common.Rect) *Camera {
	return &Camera{DeadZone: deadZone, viewW: viewW, viewH: viewH}
}

// ViewRect returns the world-space rectangle currently visible.
func (c *Camera) ViewRect() common.Rect {
	return common.Rect{X: c.Pos.X, Y: c.Pos.Y, Width: c.viewW, Height: c.viewH}
}

// Update recenters on the player's collision rect and clamps the
// viewport to the map's pixel bounds.
func (c *Camera) Update(player common.Rect, m *Map) {
	zone := common.Rect{
		X:      c.Pos.X + c.DeadZone.X,
		Y:      c.Pos.Y + c.DeadZone.Y,
		Width:  c.DeadZone.Width,
		Height: c.DeadZone.Height,
	}

	if player.X < zone.X {
		c.Pos.X -= zone.X - player.X
	} else if player.Right() > zone.Right() {
		c.Pos.X += player.Right() - zone.Right()
	}
	if player.Y < zone.Y {
		c.Pos.Y -= zone.Y - player.Y
	} else if player.Bottom() > zone.Bottom() {
		c.Pos.Y += player.Bottom() - zone.Bottom()
	}

	maxX := m.PixelWidth() - c.viewW
	if maxX < 0 {
		maxX = 0
	}
	maxY := m.PixelHeight() - c.viewH
	if maxY < 0 {
		maxY = 0
	}
	c.Pos.X = common.Clamp(c.Pos.X, 0, maxX)
	c.Pos.Y = common.Clamp(c.Pos.Y, 0, maxY)
}
