package obj

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/asib/platformer/common"
)

// Entity is anything positioned and drawable: a world position, a
// collision rect relative to that position, a shared read-only atlas
// texture and an optional current source rect. A nil source rect means
// the whole texture is drawn and no animation is live.
type Entity struct {
	Pos       common.Point
	Collision common.Rect
	Texture   *ebiten.Image
	Src       *common.Rect
}

// CollisionRect returns the entity's collision bounds in world space.
func (e *Entity) CollisionRect() common.Rect {
	return common.Rect{
		X:      e.Pos.X + e.Collision.X,
		Y:      e.Pos.Y + e.Collision.Y,
		Width:  e.Collision.Width,
		Height: e.Collision.Height,
	}
}

// Draw blits the entity at its world position offset by the camera.
func (e *Entity) Draw(dst Surface, cam *Camera) {
	img := e.Texture
	if e.Src != nil {
		src := *e.Src
		img = e.Texture.SubImage(image.Rect(src.X, src.Y, src.X+src.Width, src.Y+src.Height)).(*ebiten.Image)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(e.Pos.X-cam.Pos.X), float64(e.Pos.Y-cam.Pos.Y))
	dst.DrawImage(img, op)
}
