package obj

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/asib/platformer/common"
)

// Surface is the drawing target for camera-aware rendering.
// *ebiten.Image satisfies it; tests substitute a recorder.
type Surface interface {
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// Tile is one resolved map cell: a source rect into the map's shared
// tileset texture, or nothing for an empty cell.
type Tile struct {
	src common.Rect
	ok  bool
}

// Map is an immutable grid of resolved tiles plus the tileset they cut
// their sprites from. The grid is written once during construction.
type Map struct {
	tileset *Tileset
	tiles   []Tile

	width, height int
	tileW, tileH  int
}

// NewMap resolves a decoded layer's tile IDs against a tileset. ids is
// row-major, one byte per cell, 0 meaning empty.
func NewMap(ids []byte, width, height int, tileset *Tileset) (*Map, error) {
	if len(ids) != width*height {
		return nil, fmt.Errorf("map: layer data holds %d cells, want %dx%d", len(ids), width, height)
	}

	tileW, tileH := tileset.TileSize()
	m := &Map{
		tileset: tileset,
		tiles:   make([]Tile, len(ids)),
		width:   width,
		height:  height,
		tileW:   tileW,
		tileH:   tileH,
	}
	for i, id := range ids {
		if src, ok := tileset.RectForID(int(id)); ok {
			m.tiles[i] = Tile{src: src, ok: true}
		}
	}
	return m, nil
}

// PixelWidth returns the map width in pixels.
func (m *Map) PixelWidth() int { return m.width * m.tileW }

// PixelHeight returns the map height in pixels.
func (m *Map) PixelHeight() int { return m.height * m.tileH }

// TileAt returns the source rect of the cell at col,row, or false for
// an empty or out-of-bounds cell.
func (m *Map) TileAt(col, row int) (common.Rect, bool) {
	if col < 0 || row < 0 || col >= m.width || row >= m.height {
		return common.Rect{}, false
	}
	t := m.tiles[row*m.width+col]
	return t.src, t.ok
}

// forEachVisible walks every non-empty cell whose world rect overlaps
// view and yields its atlas source rect plus its screen position
// (world position minus the view origin). Cells fully outside the view
// on either axis are skipped entirely, never clipped.
func (m *Map) forEachVisible(view common.Rect, fn func(src common.Rect, screen common.Point)) {
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			t := m.tiles[row*m.width+col]
			if !t.ok {
				continue
			}
			world := common.Rect{X: col * m.tileW, Y: row * m.tileH, Width: m.tileW, Height: m.tileH}
			if !world.Intersects(view) {
				continue
			}
			fn(t.src, common.Point{X: world.X - view.X, Y: world.Y - view.Y})
		}
	}
}

// Draw blits every tile overlapping the camera view, offset into
// screen space.
func (m *Map) Draw(dst Surface, cam *Camera) {
	m.forEachVisible(cam.ViewRect(), func(src common.Rect, screen common.Point) {
		sub := m.tileset.Texture.SubImage(image.Rect(src.X, src.Y, src.X+src.Width, src.Y+src.Height)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.X), float64(screen.Y))
		dst.DrawImage(sub, op)
	})
}
