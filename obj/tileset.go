package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/asib/platformer/common"
	"github.com/asib/platformer/tiled"
)

// Tileset resolves global tile IDs to pixel rects inside a shared atlas
// texture. The atlas is read-only after construction.
type Tileset struct {
	Texture *ebiten.Image

	textureW, textureH int
	tileW, tileH       int
	tileCount          int
	margin, spacing    int
	columns            int
}

// NewTileset binds a decoded tileset descriptor to its loaded texture.
// The column count is derived from the texture geometry.
func NewTileset(desc tiled.Tileset, texture *ebiten.Image) (*Tileset, error) {
	if desc.TileWidth <= 0 || desc.TileHeight <= 0 {
		return nil, fmt.Errorf("tileset: invalid tile dimensions %dx%d", desc.TileWidth, desc.TileHeight)
	}
	columns := (desc.ImageWidth - 2*desc.Margin + desc.Spacing) / (desc.TileWidth + desc.Spacing)
	if columns < 1 {
		return nil, fmt.Errorf("tileset: image width %d fits no %dpx columns", desc.ImageWidth, desc.TileWidth)
	}
	return &Tileset{
		Texture:   texture,
		textureW:  desc.ImageWidth,
		textureH:  desc.ImageHeight,
		tileW:     desc.TileWidth,
		tileH:     desc.TileHeight,
		tileCount: desc.TileCount,
		margin:    desc.Margin,
		spacing:   desc.Spacing,
		columns:   columns,
	}, nil
}

// RectForID maps a global tile ID to its source rect. ID 0 means an
// empty cell and resolves to no rect.
func (t *Tileset) RectForID(id int) (common.Rect, bool) {
	if id == 0 {
		return common.Rect{}, false
	}
	index := id - 1
	row := index / t.columns
	col := index % t.columns
	return common.Rect{
		X:      t.margin + col*(t.tileW+t.spacing),
		Y:      t.margin + row*(t.tileH+t.spacing),
		Width:  t.tileW,
		Height: t.tileH,
	}, true
}

// TileSize returns the tile dimensions in pixels.
func (t *Tileset) TileSize() (w, h int) { return t.tileW, t.tileH }
