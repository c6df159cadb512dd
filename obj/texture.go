package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// TextureHandle pairs a shared read-only atlas texture with its pixel
// dimensions. Handles referencing the same atlas share one image; no
// component mutates atlas contents after load.
type TextureHandle struct {
	Image         *ebiten.Image
	Width, Height int
}

// NewTextureHandle wraps a loaded image, querying its dimensions once.
func NewTextureHandle(img *ebiten.Image) TextureHandle {
	b := img.Bounds()
	return TextureHandle{Image: img, Width: b.Dx(), Height: b.Dy()}
}
