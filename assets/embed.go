// Package assets embeds the sprite sheets and sample map shipped with
// the engine and decodes images into shared ebiten textures.
package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png *.json
var assetsFS embed.FS

// LoadImage decodes an embedded image by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile returns an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
