// Package tiled reads level maps exported by the Tiled editor in its
// JSON format. Only the subset the engine consumes is decoded: layer
// dimensions and compressed tile data, map/tile pixel dimensions and
// tileset geometry.
package tiled

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tileset describes the atlas geometry of one tileset entry.
type Tileset struct {
	FirstGID    int    `json:"firstgid"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	TileCount   int    `json:"tilecount"`
	Margin      int    `json:"margin"`
	Spacing     int    `json:"spacing"`
}

// Layer holds one tile layer. Data is the raw base64 payload as
// exported with "base64" encoding and "zlib" compression.
type Layer struct {
	Data   string `json:"data"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Map is the decoded top-level Tiled document.
type Map struct {
	Layers     []Layer   `json:"layers"`
	Tilesets   []Tileset `json:"tilesets"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	TileWidth  int       `json:"tilewidth"`
	TileHeight int       `json:"tileheight"`
}

// FormatError reports a Tiled document that is not valid JSON or is
// missing a field the engine requires.
type FormatError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tiled: bad map document: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("tiled: bad map document: %s: %s", e.Field, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Load reads and decodes a Tiled JSON map from path.
func Load(path string) (*Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// Decode parses a Tiled JSON document and validates the fields the
// engine depends on. No partial map is returned on error.
func Decode(b []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, &FormatError{Field: "document", Reason: "invalid json", Err: err}
	}

	if m.Width <= 0 || m.Height <= 0 {
		return nil, &FormatError{Field: "width/height", Reason: fmt.Sprintf("invalid map dimensions %dx%d", m.Width, m.Height)}
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, &FormatError{Field: "tilewidth/tileheight", Reason: fmt.Sprintf("invalid tile dimensions %dx%d", m.TileWidth, m.TileHeight)}
	}
	if len(m.Layers) == 0 {
		return nil, &FormatError{Field: "layers", Reason: "no layers"}
	}
	if len(m.Tilesets) == 0 {
		return nil, &FormatError{Field: "tilesets", Reason: "no tilesets"}
	}
	for i, l := range m.Layers {
		if l.Width <= 0 || l.Height <= 0 {
			return nil, &FormatError{Field: fmt.Sprintf("layers[%d]", i), Reason: fmt.Sprintf("invalid layer dimensions %dx%d", l.Width, l.Height)}
		}
	}
	for i, ts := range m.Tilesets {
		if ts.Image == "" {
			return nil, &FormatError{Field: fmt.Sprintf("tilesets[%d].image", i), Reason: "missing image path"}
		}
		if ts.TileWidth <= 0 || ts.TileHeight <= 0 {
			return nil, &FormatError{Field: fmt.Sprintf("tilesets[%d]", i), Reason: fmt.Sprintf("invalid tile dimensions %dx%d", ts.TileWidth, ts.TileHeight)}
		}
		if ts.TileCount <= 0 {
			return nil, &FormatError{Field: fmt.Sprintf("tilesets[%d].tilecount", i), Reason: "missing tile count"}
		}
	}

	return &m, nil
}
