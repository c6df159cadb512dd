package tiled

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeLayerData packs tile IDs the way Tiled exports them: LE u32
// per cell, zlib-compressed, base64-encoded.
func encodeLayerData(t *testing.T, ids []uint32) string {
	t.Helper()
	var raw bytes.Buffer
	for _, id := range ids {
		require.NoError(t, binary.Write(&raw, binary.LittleEndian, id))
	}
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return base64.StdEncoding.EncodeToString(compressed.Bytes())
}

func mapDoc(layerData string) string {
	return fmt.Sprintf(`{
		"width": 2, "height": 2,
		"tilewidth": 16, "tileheight": 16,
		"layers": [{"data": %q, "width": 2, "height": 2}],
		"tilesets": [{
			"firstgid": 1, "image": "tiles.png",
			"imagewidth": 160, "imageheight": 160,
			"tilewidth": 16, "tileheight": 16,
			"tilecount": 100, "margin": 0, "spacing": 0
		}]
	}`, layerData)
}

func TestDecodeDocument(t *testing.T) {
	data := encodeLayerData(t, []uint32{1, 2, 0, 3})
	m, err := Decode([]byte(mapDoc(data)))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 16, m.TileWidth)
	assert.Equal(t, 16, m.TileHeight)
	require.Len(t, m.Layers, 1)
	require.Len(t, m.Tilesets, 1)
	assert.Equal(t, "tiles.png", m.Tilesets[0].Image)
	assert.Equal(t, 100, m.Tilesets[0].TileCount)
}

func TestDecodeFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not_json", `{]`},
		{"zero_dimensions", `{"width":0,"height":2,"tilewidth":16,"tileheight":16,"layers":[{"data":"","width":2,"height":2}],"tilesets":[{"image":"a.png","tilewidth":16,"tileheight":16,"tilecount":4}]}`},
		{"no_layers", `{"width":2,"height":2,"tilewidth":16,"tileheight":16,"layers":[],"tilesets":[{"image":"a.png","tilewidth":16,"tileheight":16,"tilecount":4}]}`},
		{"no_tilesets", `{"width":2,"height":2,"tilewidth":16,"tileheight":16,"layers":[{"data":"","width":2,"height":2}],"tilesets":[]}`},
		{"tileset_missing_image", `{"width":2,"height":2,"tilewidth":16,"tileheight":16,"layers":[{"data":"","width":2,"height":2}],"tilesets":[{"tilewidth":16,"tileheight":16,"tilecount":4}]}`},
		{"tileset_no_count", `{"width":2,"height":2,"tilewidth":16,"tileheight":16,"layers":[{"data":"","width":2,"height":2}],"tilesets":[{"image":"a.png","tilewidth":16,"tileheight":16}]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Decode([]byte(c.doc))
			assert.Nil(t, m, "no partial map on error")
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
		})
	}
}

func TestDecodeDataRoundTrip(t *testing.T) {
	l := Layer{Data: encodeLayerData(t, []uint32{1, 2, 0, 3}), Width: 2, Height: 2}
	ids, err := l.DecodeData()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0, 3}, ids)
}

func TestDecodeDataErrors(t *testing.T) {
	valid := encodeLayerData(t, []uint32{1})

	cases := []struct {
		name  string
		layer Layer
		stage string
	}{
		{"missing_data", Layer{Width: 2, Height: 2}, StageLayer},
		{"bad_base64", Layer{Data: "!!not base64!!"}, StageBase64},
		{"bad_zlib", Layer{Data: base64.StdEncoding.EncodeToString([]byte("plainly not zlib"))}, StageZlib},
		{"valid", Layer{Data: valid}, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.layer.DecodeData()
			if c.stage == "" {
				require.NoError(t, err)
				return
			}
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, c.stage, de.Stage)
		})
	}
}

func TestLayerDataIndex(t *testing.T) {
	m := Map{Layers: []Layer{{Data: encodeLayerData(t, []uint32{7}), Width: 1, Height: 1}}}

	ids, err := m.LayerData(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, ids)

	_, err = m.LayerData(1)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, StageLayer, de.Stage)

	_, err = m.LayerData(-1)
	assert.True(t, errors.As(err, &de))
}
