package tiled

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Decode stages, reported by DecodeError.
const (
	StageLayer  = "layer"
	StageBase64 = "base64"
	StageZlib   = "zlib"
)

// DecodeError reports a failure while expanding a layer's tile data.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tiled: decode layer data: %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("tiled: decode layer data: %s", e.Stage)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeData expands the layer's tile stream: base64 text wrapping
// zlib-compressed little-endian 32-bit tile IDs, row-major. One byte
// per cell is returned; Tiled never emits global IDs above 255 for the
// atlases this engine consumes, so only the low byte is kept.
func (l *Layer) DecodeData() ([]byte, error) {
	if l.Data == "" {
		return nil, &DecodeError{Stage: StageLayer, Err: fmt.Errorf("layer has no data")}
	}

	compressed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(l.Data))
	if err != nil {
		return nil, &DecodeError{Stage: StageBase64, Err: err}
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, &DecodeError{Stage: StageZlib, Err: err}
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, &DecodeError{Stage: StageZlib, Err: err}
	}

	ids := make([]byte, 0, len(raw)/4)
	for i := 0; i < len(raw); i += 4 {
		ids = append(ids, raw[i])
	}
	return ids, nil
}

// LayerData decodes the tile stream of the layer at index i.
func (m *Map) LayerData(i int) ([]byte, error) {
	if i < 0 || i >= len(m.Layers) {
		return nil, &DecodeError{Stage: StageLayer, Err: fmt.Errorf("no layer at index %d", i)}
	}
	return m.Layers[i].DecodeData()
}
