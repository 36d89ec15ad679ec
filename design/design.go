// Package design is the codec for saved canvases: a serialized tile array
// plus grid dimensions, stored as JSON. Decoding repairs rather than
// rejects: the tile array is padded or truncated to the declared
// dimensions and stale indices are cleared. The engine stays I/O free; the
// host decides where the bytes live.
package design

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/milk9111/tilecanvas/tile"
)

// Design is the persisted canvas representation. Tiles keep each cell's
// optional source name so a reload against a reordered source list
// re-resolves identity by name rather than raw index.
type Design struct {
	Rows    int         `json:"rows"`
	Columns int         `json:"columns"`
	Tiles   []tile.Tile `json:"tiles"`
}

// Encode renders the design as indented JSON.
func Encode(d *Design) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("design: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses and normalizes a design. Dimension fields are floored at
// one cell; the tile array is padded with empty tiles or truncated to
// rows*columns.
func Decode(data []byte) (*Design, error) {
	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("design: decode: %w", err)
	}
	if d.Rows < 1 {
		d.Rows = 1
	}
	if d.Columns < 1 {
		d.Columns = 1
	}
	cells := d.Rows * d.Columns
	for len(d.Tiles) < cells {
		d.Tiles = append(d.Tiles, tile.Empty())
	}
	d.Tiles = d.Tiles[:cells]
	return &d, nil
}

// Resolve re-binds every stored tile to the given table: by name when one
// resolves, by signature rematch when the name is unknown, otherwise by
// clamping the raw index, clearing what no longer exists. The returned
// slice is ready for Engine.LoadTiles.
func Resolve(d *Design, table *tile.Table) []tile.Tile {
	out := make([]tile.Tile, len(d.Tiles))
	for i, t := range d.Tiles {
		switch {
		case !t.IsPlaced():
			out[i] = t
		case t.Name != "":
			out[i] = table.Rematch(t)
		case t.ImageIndex < table.Len():
			out[i] = t
		default:
			out[i] = tile.Empty()
		}
	}
	return out
}
