package design

import (
	"testing"

	"github.com/milk9111/tilecanvas/tile"
)

func TestEncodeDecodeRepairs(t *testing.T) {
	cases := []struct {
		name      string
		d         Design
		wantCells int
	}{
		{"well_formed", Design{Rows: 2, Columns: 2, Tiles: []tile.Tile{{}, {}, {}, {}}}, 4},
		{"short_array_padded", Design{Rows: 2, Columns: 3, Tiles: []tile.Tile{{ImageIndex: 0}}}, 6},
		{"long_array_truncated", Design{Rows: 1, Columns: 2, Tiles: make([]tile.Tile, 9)}, 2},
		{"zero_dimensions_floored", Design{}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := Encode(&c.d)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := Decode(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(got.Tiles) != c.wantCells {
				t.Fatalf("got %d tiles, want %d", len(got.Tiles), c.wantCells)
			}
			if got.Rows*got.Columns != c.wantCells {
				t.Fatalf("dimensions %dx%d disagree with %d cells", got.Rows, got.Columns, c.wantCells)
			}
		})
	}

	t.Run("garbage_input_errors", func(t *testing.T) {
		if _, err := Decode([]byte("not json")); err == nil {
			t.Fatalf("expected a decode error")
		}
	})
}

func TestResolve(t *testing.T) {
	table := tile.NewTable([]string{"b", "a_10000000"})
	d := &Design{Rows: 2, Columns: 4, Tiles: []tile.Tile{
		{ImageIndex: 0, Name: "a_10000000"}, // re-resolved by name
		{ImageIndex: 0},                     // kept by raw index
		{ImageIndex: 7},                     // stale index cleared
		{ImageIndex: 1, Name: "gone"},       // unknown non-directional name rematches
		{ImageIndex: -1},                    // empty passes through
		{ImageIndex: 3, Name: "cap_10000000", PlacedOrder: 4}, // unknown name, same signature
		{ImageIndex: 3, Name: "cap_00100000"},                 // unknown name, rotated signature
		{ImageIndex: 3, Name: "z_01000000"},                   // no source realizes the signature
	}}

	got := Resolve(d, table)
	if got[0].ImageIndex != 1 || got[0].Name != "a_10000000" {
		t.Fatalf("name resolution failed: %+v", got[0])
	}
	if got[1].ImageIndex != 0 {
		t.Fatalf("raw index must survive: %+v", got[1])
	}
	if !got[2].IsEmpty() {
		t.Fatalf("stale index must clear: %+v", got[2])
	}
	if got[3].ImageIndex != 0 || got[3].Name != "b" {
		t.Fatalf("non-directional name must rematch to a non-directional source: %+v", got[3])
	}
	if !got[4].IsEmpty() {
		t.Fatalf("empty must pass through")
	}
	if got[5].ImageIndex != 1 || got[5].Rotation != 0 || got[5].PlacedOrder != 4 {
		t.Fatalf("same-signature name must rematch in place: %+v", got[5])
	}
	if got[6].ImageIndex != 1 || got[6].Rotation != 90 {
		t.Fatalf("rotated signature must rematch to the rotated variant: %+v", got[6])
	}
	if !got[7].IsEmpty() {
		t.Fatalf("unrealizable signature must clear: %+v", got[7])
	}
}
