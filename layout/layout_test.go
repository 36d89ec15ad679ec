package layout

import "testing"

func TestCompute(t *testing.T) {
	cases := []struct {
		name                string
		w, h, gap, prefSize int
		wantRows, wantCols  int
		wantSize            int
	}{
		{"exact_fit", 320, 320, 0, 32, 10, 10, 32},
		{"gap_reduces_count", 330, 330, 2, 32, 9, 9, 32},
		{"preferred_larger_than_viewport", 64, 48, 0, 100, 1, 1, 48},
		{"single_cell_minimum", 10, 10, 4, 32, 1, 1, 10},
		{"wide_viewport", 640, 64, 0, 32, 2, 20, 32},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := Compute(c.w, c.h, c.gap, c.prefSize)
			if g.Rows != c.wantRows || g.Columns != c.wantCols || g.TileSize != c.wantSize {
				t.Fatalf("got %dx%d size %d, want %dx%d size %d",
					g.Rows, g.Columns, g.TileSize, c.wantRows, c.wantCols, c.wantSize)
			}
		})
	}

	t.Run("cell_cap_shrinks_toward_square", func(t *testing.T) {
		g := Compute(10000, 10000, 0, 8)
		if g.Cells() > MaxCells {
			t.Fatalf("cap exceeded: %d cells", g.Cells())
		}
		diff := g.Rows - g.Columns
		if diff < -1 || diff > 1 {
			t.Fatalf("capped grid should be near-square, got %dx%d", g.Rows, g.Columns)
		}
	})
}

func TestComputeFixed(t *testing.T) {
	cases := []struct {
		name       string
		w, h, gap  int
		rows, cols int
		wantSize   int
	}{
		{"height_limited", 640, 320, 0, 10, 10, 32},
		{"width_limited", 320, 640, 0, 10, 10, 32},
		{"gap_accounted", 322, 322, 2, 10, 10, 30},
		{"tiny_viewport_floor", 5, 5, 0, 10, 10, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := ComputeFixed(c.w, c.h, c.gap, c.rows, c.cols)
			if g.Rows != c.rows || g.Columns != c.cols {
				t.Fatalf("dimensions changed: got %dx%d", g.Rows, g.Columns)
			}
			if g.TileSize != c.wantSize {
				t.Fatalf("got size %d, want %d", g.TileSize, c.wantSize)
			}
		})
	}

	t.Run("cap_applies", func(t *testing.T) {
		g := ComputeFixed(1000, 1000, 0, 100, 100)
		if g.Cells() > MaxCells {
			t.Fatalf("cap exceeded: %d cells", g.Cells())
		}
	})
}

func TestIndexRoundTrip(t *testing.T) {
	g := Grid{Rows: 4, Columns: 7}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			idx := g.Index(r, c)
			rr, cc := g.Position(idx)
			if rr != r || cc != c {
				t.Fatalf("(%d,%d) -> %d -> (%d,%d)", r, c, idx, rr, cc)
			}
		}
	}
	if g.InBounds(4, 0) || g.InBounds(0, 7) || g.InBounds(-1, 0) {
		t.Fatalf("out-of-bounds positions reported in-bounds")
	}
}
