package engine

import (
	"testing"

	"github.com/milk9111/tilecanvas/tile"
)

// After reconcile reaches a fixed point, every adjacent placed pair must
// agree on its shared edge, treating empty neighbors as unconnected.
func checkEdgesConsistent(t *testing.T, e *Engine) {
	t.Helper()
	tb := e.Table()
	for i, tl := range e.Tiles() {
		sig := tb.ConnectionsOf(tl)
		if sig == nil {
			continue
		}
		for d := tile.Direction(0); d < 8; d++ {
			idx := e.neighborIndex(i, d, nil)
			if idx < 0 {
				continue
			}
			n := e.Tiles()[idx]
			nsig := tb.ConnectionsOf(n)
			if nsig == nil {
				continue
			}
			if sig[d] != nsig[tile.Opposite(d)] {
				t.Fatalf("cells %d/%d disagree on direction %d: %s vs %s",
					i, idx, d, sig.Key(), nsig.Key())
			}
		}
	}
}

func TestReconcileReachesConsistency(t *testing.T) {
	// a 2x2 block of crosses is invalid at every edge of the grid; the
	// only consistent repair with these sources is a ring of elbows
	sources := []string{"elbow_10100000", "cross_10101010"}
	e, _ := newTestEngine(2, 2, sources, nil)
	tiles := make([]tile.Tile, 4)
	for i := range tiles {
		tiles[i] = tile.Tile{ImageIndex: 1, Name: "cross_10101010", PlacedOrder: i + 1}
	}
	e.LoadTiles(tiles)

	e.ReconcileTiles()
	checkEdgesConsistent(t, e)

	wantKeys := []string{"00101000", "00001010", "10100000", "10000010"}
	for i, want := range wantKeys {
		sig := e.Table().ConnectionsOf(e.Tiles()[i])
		if sig == nil || sig.Key() != want {
			t.Fatalf("cell %d: got %v, want %s", i, sig, want)
		}
	}
}

func TestReconcilePreservesNewestOnOrdering(t *testing.T) {
	// two adjacent cells disagree; the newer placement must survive and
	// the older one be repaired
	sources := []string{"end_00100000", "blank_00000000"}
	e, _ := newTestEngine(1, 2, sources, nil)
	e.LoadTiles([]tile.Tile{
		{ImageIndex: 0, Name: "end_00100000", PlacedOrder: 1}, // east connector into a blank
		{ImageIndex: 1, Name: "blank_00000000", PlacedOrder: 2},
	})
	e.ReconcileTiles()
	got := e.Tiles()
	if got[1].Name != "blank_00000000" {
		t.Fatalf("newest placement must be preserved, got %+v", got[1])
	}
	if sig := e.Table().ConnectionsOf(got[0]); sig == nil || sig.Count() != 0 {
		t.Fatalf("older cell must be repaired to match, got %+v", got[0])
	}
	checkEdgesConsistent(t, e)
}

func TestReconcileLeavesUnsatisfiableAlone(t *testing.T) {
	// the only source demands all eight connections; nothing can repair a
	// lone cross against empty neighbors, so it stays as-is
	e, _ := newTestEngine(3, 3, []string{"cross_11111111"}, nil)
	e.LoadTiles([]tile.Tile{
		{}, {}, {},
		{}, {ImageIndex: 0, Name: "cross_11111111", PlacedOrder: 1}, {}, {}, {}, {},
	})
	before := e.Tiles()[4]
	e.ReconcileTiles()
	if e.Tiles()[4] != before {
		t.Fatalf("unsatisfiable neighborhood must be left as-is, got %+v", e.Tiles()[4])
	}
}

// Controlled randomize preserves, for every originally placed cell, its
// exact transformed connection signature.
func TestControlledRandomizePreservesSignatures(t *testing.T) {
	sources := []string{"pipe_10001000", "bar_10001000", "decor", "deco2"}
	e, _ := newTestEngine(2, 2, sources, nil)
	e.LoadTiles([]tile.Tile{
		{ImageIndex: 0, Name: "pipe_10001000", Rotation: 90, PlacedOrder: 1},
		{ImageIndex: 1, Name: "bar_10001000", PlacedOrder: 2},
		{ImageIndex: 2, Name: "decor", PlacedOrder: 3},
		{ImageIndex: -1},
	})

	type cellSig struct {
		key         string
		directional bool
	}
	before := make([]cellSig, 4)
	for i, tl := range e.Tiles() {
		if sig := e.Table().ConnectionsOf(tl); sig != nil {
			before[i] = cellSig{key: sig.Key(), directional: true}
		}
	}

	e.ControlledRandomize()

	for i, tl := range e.Tiles() {
		if i == 3 {
			if !tl.IsEmpty() {
				t.Fatalf("empty cells must stay empty")
			}
			continue
		}
		if !tl.IsPlaced() {
			t.Fatalf("cell %d lost its tile", i)
		}
		sig := e.Table().ConnectionsOf(tl)
		if before[i].directional {
			if sig == nil || sig.Key() != before[i].key {
				t.Fatalf("cell %d changed signature: %v, want %s", i, sig, before[i].key)
			}
		} else if sig != nil {
			t.Fatalf("non-directional cell %d became directional", i)
		}
		if tl.PlacedOrder != i+1 {
			t.Fatalf("cell %d: placement order must be preserved, got %d", i, tl.PlacedOrder)
		}
	}
}

func TestBatchOpsRespectZoomRegion(t *testing.T) {
	e, _ := newTestEngine(4, 4, []string{"a"}, nil)
	e.SetZoom(&Region{MinRow: 1, MaxRow: 2, MinCol: 1, MaxCol: 2})
	e.SetBrush(fixedBrush(0))
	e.FloodFill()
	for i, tl := range e.Tiles() {
		r, c := e.Layout().Position(i)
		inside := r >= 1 && r <= 2 && c >= 1 && c <= 2
		if inside && !tl.IsPlaced() {
			t.Fatalf("cell %d inside the region must fill", i)
		}
		if !inside && !tl.IsEmpty() {
			t.Fatalf("cell %d outside the region must stay empty", i)
		}
	}
}
