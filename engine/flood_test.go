package engine

import (
	"testing"

	"github.com/milk9111/tilecanvas/pattern"
	"github.com/milk9111/tilecanvas/tile"
)

func TestFloodFillFixed(t *testing.T) {
	e, _ := newTestEngine(3, 3, []string{"a", "b"}, nil)
	e.SetBrush(fixedBrush(1))
	e.HandlePress(4, false)
	e.SetBrush(fixedBrush(0))
	e.FloodFill()
	for i, tl := range e.Tiles() {
		if tl.ImageIndex != 0 {
			t.Fatalf("cell %d: flood must overwrite everything, got %+v", i, tl)
		}
	}
}

func TestFloodFillErase(t *testing.T) {
	e, _ := newTestEngine(2, 2, []string{"a"}, nil)
	e.SetBrush(fixedBrush(0))
	e.FloodFill()
	e.SetBrush(Brush{Kind: BrushErase})
	e.FloodFill()
	for i, tl := range e.Tiles() {
		if !tl.IsEmpty() {
			t.Fatalf("cell %d not cleared: %+v", i, tl)
		}
	}
}

func TestFloodCloneDisabled(t *testing.T) {
	e, _ := newTestEngine(2, 2, []string{"a"}, nil)
	e.SetBrush(Brush{Kind: BrushClone})
	e.FloodFill()
	e.FloodComplete()
	for i, tl := range e.Tiles() {
		if !tl.IsEmpty() {
			t.Fatalf("cell %d: clone has no flood behavior, got %+v", i, tl)
		}
	}
}

func TestFloodCompleteFillsOnlyEmpties(t *testing.T) {
	e, _ := newTestEngine(2, 2, []string{"a", "b"}, nil)
	e.SetBrush(fixedBrush(1))
	e.HandlePress(0, false)
	e.SetBrush(fixedBrush(0))
	e.FloodComplete()
	if e.Tiles()[0].ImageIndex != 1 {
		t.Fatalf("flood complete must preserve filled cells")
	}
	for _, i := range []int{1, 2, 3} {
		if e.Tiles()[i].ImageIndex != 0 {
			t.Fatalf("cell %d must be filled", i)
		}
	}
}

// Applying flood complete twice with no edits in between yields the same
// grid as applying it once.
func TestFloodCompleteIdempotent(t *testing.T) {
	sources := []string{"end_10000000", "pipe_10001000", "elbow_11000000", "decor"}
	e, _ := newTestEngine(4, 4, sources, func(c *Config) {
		c.RandomRequiresLegal = true
	})
	e.SetBrush(Brush{Kind: BrushRandom})
	e.HandlePress(5, false)
	e.FloodComplete()
	once := cloneGrid(e.Tiles())
	e.EndFrame()
	e.FloodComplete()
	if !gridsEqual(e.Tiles(), once) {
		t.Fatalf("flood complete must be idempotent")
	}
}

func TestFloodCompleteMirrorCatchUp(t *testing.T) {
	e, _ := newTestEngine(1, 4, []string{"a", "b"}, nil)
	// paint the right half before mirroring is enabled
	e.SetBrush(fixedBrush(1))
	e.HandlePress(3, false)
	e.SetMirror(true, false)
	e.SetBrush(fixedBrush(0))
	e.FloodComplete()
	got := e.Tiles()
	// cell 0 is the empty counterpart of cell 3: it catches up with the
	// mirror image of the earlier paint instead of fresh fill
	if got[0].ImageIndex != 1 || !got[0].MirrorX {
		t.Fatalf("empty cell with placed counterpart must receive its mirror image, got %+v", got[0])
	}
	if got[3].ImageIndex != 1 || got[3].MirrorX {
		t.Fatalf("already placed counterpart must be preserved, got %+v", got[3])
	}
	if got[1].ImageIndex != 0 || got[2].ImageIndex != 0 {
		t.Fatalf("remaining empties fill as a mirrored pair: %+v %+v", got[1], got[2])
	}
}

func TestFloodMirrorForcesTargets(t *testing.T) {
	e, _ := newTestEngine(1, 4, []string{"a", "b"}, nil)
	e.SetBrush(fixedBrush(1))
	e.HandlePress(2, false)
	e.SetMirror(true, false)
	e.SetBrush(fixedBrush(0))
	e.FloodFill()
	for i, tl := range e.Tiles() {
		if tl.ImageIndex != 0 {
			t.Fatalf("cell %d: batch mirror writes are forced, got %+v", i, tl)
		}
	}
	if e.Tiles()[3].MirrorX == e.Tiles()[0].MirrorX {
		t.Fatalf("mirror pair must differ in mirrorX")
	}
}

func TestFloodPattern(t *testing.T) {
	e, _ := newTestEngine(2, 4, []string{"a", "b"}, nil)
	e.SetPattern(&pattern.Pattern{
		Tiles:  []tile.Tile{{ImageIndex: 0, Name: "a"}, {ImageIndex: 1, Name: "b"}},
		Width:  2,
		Height: 1,
	})
	e.SetBrush(Brush{Kind: BrushPattern})
	e.FloodFill()
	for i, tl := range e.Tiles() {
		want := i % 2
		if tl.ImageIndex != want {
			t.Fatalf("cell %d: got %d, want %d", i, tl.ImageIndex, want)
		}
	}
}

func TestSpiralOrder(t *testing.T) {
	e, _ := newTestEngine(3, 3, []string{"a"}, nil)
	got := e.spiralCells()
	want := []int{0, 1, 2, 5, 8, 7, 6, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFloodDrawBuildsConnectedPath(t *testing.T) {
	sources := []string{"dot_00000000", "end_10000000", "pipe_10001000", "elbow_10100000"}
	e, _ := newTestEngine(3, 3, sources, nil)
	e.SetBrush(Brush{Kind: BrushDraw})
	e.FloodFill()

	order := e.spiralCells()
	tb := e.Table()
	for i, idx := range order {
		tl := e.Tiles()[idx]
		if !tl.IsPlaced() {
			t.Fatalf("cell %d missing from path: %+v", idx, tl)
		}
		sig := tb.ConnectionsOf(tl)
		if sig == nil {
			t.Fatalf("path tiles must be directional")
		}
		wantDegree := 2
		if i == 0 || i == len(order)-1 {
			wantDegree = 1
		}
		if sig.Count() != wantDegree {
			t.Fatalf("cell %d: degree %d, want %d", idx, sig.Count(), wantDegree)
		}
	}
}
