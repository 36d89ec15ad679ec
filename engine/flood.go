package engine

import "github.com/milk9111/tilecanvas/tile"

// floodBounds returns the rectangle a batch operation covers: the zoom
// region when active, else the whole grid.
func (e *Engine) floodBounds() Region {
	if e.zoom != nil {
		return *e.zoom
	}
	return Region{MinRow: 0, MaxRow: e.layout.Rows - 1, MinCol: 0, MaxCol: e.layout.Columns - 1}
}

// FloodFill overwrites the whole writable set using the active brush. The
// set is conceptually cleared first, so random placement never has to
// satisfy content the flood is about to replace. Clone has no flood
// behavior.
func (e *Engine) FloodFill() {
	if e.brush.Kind == BrushClone {
		return
	}
	e.pushUndo()
	e.bulkFrame = true
	for _, i := range e.writableCells() {
		e.grid[i] = tile.Empty()
	}
	if e.brush.Kind == BrushErase {
		return
	}
	if e.brush.Kind == BrushDraw {
		e.floodDraw(false)
		return
	}
	e.floodCells(false)
}

// FloodComplete fills only empty cells. Under mirroring an empty cell whose
// counterpart is already placed receives the mirror image of that
// counterpart, so pairs painted before mirroring was enabled converge.
func (e *Engine) FloodComplete() {
	if e.brush.Kind == BrushClone || e.brush.Kind == BrushErase {
		return
	}
	e.pushUndo()
	e.bulkFrame = true
	if e.mirrorH || e.mirrorV {
		e.syncMirrorPairs()
	}
	if e.brush.Kind == BrushDraw {
		e.floodDraw(true)
		return
	}
	e.floodCells(true)
}

// syncMirrorPairs copies placed cells onto their empty mirror counterparts.
func (e *Engine) syncMirrorPairs() {
	for _, i := range e.writableCells() {
		t := e.grid[i]
		if !t.IsPlaced() {
			continue
		}
		for _, mt := range e.mirrorTargets(i, t) {
			if e.writable(mt.index) && !e.grid[mt.index].IsPlaced() {
				e.grid[mt.index] = mt.tile
			}
		}
	}
}

// floodCells runs the random/fixed/pattern brushes across the writable
// driven cells, force-writing mirror targets. onlyEmpty restricts the pass
// to currently-empty cells.
func (e *Engine) floodCells(onlyEmpty bool) {
	bounds := e.floodBounds()
	restrict := e.regionSet()
	anchorR, anchorC := bounds.MinRow, bounds.MinCol

	for r := bounds.MinRow; r <= bounds.MaxRow; r++ {
		for c := bounds.MinCol; c <= bounds.MaxCol; c++ {
			idx := e.layout.Index(r, c)
			if !e.writable(idx) || !e.driven(idx) {
				continue
			}
			if onlyEmpty && e.grid[idx].IsPlaced() {
				continue
			}
			var t tile.Tile
			switch e.brush.Kind {
			case BrushRandom:
				t = e.randomPlacement(idx, e.hasPlacedNeighbor(idx, restrict), restrict)
			case BrushFixed:
				ft, ok := e.fixedTile()
				if !ok {
					return
				}
				t = ft
			case BrushPattern:
				if !e.pat.Valid() {
					return
				}
				t = e.sampledPatternTile(r-anchorR, c-anchorC)
			default:
				return
			}
			e.writeMirrored(idx, t, true)
		}
	}
}

// floodDraw builds one continuous edge-following path visiting the writable
// set in spiral order. Mirror projection does not apply: the path itself is
// the product.
func (e *Engine) floodDraw(onlyEmpty bool) {
	e.stroke = nil
	for _, idx := range e.spiralCells() {
		if onlyEmpty && e.grid[idx].IsPlaced() {
			continue
		}
		e.drawStep(idx, false)
	}
	e.finalizeStroke()
}

// spiralCells yields the writable cells of the flood bounds in clockwise
// spiral order from the outer ring inward.
func (e *Engine) spiralCells() []int {
	b := e.floodBounds()
	top, bottom, left, right := b.MinRow, b.MaxRow, b.MinCol, b.MaxCol
	var out []int
	push := func(r, c int) {
		idx := e.layout.Index(r, c)
		if e.writable(idx) {
			out = append(out, idx)
		}
	}
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			push(top, c)
		}
		top++
		for r := top; r <= bottom; r++ {
			push(r, right)
		}
		right--
		if top <= bottom {
			for c := right; c >= left; c-- {
				push(bottom, c)
			}
			bottom--
		}
		if left <= right {
			for r := bottom; r >= top; r-- {
				push(r, left)
			}
			left++
		}
	}
	return out
}
