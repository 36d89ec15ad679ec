package engine

import "github.com/milk9111/tilecanvas/tile"

// directionBetween returns the direction from cell a to adjacent cell b,
// or -1 when the cells are not 8-neighbors.
func (e *Engine) directionBetween(a, b int) tile.Direction {
	ar, ac := e.layout.Position(a)
	br, bc := e.layout.Position(b)
	dr, dc := br-ar, bc-ac
	for d := tile.Direction(0); d < 8; d++ {
		r, c := d.Delta()
		if r == dr && c == dc {
			return d
		}
	}
	return -1
}

// exactTile picks a random placement whose transformed signature equals sig
// exactly; the draw brush matches connector count and position, not full
// neighbor validation. Returns the error marker when no source realizes the
// signature.
func (e *Engine) exactTile(sig tile.Signature) (tile.Tile, bool) {
	ps := e.table.VariantsByKey[sig.Key()]
	if e.favorites != nil {
		filtered := ps[:0:0]
		for _, p := range ps {
			if e.favorites[p.Index] {
				filtered = append(filtered, p)
			}
		}
		ps = filtered
	}
	if p, ok := e.selectCompatible(ps); ok {
		return e.placementTile(p), true
	}
	return tile.Error(), false
}

// drawStep extends the active stroke to a cell. The degree of every placed
// tile matches its role: an isolated tile has no connectors, the stroke head
// one, interior tiles two. Extending rewrites the immediately preceding
// stroke tile so it connects to both its predecessor and the new head; no
// earlier tile is touched.
func (e *Engine) drawStep(index int, force bool) {
	n := len(e.stroke)
	if n > 0 && e.stroke[n-1] == index {
		return
	}
	if n == 0 {
		t, _ := e.exactTile(tile.Signature{})
		e.writeMirrored(index, t, force)
		e.stroke = append(e.stroke, index)
		return
	}

	prev := e.stroke[n-1]
	d := e.directionBetween(prev, index)
	if d < 0 {
		// the gesture jumped; close this segment and start another
		e.finalizeStroke()
		e.drawStep(index, force)
		return
	}

	// rewrite the previous tile: connector back to its own predecessor
	// (when it has one) plus a connector toward the new head
	var prevSig tile.Signature
	if n >= 2 {
		if back := e.directionBetween(prev, e.stroke[n-2]); back >= 0 {
			prevSig[back] = true
		}
	}
	prevSig[d] = true
	if t, ok := e.exactTile(prevSig); ok {
		e.writeMirrored(prev, t, force)
	}

	var headSig tile.Signature
	headSig[tile.Opposite(d)] = true
	t, _ := e.exactTile(headSig)
	e.writeMirrored(index, t, force)
	e.stroke = append(e.stroke, index)
}

// finalizeStroke sets the stroke head's signature to match only its one
// real neighbor (or the all-false signature for a single-tile stroke) and
// discards the stroke buffer.
func (e *Engine) finalizeStroke() {
	n := len(e.stroke)
	if n == 0 {
		return
	}
	head := e.stroke[n-1]
	var sig tile.Signature
	if n >= 2 {
		if back := e.directionBetween(head, e.stroke[n-2]); back >= 0 {
			sig[back] = true
		}
	}
	if e.grid[head].IsPlaced() || e.grid[head].IsError() {
		if t, ok := e.exactTile(sig); ok {
			e.writeMirrored(head, t, false)
		}
	}
	e.stroke = nil
}

// ClearDrawStroke finalizes and discards the in-progress draw stroke. The
// caller invokes it at gesture end; it is also safe to call with no active
// stroke.
func (e *Engine) ClearDrawStroke() { e.finalizeStroke() }

// StrokeCells returns the in-progress draw stroke (full-grid indices) for
// overlay rendering.
func (e *Engine) StrokeCells() []int { return e.stroke }
