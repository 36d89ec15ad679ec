package engine

import "github.com/milk9111/tilecanvas/tile"

// mirrorTarget is a derived placement produced by the mirror projector.
type mirrorTarget struct {
	index int
	tile  tile.Tile
}

// mirrorTargets projects an authoritative placement to its 0-3 mirror-image
// placements. The horizontal target reflects the column about the grid's
// vertical midline and flips mirrorX; the vertical target reflects the row
// and flips mirrorY; with both toggles active the diagonal target reflects
// both axes and advances rotation by 180 degrees with the mirror flags
// unchanged, since a half turn already swaps the mirror roles.
func (e *Engine) mirrorTargets(index int, t tile.Tile) []mirrorTarget {
	if !e.mirrorH && !e.mirrorV {
		return nil
	}
	r, c := e.layout.Position(index)
	hr, hc := r, e.layout.Columns-1-c
	vr, vc := e.layout.Rows-1-r, c

	var out []mirrorTarget
	add := func(idx int, mt tile.Tile) {
		if idx == index {
			return
		}
		for _, existing := range out {
			if existing.index == idx {
				return
			}
		}
		out = append(out, mirrorTarget{index: idx, tile: mt})
	}

	if e.mirrorH {
		mt := t
		if mt.IsPlaced() {
			mt.MirrorX = !mt.MirrorX
		}
		add(e.layout.Index(hr, hc), mt)
	}
	if e.mirrorV {
		mt := t
		if mt.IsPlaced() {
			mt.MirrorY = !mt.MirrorY
		}
		add(e.layout.Index(vr, vc), mt)
	}
	if e.mirrorH && e.mirrorV {
		mt := t
		if mt.IsPlaced() {
			mt.Rotation = (mt.Rotation + 180) % 360
		}
		add(e.layout.Index(vr, hc), mt)
	}
	return out
}

// driven reports whether a cell belongs to the independent half/quadrant
// that batch operations iterate directly; its mirror counterparts are
// always derived.
func (e *Engine) driven(index int) bool {
	if !e.mirrorH && !e.mirrorV {
		return true
	}
	r, c := e.layout.Position(index)
	if e.mirrorH && c > (e.layout.Columns-1)/2 {
		return false
	}
	if e.mirrorV && r > (e.layout.Rows-1)/2 {
		return false
	}
	return true
}

// writeMirrored writes the driver cell and its mirror targets. Unless force
// is set, a non-driver target is only overwritten when currently empty,
// protecting manual edits on the mirrored side.
func (e *Engine) writeMirrored(index int, t tile.Tile, force bool) {
	if e.writable(index) {
		e.grid[index] = t
	}
	for _, mt := range e.mirrorTargets(index, t) {
		if !e.writable(mt.index) {
			continue
		}
		if !force && e.grid[mt.index].IsPlaced() {
			continue
		}
		e.grid[mt.index] = mt.tile
	}
}
