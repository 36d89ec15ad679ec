package engine

import "github.com/milk9111/tilecanvas/tile"

// neighborIndex returns the full-grid index of the neighbor of cell in
// direction d, or -1 when it falls off the grid or outside the restricting
// set.
func (e *Engine) neighborIndex(cell int, d tile.Direction, restrict map[int]bool) int {
	r, c := e.layout.Position(cell)
	dr, dc := d.Delta()
	nr, nc := r+dr, c+dc
	if !e.layout.InBounds(nr, nc) {
		return -1
	}
	idx := e.layout.Index(nr, nc)
	if restrict != nil && !restrict[idx] {
		return -1
	}
	return idx
}

// placementValid checks a candidate signature against the 8 neighbors of a
// cell. Nil signatures (non-directional tiles) are valid anywhere.
//
// Off-grid neighbors constrain the candidate's connector to false unless
// edge connections are allowed. Empty neighbors are unconstrained by
// default; treatEmptyAsNoConnection forces their shared edge to false,
// which reconcile and neighbor-aware random paint use to avoid tilings
// that only work because everything nearby is still blank.
func (e *Engine) placementValid(cell int, conns *tile.Signature, treatEmptyAsNoConnection bool, restrict map[int]bool) bool {
	if conns == nil {
		return true
	}
	for d := tile.Direction(0); d < 8; d++ {
		idx := e.neighborIndex(cell, d, restrict)
		if idx < 0 {
			if !e.allowEdge && conns[d] {
				return false
			}
			continue
		}
		n := e.grid[idx]
		if !n.IsPlaced() {
			if treatEmptyAsNoConnection && conns[d] {
				return false
			}
			continue
		}
		nc := e.table.ConnectionsOf(n)
		if nc == nil {
			continue
		}
		if conns[d] != nc[tile.Opposite(d)] {
			return false
		}
	}
	return true
}

// compatibleCandidates enumerates every (source, rotation, mirror)
// combination legal at the cell, honoring the favorites sub-palette.
// Non-directional sources are always candidates.
func (e *Engine) compatibleCandidates(cell int, treatEmptyAsNoConnection bool, restrict map[int]bool) []tile.Placement {
	var out []tile.Placement
	for i := 0; i < e.table.Len(); i++ {
		if e.favorites != nil && !e.favorites[i] {
			continue
		}
		for _, v := range e.table.VariantsByIndex[i] {
			if v.Connections == nil || e.placementValid(cell, v.Connections, treatEmptyAsNoConnection, restrict) {
				out = append(out, tile.Placement{
					Index: i, Rotation: v.Rotation, MirrorX: v.MirrorX, MirrorY: v.MirrorY,
				})
			}
		}
	}
	return out
}

// selectCompatible draws uniformly from the candidate list, or returns
// false when the list is empty.
func (e *Engine) selectCompatible(cands []tile.Placement) (tile.Placement, bool) {
	if len(cands) == 0 {
		return tile.Placement{}, false
	}
	return cands[e.rng.Intn(len(cands))], true
}

// placementTile materializes a placement as a stored tile with a fresh
// placement order.
func (e *Engine) placementTile(p tile.Placement) tile.Tile {
	return tile.Tile{
		ImageIndex:  p.Index,
		Rotation:    p.Rotation,
		MirrorX:     p.MirrorX,
		MirrorY:     p.MirrorY,
		Name:        e.table.Names[p.Index],
		PlacedOrder: e.nextOrder(),
	}
}

// randomPlacement wraps candidate selection with the failure policy: an
// empty sentinel when failed placement is tolerated, else the visible error
// marker.
func (e *Engine) randomPlacement(cell int, treatEmptyAsNoConnection bool, restrict map[int]bool) tile.Tile {
	if p, ok := e.selectCompatible(e.compatibleCandidates(cell, treatEmptyAsNoConnection, restrict)); ok {
		return e.placementTile(p)
	}
	if e.randomRequiresLegal {
		return tile.Empty()
	}
	return tile.Error()
}

// hasPlacedNeighbor reports whether any of the 8 neighbors holds a tile.
func (e *Engine) hasPlacedNeighbor(cell int, restrict map[int]bool) bool {
	for d := tile.Direction(0); d < 8; d++ {
		if idx := e.neighborIndex(cell, d, restrict); idx >= 0 && e.grid[idx].IsPlaced() {
			return true
		}
	}
	return false
}
