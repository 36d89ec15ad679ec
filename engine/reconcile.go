package engine

import (
	"sort"

	"github.com/milk9111/tilecanvas/tile"
)

// ReconcileTiles repeatedly repairs writable placed cells whose placement
// is invalid against their current neighbors, treating empty and
// out-of-region neighbors as unconnected. Cells are visited in ascending
// placement order, so the oldest edits are repaired first and the newest
// strokes preserved. The loop stops at a fixed point or after
// max(8, rows+columns) passes; unsatisfiable neighborhoods are left as-is.
func (e *Engine) ReconcileTiles() {
	e.pushUndo()
	e.bulkFrame = true
	restrict := e.regionSet()

	maxPasses := e.layout.Rows + e.layout.Columns
	if maxPasses < 8 {
		maxPasses = 8
	}
	for pass := 0; pass < maxPasses; pass++ {
		cells := e.writableCells()
		placed := cells[:0:0]
		for _, i := range cells {
			if e.grid[i].IsPlaced() {
				placed = append(placed, i)
			}
		}
		sort.SliceStable(placed, func(a, b int) bool {
			return e.grid[placed[a]].PlacedOrder < e.grid[placed[b]].PlacedOrder
		})

		changed := false
		for _, i := range placed {
			t := e.grid[i]
			conns := e.table.ConnectionsOf(t)
			if conns == nil {
				continue
			}
			if e.placementValid(i, conns, true, restrict) {
				continue
			}
			p, ok := e.selectCompatible(e.compatibleCandidates(i, true, restrict))
			if !ok {
				continue
			}
			nt := tile.Tile{
				ImageIndex: p.Index,
				Rotation:   p.Rotation,
				MirrorX:    p.MirrorX,
				MirrorY:    p.MirrorY,
				Name:       e.table.Names[p.Index],
				// keep the original order so a repaired cell stays "old"
				PlacedOrder: t.PlacedOrder,
			}
			if nt != t {
				e.grid[i] = nt
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// ControlledRandomize redraws every writable placed cell uniformly from the
// variants sharing its exact transformed connection signature. Every edge
// of the connectivity graph is preserved; only which concrete tile and
// orientation realizes each signature may change. Non-iterative.
func (e *Engine) ControlledRandomize() {
	e.pushUndo()
	e.bulkFrame = true
	for _, i := range e.writableCells() {
		t := e.grid[i]
		if !t.IsPlaced() {
			continue
		}
		key := ""
		if conns := e.table.ConnectionsOf(t); conns != nil {
			key = conns.Key()
		}
		p, ok := e.selectCompatible(e.table.VariantsByKey[key])
		if !ok {
			continue
		}
		e.grid[i] = tile.Tile{
			ImageIndex:  p.Index,
			Rotation:    p.Rotation,
			MirrorX:     p.MirrorX,
			MirrorY:     p.MirrorY,
			Name:        e.table.Names[p.Index],
			PlacedOrder: t.PlacedOrder,
		}
	}
}
