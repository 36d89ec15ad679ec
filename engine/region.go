package engine

import "github.com/milk9111/tilecanvas/tile"

// SetZoom activates (or clears, with nil) the zoom region. While a region
// is active the engine exposes a display grid addressed by local indices;
// every algorithm still runs on full-grid indices.
func (e *Engine) SetZoom(r *Region) {
	if r == nil {
		e.zoom = nil
		e.resetTransient()
		return
	}
	clamped := *r
	if clamped.MinRow < 0 {
		clamped.MinRow = 0
	}
	if clamped.MinCol < 0 {
		clamped.MinCol = 0
	}
	if clamped.MaxRow > e.layout.Rows-1 {
		clamped.MaxRow = e.layout.Rows - 1
	}
	if clamped.MaxCol > e.layout.Columns-1 {
		clamped.MaxCol = e.layout.Columns - 1
	}
	if clamped.MinRow > clamped.MaxRow || clamped.MinCol > clamped.MaxCol {
		return
	}
	e.zoom = &clamped
	e.resetTransient()
}

// Zoom returns the active zoom region, or nil.
func (e *Engine) Zoom() *Region { return e.zoom }

// VisibleToFull converts a local (zoomed) index to a full-grid index, or -1
// when it falls outside the grid.
func (e *Engine) VisibleToFull(visibleIndex int) int {
	if e.zoom == nil {
		if visibleIndex < 0 || visibleIndex >= len(e.grid) {
			return -1
		}
		return visibleIndex
	}
	w := e.zoom.Width()
	if w <= 0 || visibleIndex < 0 || visibleIndex >= w*e.zoom.Height() {
		return -1
	}
	r := e.zoom.MinRow + visibleIndex/w
	c := e.zoom.MinCol + visibleIndex%w
	if !e.layout.InBounds(r, c) {
		return -1
	}
	return e.layout.Index(r, c)
}

// FullToVisible converts a full-grid index into the zoom region's local
// space, or -1 when the cell is not visible.
func (e *Engine) FullToVisible(index int) int {
	if e.zoom == nil {
		if index < 0 || index >= len(e.grid) {
			return -1
		}
		return index
	}
	r, c := e.layout.Position(index)
	if !e.zoom.Contains(r, c) {
		return -1
	}
	return (r-e.zoom.MinRow)*e.zoom.Width() + (c - e.zoom.MinCol)
}

// VisibleTiles returns the displayable tile slice: the zoom region's cells
// in local row-major order, or the full grid when no region is active.
func (e *Engine) VisibleTiles() []tile.Tile {
	if e.zoom == nil {
		return e.grid
	}
	out := make([]tile.Tile, 0, e.zoom.Width()*e.zoom.Height())
	for r := e.zoom.MinRow; r <= e.zoom.MaxRow; r++ {
		for c := e.zoom.MinCol; c <= e.zoom.MaxCol; c++ {
			out = append(out, e.grid[e.layout.Index(r, c)])
		}
	}
	return out
}

// MoveRegion relocates a same-length set of cells. Source cells are
// cleared; locked cells neither move nor get overwritten. Indices are in
// visible coordinates.
func (e *Engine) MoveRegion(fromIndices, toIndices []int) {
	if len(fromIndices) != len(toIndices) || len(fromIndices) == 0 {
		return
	}
	e.pushUndo()
	moved := make([]tile.Tile, len(fromIndices))
	from := make([]int, len(fromIndices))
	to := make([]int, len(toIndices))
	for i := range fromIndices {
		from[i] = e.VisibleToFull(fromIndices[i])
		to[i] = e.VisibleToFull(toIndices[i])
		if from[i] >= 0 {
			moved[i] = e.grid[from[i]]
		} else {
			moved[i] = tile.Empty()
		}
	}
	for _, f := range from {
		if f >= 0 && e.writable(f) {
			e.grid[f] = tile.Empty()
		}
	}
	for i, t := range to {
		if t >= 0 && e.writable(t) && from[i] >= 0 && e.writable(from[i]) {
			e.grid[t] = moved[i]
		}
	}
}

// RotateRegion rotates a rectangular sub-grid 90 degrees clockwise. The
// dimensions swap, every tile's own orientation is recomposed by the group
// rotation, and the rotated block is re-centered on the original center.
// Bounds are in visible coordinates.
func (e *Engine) RotateRegion(minRow, maxRow, minCol, maxCol int) {
	if e.zoom != nil {
		minRow += e.zoom.MinRow
		maxRow += e.zoom.MinRow
		minCol += e.zoom.MinCol
		maxCol += e.zoom.MinCol
	}
	if minRow > maxRow || minCol > maxCol {
		return
	}
	if !e.layout.InBounds(minRow, minCol) || !e.layout.InBounds(maxRow, maxCol) {
		return
	}
	e.pushUndo()

	h := maxRow - minRow + 1
	w := maxCol - minCol + 1
	src := make([]tile.Tile, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			src[r*w+c] = e.grid[e.layout.Index(minRow+r, minCol+c)]
		}
	}
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			idx := e.layout.Index(r, c)
			if e.writable(idx) {
				e.grid[idx] = tile.Empty()
			}
		}
	}

	// rotated block is w tall and h wide; center it on the original
	// center (doubled coordinates avoid half-cell rounding drift)
	newMinRow := (minRow + maxRow - (w - 1)) / 2
	newMinCol := (minCol + maxCol - (h - 1)) / 2
	quarter := tile.Orient{Rotation: 90}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			t := src[r*w+c]
			nr := newMinRow + c
			nc := newMinCol + (h - 1 - r)
			if !e.layout.InBounds(nr, nc) {
				continue
			}
			idx := e.layout.Index(nr, nc)
			if !e.writable(idx) {
				continue
			}
			if t.IsPlaced() {
				o := tile.Compose(tile.Orient{Rotation: t.Rotation, MirrorX: t.MirrorX, MirrorY: t.MirrorY}, quarter)
				t.Rotation = o.Rotation
				t.MirrorX = o.MirrorX
				t.MirrorY = o.MirrorY
			}
			e.grid[idx] = t
		}
	}
}
