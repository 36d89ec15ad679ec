package engine

import "github.com/milk9111/tilecanvas/tile"

// HandlePress applies the active brush to one visible cell. drag marks a
// continuation of an in-progress gesture: the undo snapshot is skipped (the
// caller pushed one at drag start) and gesture anchors are not reset.
//
// Gesture disambiguation is the caller's job; the engine only distinguishes
// first press from continuation.
func (e *Engine) HandlePress(visibleIndex int, drag bool) {
	if e.bulkFrame {
		return
	}
	index := e.VisibleToFull(visibleIndex)
	if index < 0 {
		return
	}
	if !drag {
		e.startGesture(index)
	}
	if !e.writable(index) {
		return
	}
	if !drag {
		e.pushUndo()
	}

	switch e.brush.Kind {
	case BrushRandom:
		e.pressRandom(index)
	case BrushFixed:
		if t, ok := e.fixedTile(); ok {
			e.writeMirrored(index, t, false)
		}
	case BrushErase:
		e.writeMirrored(index, tile.Empty(), false)
	case BrushClone:
		e.pressClone(index)
	case BrushPattern:
		e.pressPattern(index)
	case BrushDraw:
		e.drawStep(index, false)
	}
}

// startGesture resets per-gesture anchors at the first press of a gesture.
func (e *Engine) startGesture(index int) {
	e.patternAnchor = index
	if e.brush.Kind == BrushClone && e.cloneSource >= 0 {
		e.cloneAnchor = index
	}
	if e.brush.Kind == BrushDraw && len(e.stroke) > 0 {
		e.finalizeStroke()
	}
}

func (e *Engine) pressRandom(index int) {
	if cached, ok := e.lastRoll[index]; ok && e.now().Sub(cached.at) < rollTTL {
		e.writeMirrored(index, cached.t, false)
		return
	}
	restrict := e.regionSet()
	t := e.randomPlacement(index, e.hasPlacedNeighbor(index, restrict), restrict)
	e.lastRoll[index] = roll{t: t, at: e.now()}
	e.writeMirrored(index, t, false)
}

// fixedTile resolves the fixed brush's selection against the current source
// list, by name when one is recorded.
func (e *Engine) fixedTile() (tile.Tile, bool) {
	idx := e.brush.Index
	if e.brush.SourceName != "" {
		if i := e.table.IndexOf(e.brush.SourceName); i >= 0 {
			idx = i
		}
	}
	if idx < 0 || idx >= e.table.Len() {
		return tile.Tile{}, false
	}
	return tile.Tile{
		ImageIndex:  idx,
		Rotation:    e.brush.Rotation,
		MirrorX:     e.brush.MirrorX,
		MirrorY:     e.brush.MirrorY,
		Name:        e.table.Names[idx],
		PlacedOrder: e.nextOrder(),
	}, true
}

// pressClone implements the clone tool: the first press with no active
// source records the source cell; once a source is set, the gesture anchor
// (recorded at gesture start) and the destination offset select the copied
// cell with torus wrap-around.
func (e *Engine) pressClone(index int) {
	if e.cloneSource < 0 {
		e.cloneSource = index
		return
	}
	if e.cloneAnchor < 0 {
		e.cloneAnchor = index
	}
	sr, sc := e.layout.Position(e.cloneSource)
	ar, ac := e.layout.Position(e.cloneAnchor)
	dr, dc := e.layout.Position(index)
	fr := wrap(sr+dr-ar, e.layout.Rows)
	fc := wrap(sc+dc-ac, e.layout.Columns)
	e.cloneSample = e.layout.Index(fr, fc)
	t := e.grid[e.cloneSample]
	if t.IsPlaced() {
		t.PlacedOrder = e.nextOrder()
	}
	e.writeMirrored(index, t, false)
}

func wrap(a, n int) int { return ((a % n) + n) % n }

// SetCloneSource resets the clone tool to copy from the pressed cell (the
// long-press action). Index is in visible coordinates.
func (e *Engine) SetCloneSource(visibleIndex int) {
	index := e.VisibleToFull(visibleIndex)
	if index < 0 {
		return
	}
	e.cloneSource = index
	e.cloneAnchor = -1
	e.cloneSample = -1
}

// ClearCloneSource discards the clone source, anchor, and sample.
func (e *Engine) ClearCloneSource() {
	e.cloneSource = -1
	e.cloneAnchor = -1
	e.cloneSample = -1
}

// CloneSource returns the active clone source index (full-grid, -1 none),
// for overlay rendering.
func (e *Engine) CloneSource() int { return e.cloneSource }

// CloneAnchor returns the active clone anchor index (full-grid, -1 none).
func (e *Engine) CloneAnchor() int { return e.cloneAnchor }

// CloneSample returns the cell the last clone press copied from (full-grid,
// -1 when no clone press has happened), for overlay rendering.
func (e *Engine) CloneSample() int { return e.cloneSample }

func (e *Engine) pressPattern(index int) {
	if !e.pat.Valid() {
		return
	}
	if e.patternAnchor < 0 {
		e.patternAnchor = index
	}
	ar, ac := e.layout.Position(e.patternAnchor)
	r, c := e.layout.Position(index)
	t := e.sampledPatternTile(r-ar, c-ac)
	e.writeMirrored(index, t, false)
}

// sampledPatternTile samples the stamp and re-resolves the sampled tile
// against the current source list.
func (e *Engine) sampledPatternTile(dRow, dCol int) tile.Tile {
	t := e.pat.Sample(dRow, dCol)
	if !t.IsPlaced() {
		return t
	}
	if t.Name != "" {
		if i := e.table.IndexOf(t.Name); i >= 0 {
			t.ImageIndex = i
		} else {
			return tile.Empty()
		}
	} else if t.ImageIndex >= e.table.Len() {
		return tile.Empty()
	}
	if t.Name == "" {
		t.Name = e.table.Names[t.ImageIndex]
	}
	t.PlacedOrder = e.nextOrder()
	return t
}
