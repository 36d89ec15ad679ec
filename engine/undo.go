package engine

import "github.com/milk9111/tilecanvas/tile"

func cloneGrid(g []tile.Tile) []tile.Tile {
	out := make([]tile.Tile, len(g))
	copy(out, g)
	return out
}

func gridsEqual(a, b []tile.Tile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pushUndo snapshots the full grid before a mutation. A snapshot equal to
// the current stack top is suppressed, the stack is capped at maxUndo with
// the oldest entry dropped, and nothing is pushed while undo/redo is
// replaying state.
func (e *Engine) pushUndo() {
	if e.restoring {
		return
	}
	if n := len(e.undoStack); n > 0 && gridsEqual(e.undoStack[n-1], e.grid) {
		return
	}
	e.undoStack = append(e.undoStack, cloneGrid(e.grid))
	if len(e.undoStack) > maxUndo {
		e.undoStack = e.undoStack[1:]
	}
	e.redoStack = nil
}

// PushUndoForDragStart snapshots once at the start of a drag; the presses
// that follow pass drag=true to HandlePress and skip their own snapshot.
func (e *Engine) PushUndoForDragStart() { e.pushUndo() }

// CanUndo reports whether an undo snapshot is available.
func (e *Engine) CanUndo() bool { return len(e.undoStack) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (e *Engine) CanRedo() bool { return len(e.redoStack) > 0 }

// Undo restores the most recent snapshot that differs from the present
// grid. Returns false when no such snapshot exists.
func (e *Engine) Undo() bool {
	for len(e.undoStack) > 0 {
		n := len(e.undoStack) - 1
		snap := e.undoStack[n]
		e.undoStack = e.undoStack[:n]
		if gridsEqual(snap, e.grid) {
			continue
		}
		e.redoStack = append(e.redoStack, cloneGrid(e.grid))
		if len(e.redoStack) > maxUndo {
			e.redoStack = e.redoStack[1:]
		}
		e.restoring = true
		e.grid = snap
		e.normalize()
		e.restoring = false
		return true
	}
	return false
}

// Redo re-applies the most recently undone state that differs from the
// present grid.
func (e *Engine) Redo() bool {
	for len(e.redoStack) > 0 {
		n := len(e.redoStack) - 1
		snap := e.redoStack[n]
		e.redoStack = e.redoStack[:n]
		if gridsEqual(snap, e.grid) {
			continue
		}
		e.undoStack = append(e.undoStack, cloneGrid(e.grid))
		if len(e.undoStack) > maxUndo {
			e.undoStack = e.undoStack[1:]
		}
		e.restoring = true
		e.grid = snap
		e.normalize()
		e.restoring = false
		return true
	}
	return false
}
