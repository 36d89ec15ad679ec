// Package engine implements the tile placement and connection-compatibility
// engine: placement validation and candidate generation, the brush/tool
// state machine, mirroring, flood and repair algorithms, zoom-region
// remapping, and bounded undo/redo over an in-memory grid.
//
// The engine is single-threaded and synchronous: every operation runs to
// completion inside the caller's invocation, performs no I/O, and never
// panics for control flow. Illegal placements degrade to the sentinel tile
// values defined in the tile package.
package engine

import (
	"math/rand"
	"time"

	"github.com/milk9111/tilecanvas/layout"
	"github.com/milk9111/tilecanvas/pattern"
	"github.com/milk9111/tilecanvas/tile"
)

const (
	maxUndo = 50
	// rollTTL is how long a random-brush result is cached per cell so a
	// rapid re-press does not re-roll.
	rollTTL = 150 * time.Millisecond
)

// Config carries everything an Engine needs at construction. Rand and Now
// default to the global source and wall clock; injecting them makes every
// stateful behavior deterministic under test.
type Config struct {
	Sources []string
	Layout  layout.Grid
	// AllowEdgeConnections permits connectors to point off-grid. When
	// false, a candidate whose connector points off the grid is rejected.
	AllowEdgeConnections bool
	// RandomRequiresLegal controls the failure sentinel of random
	// placement: true degrades to an empty cell, false to the visible
	// error marker.
	RandomRequiresLegal bool
	Rand                *rand.Rand
	Now                 func() time.Time
}

type roll struct {
	t  tile.Tile
	at time.Time
}

// Engine owns one canvas: the grid array, the undo/redo stacks, and all
// transient tool state. One engine instance per canvas; no concurrent
// writers are assumed.
type Engine struct {
	layout layout.Grid
	table  *tile.Table
	// tables caches compatibility tables by source-list hash so flipping
	// between palettes does not rebuild.
	tables map[string]*tile.Table
	grid   []tile.Tile

	brush   Brush
	pat     *pattern.Pattern
	mirrorH bool
	mirrorV bool
	locked  map[int]bool
	zoom    *Region
	// favorites restricts candidate generation to a sub-palette of source
	// indices. Nil means all sources.
	favorites map[int]bool

	allowEdge           bool
	randomRequiresLegal bool
	rng                 *rand.Rand
	now                 func() time.Time

	undoStack [][]tile.Tile
	redoStack [][]tile.Tile
	restoring bool

	placeCounter  int
	cloneSource   int
	cloneAnchor   int
	cloneSample   int
	patternAnchor int
	stroke        []int
	lastRoll      map[int]roll
	bulkFrame     bool
}

// New builds an engine for the given sources and layout.
func New(cfg Config) *Engine {
	e := &Engine{
		layout:              cfg.Layout,
		tables:              map[string]*tile.Table{},
		allowEdge:           cfg.AllowEdgeConnections,
		randomRequiresLegal: cfg.RandomRequiresLegal,
		rng:                 cfg.Rand,
		now:                 cfg.Now,
		cloneSource:         -1,
		cloneAnchor:         -1,
		cloneSample:         -1,
		patternAnchor:       -1,
		lastRoll:            map[int]roll{},
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.now == nil {
		e.now = time.Now
	}
	e.table = e.tableFor(cfg.Sources)
	e.normalize()
	return e
}

func (e *Engine) tableFor(names []string) *tile.Table {
	t := tile.NewTable(names)
	if cached, ok := e.tables[t.Hash()]; ok {
		return cached
	}
	e.tables[t.Hash()] = t
	return t
}

// normalize re-derives the grid length from the current layout and clamps
// stale image indices, repairing rather than rejecting.
func (e *Engine) normalize() {
	cells := e.layout.Cells()
	if cells < 0 {
		cells = 0
	}
	for len(e.grid) < cells {
		e.grid = append(e.grid, tile.Empty())
	}
	e.grid = e.grid[:cells]
	for i, t := range e.grid {
		if t.ImageIndex >= e.table.Len() {
			e.grid[i] = tile.Empty()
		}
	}
}

func (e *Engine) nextOrder() int {
	e.placeCounter++
	return e.placeCounter
}

// Layout returns the current grid geometry.
func (e *Engine) Layout() layout.Grid { return e.layout }

// Tiles returns the full grid. The slice is the engine's own storage; the
// UI treats it as read-only.
func (e *Engine) Tiles() []tile.Tile { return e.grid }

// Table exposes the active compatibility table.
func (e *Engine) Table() *tile.Table { return e.table }

// SetLayout replaces the grid geometry and re-normalizes the grid array.
func (e *Engine) SetLayout(g layout.Grid) {
	if g == e.layout {
		return
	}
	e.pushUndo()
	e.layout = g
	e.resetTransient()
	e.normalize()
}

// SetSources replaces the ordered tile-source list. Existing grid content
// is re-resolved by name, then by transformed signature, against the new
// table.
func (e *Engine) SetSources(names []string) {
	old := e.table
	nu := e.tableFor(names)
	if nu == old {
		return
	}
	e.table = nu
	for i, t := range e.grid {
		e.grid[i] = nu.Remap(t, old)
	}
	e.resetTransient()
	e.normalize()
}

// SetBrush selects the active tool and resets transient gesture state.
func (e *Engine) SetBrush(b Brush) {
	if b == e.brush {
		return
	}
	e.brush = b
	e.resetTransient()
}

// Brush returns the active tool.
func (e *Engine) Brush() Brush { return e.brush }

// SetPattern installs the stamp used by the pattern brush.
func (e *Engine) SetPattern(p *pattern.Pattern) {
	e.pat = p
	e.patternAnchor = -1
}

// SetMirror toggles horizontal/vertical mirroring.
func (e *Engine) SetMirror(horizontal, vertical bool) {
	e.mirrorH = horizontal
	e.mirrorV = vertical
}

// SetLocked replaces the set of indices immune to every mutating operation.
// Indices are full-grid.
func (e *Engine) SetLocked(indices []int) {
	if indices == nil {
		e.locked = nil
		return
	}
	e.locked = make(map[int]bool, len(indices))
	for _, i := range indices {
		e.locked[i] = true
	}
}

// SetFavorites restricts random candidate generation to a sub-palette of
// source indices. Nil removes the restriction.
func (e *Engine) SetFavorites(indices []int) {
	if indices == nil {
		e.favorites = nil
		return
	}
	e.favorites = make(map[int]bool, len(indices))
	for _, i := range indices {
		e.favorites[i] = true
	}
}

// resetTransient discards gesture state: clone source/anchor, the pattern
// anchor, the draw stroke buffer, and the random re-roll cache.
func (e *Engine) resetTransient() {
	e.cloneSource = -1
	e.cloneAnchor = -1
	e.cloneSample = -1
	e.patternAnchor = -1
	e.stroke = nil
	e.lastRoll = map[int]roll{}
}

// EndFrame clears the transient bulk-update flag. The host calls it once
// per animation frame; between a batch operation and the next EndFrame,
// single-press handling from the same gesture is suppressed.
func (e *Engine) EndFrame() { e.bulkFrame = false }

// ResetTiles clears every writable cell.
func (e *Engine) ResetTiles() {
	e.pushUndo()
	for _, i := range e.writableCells() {
		e.grid[i] = tile.Empty()
	}
	e.resetTransient()
}

// LoadTiles replaces the grid with externally stored content, re-resolving
// identity by name where present (with a signature rematch for unknown
// names), then normalizes.
func (e *Engine) LoadTiles(tiles []tile.Tile) {
	e.pushUndo()
	e.grid = make([]tile.Tile, len(tiles))
	maxOrder := 0
	for i, t := range tiles {
		if t.Name != "" {
			t = e.table.Rematch(t)
		}
		if t.ImageIndex >= e.table.Len() {
			t = tile.Tile{ImageIndex: tile.EmptyIndex}
		}
		if t.PlacedOrder > maxOrder {
			maxOrder = t.PlacedOrder
		}
		e.grid[i] = t
	}
	e.placeCounter = maxOrder
	e.resetTransient()
	e.normalize()
}

// locked cells and cells outside the active zoom region are not writable.
func (e *Engine) writable(index int) bool {
	if index < 0 || index >= len(e.grid) {
		return false
	}
	if e.locked[index] {
		return false
	}
	if e.zoom != nil {
		r, c := e.layout.Position(index)
		if !e.zoom.Contains(r, c) {
			return false
		}
	}
	return true
}

// writableCells returns every writable full-grid index in row-major order.
func (e *Engine) writableCells() []int {
	out := make([]int, 0, len(e.grid))
	for i := range e.grid {
		if e.writable(i) {
			out = append(out, i)
		}
	}
	return out
}

// regionSet returns the active zoom region as an index set, or nil when the
// whole grid is visible. Neighbor lookups treat indices outside the set as
// off-grid.
func (e *Engine) regionSet() map[int]bool {
	if e.zoom == nil {
		return nil
	}
	set := map[int]bool{}
	for r := e.zoom.MinRow; r <= e.zoom.MaxRow; r++ {
		for c := e.zoom.MinCol; c <= e.zoom.MaxCol; c++ {
			if e.layout.InBounds(r, c) {
				set[e.layout.Index(r, c)] = true
			}
		}
	}
	return set
}

// setTile writes a cell, respecting locked cells.
func (e *Engine) setTile(index int, t tile.Tile) {
	if index < 0 || index >= len(e.grid) || e.locked[index] {
		return
	}
	e.grid[index] = t
}
