// Package layout computes grid dimensions and tile pixel size from viewport
// constraints.
package layout

// MaxCells caps the total cell count of any computed grid.
const MaxCells = 512

// Grid describes the computed grid geometry. Tiles are square; the gap
// between adjacent tiles is supplied by the caller at compute time.
type Grid struct {
	Rows     int
	Columns  int
	TileSize int
}

// Cells returns the total cell count.
func (g Grid) Cells() int { return g.Rows * g.Columns }

// Index returns the flat row-major index of (row, col).
func (g Grid) Index(row, col int) int { return row*g.Columns + col }

// Position returns the (row, col) of a flat index.
func (g Grid) Position(index int) (row, col int) {
	return index / g.Columns, index % g.Columns
}

// InBounds reports whether (row, col) lies on the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Columns
}

// fitCount returns how many tiles of the given size fit along an axis of
// the given length with the given gap between them.
func fitCount(available, gap, tileSize int) int {
	if tileSize <= 0 {
		return 0
	}
	n := (available + gap) / (tileSize + gap)
	if n < 1 {
		n = 1
	}
	return n
}

// Compute picks the largest tile size not exceeding preferredTileSize that
// still fits at least one full row and column, then fills the viewport with
// as many cells as fit. Tile size is maximized first, cell count second.
func Compute(availableWidth, availableHeight, gap, preferredTileSize int) Grid {
	size := preferredTileSize
	if size < 1 {
		size = 1
	}
	if size > availableWidth {
		size = availableWidth
	}
	if size > availableHeight {
		size = availableHeight
	}
	if size < 1 {
		size = 1
	}
	g := Grid{
		Rows:     fitCount(availableHeight, gap, size),
		Columns:  fitCount(availableWidth, gap, size),
		TileSize: size,
	}
	return capCells(g)
}

// ComputeFixed fits a tile size to exactly the requested row and column
// counts. The counts are still subject to the MaxCells cap.
func ComputeFixed(availableWidth, availableHeight, gap, fixedRows, fixedColumns int) Grid {
	g := Grid{Rows: fixedRows, Columns: fixedColumns}
	if g.Rows < 1 {
		g.Rows = 1
	}
	if g.Columns < 1 {
		g.Columns = 1
	}
	g = capCells(g)
	w := (availableWidth - gap*(g.Columns-1)) / g.Columns
	h := (availableHeight - gap*(g.Rows-1)) / g.Rows
	size := w
	if h < size {
		size = h
	}
	if size < 1 {
		size = 1
	}
	g.TileSize = size
	return g
}

// capCells shrinks an oversized grid toward a square aspect ratio by
// trimming the longer axis until the cell count fits.
func capCells(g Grid) Grid {
	for g.Rows*g.Columns > MaxCells {
		if g.Columns >= g.Rows {
			g.Columns--
		} else {
			g.Rows--
		}
	}
	return g
}
