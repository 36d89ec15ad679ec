package engine

// BrushKind selects the active editing tool.
type BrushKind int

const (
	// BrushRandom places a random legal tile for the pressed cell.
	BrushRandom BrushKind = iota
	// BrushFixed places one selected tile/variant.
	BrushFixed
	// BrushErase clears cells.
	BrushErase
	// BrushClone copies cells from a previously chosen source by
	// torus-wrapped translation.
	BrushClone
	// BrushPattern stamps the active pattern tiled from a gesture anchor.
	BrushPattern
	// BrushDraw follows the gesture as a connected stroke of edge-matching
	// tiles.
	BrushDraw
)

// Brush describes the active tool. Index/SourceName/Rotation/MirrorX/MirrorY
// only apply to the fixed brush; SourceName, when set, is authoritative over
// Index so a selection survives palette reordering.
type Brush struct {
	Kind       BrushKind
	Index      int
	SourceName string
	Rotation   int
	MirrorX    bool
	MirrorY    bool
}

// Region is an inclusive rectangle in full-grid coordinates.
type Region struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Width returns the number of columns covered.
func (r Region) Width() int { return r.MaxCol - r.MinCol + 1 }

// Height returns the number of rows covered.
func (r Region) Height() int { return r.MaxRow - r.MinRow + 1 }

// Contains reports whether (row, col) lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}
