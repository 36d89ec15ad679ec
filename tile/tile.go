// Package tile provides the tile value model, the 8-direction connection
// signature codec, the rotation/mirror orientation group, and the
// compatibility table built from an ordered tile-source list.
package tile

// Reserved image index values.
const (
	// EmptyIndex marks a cell with no tile in it.
	EmptyIndex = -1
	// ErrorIndex marks a cell where a placement was requested but no legal
	// candidate existed. It renders as a visible error marker.
	ErrorIndex = -2
)

// Tile is one cell of the grid. ImageIndex refers to the active tile-source
// list; Name, when set, is authoritative over ImageIndex so user content
// survives reorderings of that list. PlacedOrder is assigned by the engine
// and orders reconcile passes (oldest edits repaired first).
type Tile struct {
	ImageIndex  int    `json:"imageIndex"`
	Rotation    int    `json:"rotation,omitempty"`
	MirrorX     bool   `json:"mirrorX,omitempty"`
	MirrorY     bool   `json:"mirrorY,omitempty"`
	Name        string `json:"name,omitempty"`
	PlacedOrder int    `json:"placedOrder,omitempty"`
}

// Empty returns the tile value for an empty cell.
func Empty() Tile { return Tile{ImageIndex: EmptyIndex} }

// Error returns the visible "no legal placement" marker tile.
func Error() Tile { return Tile{ImageIndex: ErrorIndex} }

func (t Tile) IsEmpty() bool { return t.ImageIndex == EmptyIndex }
func (t Tile) IsError() bool { return t.ImageIndex == ErrorIndex }

// IsPlaced reports whether the cell holds a real tile (not empty, not the
// error marker).
func (t Tile) IsPlaced() bool { return t.ImageIndex >= 0 }
