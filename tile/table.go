package tile

import (
	"hash/fnv"
	"strconv"
)

// Rotations enumerates the four quarter-turn rotations in degrees.
var Rotations = [4]int{0, 90, 180, 270}

// Variant is one rotation/mirror rendition of a tile source with its
// transformed connection signature precomputed.
type Variant struct {
	Rotation    int
	MirrorX     bool
	MirrorY     bool
	Connections *Signature
	Key         string
}

// Placement identifies a concrete tile choice: a source index plus an
// orientation.
type Placement struct {
	Index    int
	Rotation int
	MirrorX  bool
	MirrorY  bool
}

// Table precomputes, for an ordered tile-source name list, every variant of
// every source and a signature-key reverse index. It is rebuilt whenever
// the ordered name list changes.
type Table struct {
	Names              []string
	ConnectionsByIndex []*Signature
	// VariantsByIndex holds exactly 16 variants per source, enumerated
	// rotation ascending, then mirrorX, then mirrorY. Duplicate signatures
	// are kept: rotation/mirror identity still matters for rendering.
	VariantsByIndex [][]Variant
	// VariantsByKey maps a transformed signature key to every placement
	// producing it. Non-directional sources index under the empty key.
	VariantsByKey map[string][]Placement

	indexByName map[string]int
	hash        string
}

// NewTable builds the compatibility table for the given ordered source
// names.
func NewTable(names []string) *Table {
	t := &Table{
		Names:              append([]string(nil), names...),
		ConnectionsByIndex: make([]*Signature, len(names)),
		VariantsByIndex:    make([][]Variant, len(names)),
		VariantsByKey:      make(map[string][]Placement),
		indexByName:        make(map[string]int, len(names)),
	}
	h := fnv.New64a()
	for i, name := range names {
		if _, ok := t.indexByName[name]; !ok {
			t.indexByName[name] = i
		}
		h.Write([]byte(name))
		h.Write([]byte{0})

		base := ParseName(name)
		t.ConnectionsByIndex[i] = base
		variants := make([]Variant, 0, 16)
		for _, rot := range Rotations {
			for _, mx := range [2]bool{false, true} {
				for _, my := range [2]bool{false, true} {
					v := Variant{Rotation: rot, MirrorX: mx, MirrorY: my}
					if base != nil {
						sig := Transform(*base, rot, mx, my)
						v.Connections = &sig
						v.Key = sig.Key()
					}
					variants = append(variants, v)
					t.VariantsByKey[v.Key] = append(t.VariantsByKey[v.Key], Placement{
						Index: i, Rotation: rot, MirrorX: mx, MirrorY: my,
					})
				}
			}
		}
		t.VariantsByIndex[i] = variants
	}
	t.hash = strconv.FormatUint(h.Sum64(), 16)
	return t
}

// Hash is a stable digest of the ordered source-name list, used to key
// per-engine table caches.
func (t *Table) Hash() string { return t.hash }

// Len returns the number of tile sources.
func (t *Table) Len() int { return len(t.Names) }

// IndexOf resolves a source name to its index, or -1.
func (t *Table) IndexOf(name string) int {
	if i, ok := t.indexByName[name]; ok {
		return i
	}
	return -1
}

func variantSlot(rotation int, mirrorX, mirrorY bool) int {
	slot := ((rotation/90)%4 + 4) % 4 * 4
	if mirrorX {
		slot += 2
	}
	if mirrorY {
		slot++
	}
	return slot
}

// Connections returns the transformed signature for a placement in O(1).
// Returns nil for non-directional sources and out-of-range indices.
func (t *Table) Connections(index, rotation int, mirrorX, mirrorY bool) *Signature {
	if index < 0 || index >= len(t.VariantsByIndex) {
		return nil
	}
	return t.VariantsByIndex[index][variantSlot(rotation, mirrorX, mirrorY)].Connections
}

// ConnectionsOf returns the transformed signature of a stored tile.
func (t *Table) ConnectionsOf(tl Tile) *Signature {
	if !tl.IsPlaced() {
		return nil
	}
	return t.Connections(tl.ImageIndex, tl.Rotation, tl.MirrorX, tl.MirrorY)
}

// Remap re-resolves a stored tile against this table after the source list
// changed. Name wins when it resolves; otherwise the tile is re-matched to
// the first variant in enumeration order sharing its previous transformed
// signature (computed against old). Tiles with no match become empty.
func (t *Table) Remap(tl Tile, old *Table) Tile {
	if !tl.IsPlaced() {
		return tl
	}
	if tl.Name != "" {
		if i := t.IndexOf(tl.Name); i >= 0 {
			tl.ImageIndex = i
			return tl
		}
	}
	if old == nil {
		if tl.ImageIndex < len(t.Names) {
			return tl
		}
		return Tile{ImageIndex: EmptyIndex, PlacedOrder: tl.PlacedOrder}
	}
	key := ""
	if sig := old.ConnectionsOf(tl); sig != nil {
		key = sig.Key()
	}
	if ps := t.VariantsByKey[key]; len(ps) > 0 {
		p := ps[0]
		return Tile{
			ImageIndex:  p.Index,
			Rotation:    p.Rotation,
			MirrorX:     p.MirrorX,
			MirrorY:     p.MirrorY,
			Name:        t.Names[p.Index],
			PlacedOrder: tl.PlacedOrder,
		}
	}
	return Tile{ImageIndex: EmptyIndex, PlacedOrder: tl.PlacedOrder}
}

// Rematch re-binds a stored tile whose name no longer resolves against this
// table. The name's own signature, transformed by the tile's orientation,
// is matched to the first variant in enumeration order producing it. Tiles
// with no match become empty.
func (t *Table) Rematch(tl Tile) Tile {
	if !tl.IsPlaced() {
		return tl
	}
	if tl.Name != "" {
		if i := t.IndexOf(tl.Name); i >= 0 {
			tl.ImageIndex = i
			return tl
		}
	}
	key := ""
	if sig := ParseName(tl.Name); sig != nil {
		key = Transform(*sig, tl.Rotation, tl.MirrorX, tl.MirrorY).Key()
	}
	if ps := t.VariantsByKey[key]; len(ps) > 0 {
		p := ps[0]
		return Tile{
			ImageIndex:  p.Index,
			Rotation:    p.Rotation,
			MirrorX:     p.MirrorX,
			MirrorY:     p.MirrorY,
			Name:        t.Names[p.Index],
			PlacedOrder: tl.PlacedOrder,
		}
	}
	return Tile{ImageIndex: EmptyIndex, PlacedOrder: tl.PlacedOrder}
}
