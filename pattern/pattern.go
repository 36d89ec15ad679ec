// Package pattern implements the rectangular stamp used by the pattern
// brush: a small grid of tiles carrying its own rotation/mirror, sampled
// with wrap-around tiling.
package pattern

import "github.com/milk9111/tilecanvas/tile"

// Pattern is a width×height stamp. Tiles is row-major; Rotation and MirrorX
// orient the whole stamp when it is applied to the canvas.
type Pattern struct {
	Tiles    []tile.Tile `json:"tiles"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Rotation int         `json:"rotation,omitempty"`
	MirrorX  bool        `json:"mirrorX,omitempty"`
}

// Valid reports whether the stamp has positive dimensions and a matching
// tile slice.
func (p *Pattern) Valid() bool {
	return p != nil && p.Width > 0 && p.Height > 0 && len(p.Tiles) == p.Width*p.Height
}

// Orient returns the stamp's own orientation.
func (p *Pattern) Orient() tile.Orient {
	return tile.Orient{Rotation: p.Rotation, MirrorX: p.MirrorX}
}

// applyVec transforms a row/column offset by an orientation: reflection
// about the vertical axis first, then quarter turns clockwise (row grows
// downward).
func applyVec(o tile.Orient, dr, dc int) (int, int) {
	q := ((o.Rotation/90)%4 + 4) % 4
	mx, my := o.MirrorX, o.MirrorY
	if my {
		q = (q + 2) % 4
	}
	if mx != my {
		dc = -dc
	}
	for i := 0; i < q; i++ {
		dr, dc = dc, -dr
	}
	return dr, dc
}

func mod(a, n int) int { return ((a % n) + n) % n }

// Sample returns the tile the stamp contributes at offset (dRow, dCol) from
// the gesture anchor. The offset is mapped into pattern-local coordinates
// by inverse-applying the stamp's orientation and tiling modulo the stamp
// dimensions; the sampled tile's own orientation is then composed with the
// stamp's (group composition, not overwrite).
func (p *Pattern) Sample(dRow, dCol int) tile.Tile {
	if !p.Valid() {
		return tile.Empty()
	}
	o := p.Orient()
	lr, lc := applyVec(o.Inverse(), dRow, dCol)
	lr = mod(lr, p.Height)
	lc = mod(lc, p.Width)
	t := p.Tiles[lr*p.Width+lc]
	if !t.IsPlaced() {
		return t
	}
	composed := tile.Compose(tile.Orient{Rotation: t.Rotation, MirrorX: t.MirrorX, MirrorY: t.MirrorY}, o)
	t.Rotation = composed.Rotation
	t.MirrorX = composed.MirrorX
	t.MirrorY = composed.MirrorY
	return t
}
