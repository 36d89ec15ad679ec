package main

import (
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilecanvas/tile"
)

// tileRenderer rasterizes palette tiles procedurally: a colored square per
// source plus a stub toward each connecting edge. Images are cached per
// oriented variant because every orientation has its own connector layout.
type tileRenderer struct {
	size  int
	table *tile.Table
	cache map[int]*ebiten.Image
	pixel *ebiten.Image
}

func newTileRenderer(size int, table *tile.Table) *tileRenderer {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &tileRenderer{
		size:  size,
		table: table,
		cache: map[int]*ebiten.Image{},
		pixel: px,
	}
}

// Reset drops the cache, for palette reloads and layout changes.
func (r *tileRenderer) Reset(size int, table *tile.Table) {
	r.size = size
	r.table = table
	r.cache = map[int]*ebiten.Image{}
}

func variantKey(t tile.Tile) int {
	key := t.ImageIndex * 16
	key += (t.Rotation / 90) * 4
	if t.MirrorX {
		key += 2
	}
	if t.MirrorY {
		key++
	}
	return key
}

// Image returns the cached raster for a placed tile, building it on first
// use. The error marker gets a fixed red square.
func (r *tileRenderer) Image(t tile.Tile) *ebiten.Image {
	if t.IsError() {
		return r.errorImage()
	}
	if !t.IsPlaced() || t.ImageIndex >= r.table.Len() {
		return nil
	}
	key := variantKey(t)
	if img, ok := r.cache[key]; ok {
		return img
	}
	img := r.build(t)
	r.cache[key] = img
	return img
}

func (r *tileRenderer) errorImage() *ebiten.Image {
	if img, ok := r.cache[-1]; ok {
		return img
	}
	img := ebiten.NewImage(r.size, r.size)
	img.Fill(color.RGBA{200, 40, 40, 255})
	r.cache[-1] = img
	return img
}

func (r *tileRenderer) build(t tile.Tile) *ebiten.Image {
	img := ebiten.NewImage(r.size, r.size)
	img.Fill(sourceColor(r.table.Names[t.ImageIndex]))

	conns := r.table.ConnectionsOf(t)
	if conns == nil {
		return img
	}
	stub := r.size / 4
	if stub < 2 {
		stub = 2
	}
	mid := (r.size - stub) / 2
	for d := tile.North; d <= tile.NorthWest; d++ {
		if !conns[d] {
			continue
		}
		x, y, w, h := stubRect(d, r.size, stub, mid)
		r.fillRect(img, x, y, w, h, color.RGBA{245, 245, 245, 255})
	}
	return img
}

// stubRect places the connector stub on the edge (cardinals) or corner
// (ordinals) the direction points at.
func stubRect(d tile.Direction, size, stub, mid int) (x, y, w, h int) {
	switch d {
	case tile.North:
		return mid, 0, stub, stub
	case tile.East:
		return size - stub, mid, stub, stub
	case tile.South:
		return mid, size - stub, stub, stub
	case tile.West:
		return 0, mid, stub, stub
	case tile.NorthEast:
		return size - stub, 0, stub, stub
	case tile.SouthEast:
		return size - stub, size - stub, stub, stub
	case tile.SouthWest:
		return 0, size - stub, stub, stub
	default: // NorthWest
		return 0, 0, stub, stub
	}
}

func (r *tileRenderer) fillRect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	dst.DrawImage(r.pixel, op)
}

// sourceColor derives a stable mid-brightness color from the source name so
// palettes look consistent across runs.
func sourceColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	v := h.Sum32()
	return color.RGBA{
		R: 80 + uint8(v)%120,
		G: 80 + uint8(v>>8)%120,
		B: 80 + uint8(v>>16)%120,
		A: 255,
	}
}

// displayName strips the signature token so toolbar buttons show the human
// part of a source name.
func displayName(name string) string {
	if tile.ParseName(name) == nil {
		return name
	}
	if i := strings.IndexAny(name, "_-"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}
