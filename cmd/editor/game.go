package main

import (
	"image/color"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/tilecanvas/design"
	"github.com/milk9111/tilecanvas/engine"
	"github.com/milk9111/tilecanvas/layout"
	"github.com/milk9111/tilecanvas/pattern"
	"github.com/milk9111/tilecanvas/tileset"
)

// toolbarHeight is the pixel strip reserved at the top for the UI.
const toolbarHeight = 56

type Game struct {
	ui       *ebitenui.UI
	toolBar  *ToolBar
	eng      *engine.Engine
	cfg      *EditorConfig
	renderer *tileRenderer
	watcher  *tileset.Watcher

	screenW int
	screenH int

	mirrorH bool
	mirrorV bool

	// favorites is the sub-palette restriction for random and draw
	// placement, toggled per source via Ctrl+click in the toolbar.
	favorites map[int]bool

	// lastPaintCell suppresses repeat presses while the cursor stays on
	// one cell during a drag.
	lastPaintCell int
	painting      bool

	// zoomStart is the anchor cell of an in-progress shift-drag region
	// selection, in full-grid coordinates. -1 when no selection is active.
	zoomStart int

	savePath         string
	clipboardReady   bool
	background       color.RGBA
	gridBackground   color.RGBA
	highlightOverlay *ebiten.Image
}

func NewGame(cfg *EditorConfig, eng *engine.Engine, watcher *tileset.Watcher, savePath string) *Game {
	g := &Game{
		eng:            eng,
		cfg:            cfg,
		watcher:        watcher,
		savePath:       savePath,
		lastPaintCell:  -1,
		zoomStart:      -1,
		background:     color.RGBA{24, 24, 28, 255},
		gridBackground: color.RGBA{48, 48, 54, 255},
	}
	g.mirrorH = cfg.MirrorHorizontal
	g.mirrorV = cfg.MirrorVertical
	eng.SetMirror(g.mirrorH, g.mirrorV)

	g.renderer = newTileRenderer(eng.Layout().TileSize, eng.Table())

	g.ui, g.toolBar = BuildEditorUI(
		eng.Table().Names,
		func(kind engine.BrushKind) {
			b := g.eng.Brush()
			b.Kind = kind
			g.eng.SetBrush(b)
		},
		func(index int) {
			g.eng.SetBrush(engine.Brush{
				Kind:       engine.BrushFixed,
				Index:      index,
				SourceName: g.eng.Table().Names[index],
			})
			g.toolBar.SetActive(engine.BrushFixed)
		},
		g.toggleFavorite,
		eng.Brush().Kind,
	)

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}
	return g
}

// toggleFavorite flips one source in the favorites sub-palette. An empty
// set removes the restriction entirely.
func (g *Game) toggleFavorite(index int) {
	if g.favorites == nil {
		g.favorites = map[int]bool{}
	}
	if g.favorites[index] {
		delete(g.favorites, index)
	} else {
		g.favorites[index] = true
	}
	if len(g.favorites) == 0 {
		g.eng.SetFavorites(nil)
		log.Println("Favorites cleared")
		return
	}
	indices := make([]int, 0, len(g.favorites))
	for i := range g.favorites {
		indices = append(indices, i)
	}
	g.eng.SetFavorites(indices)
	log.Printf("Favorites: %d of %d sources", len(indices), g.eng.Table().Len())
}

func (g *Game) Update() error {
	if g.ui != nil {
		g.ui.Update()
	}
	g.drainWatcher()
	g.handleHotkeys()
	g.handleMouse()
	g.eng.EndFrame()
	return nil
}

// drainWatcher applies pending manifest edits without blocking the tick.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadManifest(path)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("Tileset watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadManifest(path string) {
	m, err := tileset.LoadManifest(path)
	if err != nil {
		log.Printf("Reload %s: %v", path, err)
		return
	}
	g.eng.SetSources(m.Names())
	// Source indices shifted; a stale favorites set would point at the
	// wrong palette entries.
	g.favorites = nil
	g.eng.SetFavorites(nil)
	g.renderer.Reset(g.eng.Layout().TileSize, g.eng.Table())
	log.Printf("Reloaded %d sources from %s", g.eng.Table().Len(), path)
}

func (g *Game) handleHotkeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.eng.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.eng.Redo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if ctrl {
			g.copyDesign()
		} else {
			g.eng.ControlledRandomize()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && ctrl {
		g.pasteDesign()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ctrl {
		g.saveDesign()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.ReconcileTiles()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) && !ctrl {
		g.eng.FloodFill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.eng.FloodComplete()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.mirrorH = !g.mirrorH
		g.eng.SetMirror(g.mirrorH, g.mirrorV)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && !ctrl {
		g.mirrorV = !g.mirrorV
		g.eng.SetMirror(g.mirrorH, g.mirrorV)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.runMacro()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.capturePattern()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.eng.ClearDrawStroke()
		g.eng.ClearCloneSource()
		g.eng.SetZoom(nil)
		g.zoomStart = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.eng.ResetTiles()
	}

	// Digit keys jump straight to a brush kind.
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6} {
		if inpututil.IsKeyJustPressed(key) {
			b := g.eng.Brush()
			b.Kind = engine.BrushKind(i)
			g.eng.SetBrush(b)
			g.toolBar.SetActive(b.Kind)
		}
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	cell := g.cellAt(x, y)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.painting = false
		g.lastPaintCell = -1
		if g.eng.Brush().Kind == engine.BrushDraw {
			g.eng.ClearDrawStroke()
		}
		if g.zoomStart >= 0 && cell >= 0 {
			g.finishZoomSelect(cell)
		}
		g.zoomStart = -1
	}

	if cell < 0 {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case shift:
			g.zoomStart = g.eng.VisibleToFull(cell)
		case alt:
			g.eng.SetCloneSource(cell)
		default:
			g.eng.HandlePress(cell, false)
			g.painting = true
			g.lastPaintCell = cell
		}
		return
	}

	if g.painting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && cell != g.lastPaintCell {
		g.eng.HandlePress(cell, true)
		g.lastPaintCell = cell
	}

	// Right button always erases, whatever the active brush.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.eraseCell(cell)
	}
}

func (g *Game) eraseCell(cell int) {
	prev := g.eng.Brush()
	g.eng.SetBrush(engine.Brush{Kind: engine.BrushErase})
	g.eng.HandlePress(cell, false)
	g.eng.SetBrush(prev)
}

// capturePattern turns the active zoom region into the pattern-brush stamp
// and switches to the pattern brush.
func (g *Game) capturePattern() {
	z := g.eng.Zoom()
	if z == nil {
		return
	}
	p := &pattern.Pattern{
		Tiles:  g.eng.VisibleTiles(),
		Width:  z.Width(),
		Height: z.Height(),
	}
	g.eng.SetZoom(nil)
	g.eng.SetPattern(p)
	b := g.eng.Brush()
	b.Kind = engine.BrushPattern
	g.eng.SetBrush(b)
	g.toolBar.SetActive(engine.BrushPattern)
	log.Printf("Captured %dx%d pattern", p.Height, p.Width)
}

// finishZoomSelect turns the shift-drag rectangle into the zoom region.
func (g *Game) finishZoomSelect(endVisible int) {
	endFull := g.eng.VisibleToFull(endVisible)
	if endFull < 0 || g.zoomStart < 0 {
		return
	}
	l := g.eng.Layout()
	r0, c0 := l.Position(g.zoomStart)
	r1, c1 := l.Position(endFull)
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	if c1 < c0 {
		c0, c1 = c1, c0
	}
	g.eng.SetZoom(&engine.Region{MinRow: r0, MaxRow: r1, MinCol: c0, MaxCol: c1})
}

// visibleDims returns the grid dimensions currently on screen, which shrink
// while a zoom region is active.
func (g *Game) visibleDims() (rows, cols int) {
	if z := g.eng.Zoom(); z != nil {
		return z.Height(), z.Width()
	}
	l := g.eng.Layout()
	return l.Rows, l.Columns
}

// gridOrigin returns the top-left pixel of the canvas area.
func (g *Game) gridOrigin() (int, int) {
	rows, cols := g.visibleDims()
	step := g.eng.Layout().TileSize + g.cfg.Gap
	w := cols * step
	h := rows * step
	x := (g.screenW - w) / 2
	y := toolbarHeight + (g.screenH-toolbarHeight-h)/2
	if x < 0 {
		x = 0
	}
	if y < toolbarHeight {
		y = toolbarHeight
	}
	return x, y
}

// cellAt maps a cursor position to a visible cell index, or -1 when the
// cursor is outside the canvas.
func (g *Game) cellAt(x, y int) int {
	rows, cols := g.visibleDims()
	ox, oy := g.gridOrigin()
	step := g.eng.Layout().TileSize + g.cfg.Gap
	if x < ox || y < oy {
		return -1
	}
	col := (x - ox) / step
	row := (y - oy) / step
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return -1
	}
	return row*cols + col
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	_, cols := g.visibleDims()
	ox, oy := g.gridOrigin()
	size := g.eng.Layout().TileSize
	step := size + g.cfg.Gap

	tiles := g.eng.VisibleTiles()
	for i, t := range tiles {
		row := i / cols
		col := i % cols
		px := float64(ox + col*step)
		py := float64(oy + row*step)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(px, py)
		if img := g.renderer.Image(t); img != nil {
			screen.DrawImage(img, op)
			continue
		}
		g.drawEmptyCell(screen, px, py, size)
	}

	g.drawHover(screen)

	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawEmptyCell(screen *ebiten.Image, px, py float64, size int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size), float64(size))
	op.GeoM.Translate(px, py)
	op.ColorScale.Scale(
		float32(g.gridBackground.R)/255,
		float32(g.gridBackground.G)/255,
		float32(g.gridBackground.B)/255,
		1,
	)
	screen.DrawImage(g.renderer.pixel, op)
}

func (g *Game) drawHover(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	cell := g.cellAt(x, y)
	if cell < 0 {
		return
	}
	_, cols := g.visibleDims()
	ox, oy := g.gridOrigin()
	size := g.eng.Layout().TileSize
	step := size + g.cfg.Gap
	if g.highlightOverlay == nil || g.highlightOverlay.Bounds().Dx() != size {
		g.highlightOverlay = ebiten.NewImage(size, size)
		g.highlightOverlay.Fill(color.RGBA{255, 255, 255, 48})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox+(cell%cols)*step), float64(oy+(cell/cols)*step))
	screen.DrawImage(g.highlightOverlay, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW = outsideWidth
	g.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) copyDesign() {
	if !g.clipboardReady {
		return
	}
	l := g.eng.Layout()
	data, err := design.Encode(&design.Design{Rows: l.Rows, Columns: l.Columns, Tiles: g.eng.Tiles()})
	if err != nil {
		log.Printf("Copy design: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}

func (g *Game) pasteDesign() {
	if !g.clipboardReady {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	d, err := design.Decode(data)
	if err != nil {
		log.Printf("Paste design: %v", err)
		return
	}
	g.applyDesign(d)
}

func (g *Game) applyDesign(d *design.Design) {
	avail := g.screenW
	if avail <= 0 {
		avail = d.Columns * g.cfg.TileSize
	}
	availH := g.screenH - toolbarHeight
	if availH <= 0 {
		availH = d.Rows * g.cfg.TileSize
	}
	grid := layout.ComputeFixed(avail, availH, g.cfg.Gap, d.Rows, d.Columns)
	g.eng.SetLayout(grid)
	g.eng.LoadTiles(design.Resolve(d, g.eng.Table()))
	g.renderer.Reset(grid.TileSize, g.eng.Table())
}

func (g *Game) saveDesign() {
	if g.savePath == "" {
		log.Println("No save path configured; Ctrl+S ignored")
		return
	}
	l := g.eng.Layout()
	data, err := design.Encode(&design.Design{Rows: l.Rows, Columns: l.Columns, Tiles: g.eng.Tiles()})
	if err != nil {
		log.Printf("Save design: %v", err)
		return
	}
	if err := os.WriteFile(g.savePath, data, 0o644); err != nil {
		log.Printf("Save design: %v", err)
		return
	}
	log.Printf("Saved design to %s", g.savePath)
}
