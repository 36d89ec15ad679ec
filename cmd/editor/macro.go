package main

import (
	"fmt"
	"log"
	"os"

	"github.com/milk9111/tilecanvas/engine"
	"github.com/milk9111/tilecanvas/script"
)

var brushKindsByName = map[string]engine.BrushKind{
	"random":  engine.BrushRandom,
	"fixed":   engine.BrushFixed,
	"erase":   engine.BrushErase,
	"clone":   engine.BrushClone,
	"pattern": engine.BrushPattern,
	"draw":    engine.BrushDraw,
}

// runMacro executes the configured tengo script against the engine. The
// whole run lands in one frame, so the engine's bulk-frame suppression
// keeps scripted presses from double firing.
func (g *Game) runMacro() {
	if g.cfg.Macro == "" {
		return
	}
	src, err := os.ReadFile(g.cfg.Macro)
	if err != nil {
		log.Printf("Macro %s: %v", g.cfg.Macro, err)
		return
	}
	ops := script.Ops{
		Flood:         g.eng.FloodFill,
		FloodComplete: g.eng.FloodComplete,
		Reconcile:     g.eng.ReconcileTiles,
		Randomize:     g.eng.ControlledRandomize,
		Reset:         g.eng.ResetTiles,
		Undo:          g.eng.Undo,
		Redo:          g.eng.Redo,
		Press: func(cell int) {
			g.eng.HandlePress(cell, false)
		},
		SetBrush: func(kind string, index int) error {
			k, ok := brushKindsByName[kind]
			if !ok {
				return fmt.Errorf("unknown brush kind %q", kind)
			}
			b := engine.Brush{Kind: k, Index: index}
			if k == engine.BrushFixed && index >= 0 && index < g.eng.Table().Len() {
				b.SourceName = g.eng.Table().Names[index]
			}
			g.eng.SetBrush(b)
			g.toolBar.SetActive(k)
			return nil
		},
	}
	if err := script.Run(src, ops); err != nil {
		log.Printf("Macro %s: %v", g.cfg.Macro, err)
		return
	}
	log.Printf("Macro %s finished", g.cfg.Macro)
}
