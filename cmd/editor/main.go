package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	designPkg "github.com/milk9111/tilecanvas/design"
	"github.com/milk9111/tilecanvas/engine"
	"github.com/milk9111/tilecanvas/layout"
	"github.com/milk9111/tilecanvas/tileset"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "Editor configuration file")
	designPath := flag.String("design", "", "Design JSON to load; also the Ctrl+S save target")
	flag.Parse()

	log.Println("Editor starting...")

	cfg, err := LoadEditorConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Manifest == "" {
		cfg.Manifest = "tileset.yaml"
	}

	manifest, err := tileset.LoadManifest(cfg.Manifest)
	if err != nil {
		log.Fatalf("Failed to load tileset manifest: %v", err)
	}
	names := manifest.Names()
	if len(names) == 0 {
		log.Fatalf("Tileset manifest %s has no sources", cfg.Manifest)
	}

	w, h := ebiten.Monitor().Size()
	if w < 1 || h < 1 {
		w, h = 1280, 800
	}
	canvasH := h - toolbarHeight
	var grid layout.Grid
	if cfg.Rows > 0 && cfg.Columns > 0 {
		grid = layout.ComputeFixed(w, canvasH, cfg.Gap, cfg.Rows, cfg.Columns)
	} else {
		grid = layout.Compute(w, canvasH, cfg.Gap, cfg.TileSize)
	}
	log.Printf("Canvas %dx%d at %dpx tiles", grid.Rows, grid.Columns, grid.TileSize)

	eng := engine.New(engine.Config{
		Sources:              names,
		Layout:               grid,
		AllowEdgeConnections: cfg.AllowEdgeConnections,
		RandomRequiresLegal:  cfg.RandomRequiresLegal,
	})

	watcher, err := tileset.NewWatcher(filepath.Dir(cfg.Manifest))
	if err != nil {
		log.Printf("Tileset watcher disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	game := NewGame(cfg, eng, watcher, *designPath)

	if *designPath != "" {
		if data, err := os.ReadFile(*designPath); err == nil {
			d, err := designPkg.Decode(data)
			if err != nil {
				log.Printf("Failed to decode %s: %v", *designPath, err)
			} else {
				game.applyDesign(d)
				log.Printf("Loaded design %s (%dx%d)", *designPath, d.Rows, d.Columns)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v", *designPath, err)
		}
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Tile Canvas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
