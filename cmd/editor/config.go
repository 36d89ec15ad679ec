package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EditorConfig is the on-disk editor configuration (editor.yaml).
type EditorConfig struct {
	// Manifest is the path of the tileset manifest to load.
	Manifest string `yaml:"manifest"`
	// TileSize is the preferred tile edge in pixels; the layout may pick a
	// smaller size to fit the window.
	TileSize int `yaml:"tileSize"`
	Gap      int `yaml:"gap"`
	// Rows/Columns force a fixed grid when both are positive; zero lets
	// the layout fill the window.
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`

	MirrorHorizontal bool `yaml:"mirrorHorizontal"`
	MirrorVertical   bool `yaml:"mirrorVertical"`

	AllowEdgeConnections bool `yaml:"allowEdgeConnections"`
	RandomRequiresLegal  bool `yaml:"randomRequiresLegal"`

	// Macro is an optional tengo script bound to the M key.
	Macro string `yaml:"macro"`
}

// LoadEditorConfig reads editor.yaml, applying defaults for anything the
// file leaves out. A missing file yields the pure defaults.
func LoadEditorConfig(path string) (*EditorConfig, error) {
	cfg := &EditorConfig{
		TileSize:            32,
		Gap:                 1,
		RandomRequiresLegal: true,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("editor config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("editor config %s: %w", path, err)
	}
	if cfg.TileSize < 8 {
		cfg.TileSize = 8
	}
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	return cfg, nil
}
