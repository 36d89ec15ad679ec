// Package tileset loads the ordered tile-source catalog from a YAML
// manifest and watches it for changes so a host can hot-reload the palette.
package tileset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one palette entry. Name carries the connection signature by the
// naming convention in the tile package; Path points at the source's asset.
type Source struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
}

// Manifest is the on-disk palette description.
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

// Names returns the ordered source-name list the engine consumes.
func (m *Manifest) Names() []string {
	out := make([]string, len(m.Sources))
	for i, s := range m.Sources {
		out[i] = s.Name
	}
	return out
}

// LoadManifest reads and parses a palette manifest.
func LoadManifest(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("tileset: load %s: %w", filename, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("tileset: unmarshal %s: %w", filename, err)
	}
	for i, s := range m.Sources {
		if s.Name == "" {
			return nil, fmt.Errorf("tileset: %s: source %d has no name", filename, i)
		}
	}
	return &m, nil
}
