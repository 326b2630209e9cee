package models

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time dump of a run, written by the autoplay harness
// and debug tooling. Nothing in the engine ever reads one back; the game
// deliberately has no save/load.
type Snapshot struct {
	Turn      int         `yaml:"turn"`
	State     *WorldState `yaml:"state"`
	Documents []*Document `yaml:"documents,omitempty"`
}

// WriteSnapshot renders the snapshot as YAML.
func WriteSnapshot(w io.Writer, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
