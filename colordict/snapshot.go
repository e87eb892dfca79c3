package colordict

import (
	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
)

// snapshot is a deep copy of the dictionary's mutable in-memory state.
type snapshot struct {
	colors       map[string]colormath.Value
	palettes     map[string][]string
	paletteOrder []string
	changed      map[string]struct{}
}

// capture deep-copies the dictionary's current state.
func (d *Dictionary) capture() *snapshot {
	s := &snapshot{
		colors:       make(map[string]colormath.Value, len(d.colors)),
		palettes:     make(map[string][]string, len(d.palettes)),
		paletteOrder: append([]string(nil), d.paletteOrder...),
		changed:      make(map[string]struct{}, len(d.changed)),
	}
	for name, value := range d.colors {
		s.colors[name] = value.Clone()
	}
	for name, members := range d.palettes {
		s.palettes[name] = append([]string(nil), members...)
	}
	for name := range d.changed {
		s.changed[name] = struct{}{}
	}
	return s
}

// Backup captures a deep snapshot of the full namespace and palette
// membership state. Persistent storage is not touched.
func (d *Dictionary) Backup() {
	d.snapshot = d.capture()
}

// Restore replaces the current in-memory state with the most recent Backup
// snapshot. The snapshot is retained, so repeated restores roll back to the
// same point. Persistent storage is not touched.
func (d *Dictionary) Restore() error {
	if d.snapshot == nil {
		return &apperr.StateError{Reason: "restore called without a prior backup"}
	}

	restored := d.snapshot
	d.colors = make(map[string]colormath.Value, len(restored.colors))
	for name, value := range restored.colors {
		d.colors[name] = value.Clone()
	}
	d.palettes = make(map[string][]string, len(restored.palettes))
	for name, members := range restored.palettes {
		d.palettes[name] = append([]string(nil), members...)
	}
	d.paletteOrder = append([]string(nil), restored.paletteOrder...)
	d.changed = make(map[string]struct{}, len(restored.changed))
	for name := range restored.changed {
		d.changed[name] = struct{}{}
	}
	return nil
}
