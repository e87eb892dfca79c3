package colordict

import (
	"fmt"
	"math"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/palette"
	"github.com/samber/lo"
)

// validate checks that a supplied value is a well-formed 3- or 4-component
// tuple at the dictionary's norm.
func (d *Dictionary) validate(v colormath.Value) error {
	if len(v) < 3 || len(v) > 4 {
		return &apperr.FormatError{Reason: fmt.Sprintf("color value must have 3 or 4 components, got %d", len(v))}
	}
	for _, spec := range v {
		if math.IsNaN(spec) || math.IsInf(spec, 0) {
			return &apperr.FormatError{Reason: fmt.Sprintf("color value %v has a non-finite component", v)}
		}
		if spec < 0 || spec > d.norm {
			return &apperr.FormatError{Reason: fmt.Sprintf("component %v of %v is outside [0, %v]", spec, v, d.norm)}
		}
	}
	return nil
}

// Set adds or overwrites a name in the in-memory namespace only. No palette
// membership changes; palettes already containing the name are marked dirty
// so a later Save persists the new value.
func (d *Dictionary) Set(name string, v colormath.Value) error {
	if err := d.validate(v); err != nil {
		return err
	}

	d.colors[name] = v.Clone()
	for paletteName, members := range d.palettes {
		if lo.Contains(members, name) {
			d.changed[paletteName] = struct{}{}
		}
	}
	return nil
}

// Add registers a name in the namespace and records its membership in the
// given palette, creating the palette if new. With check set, an existing
// name rejects the add with a ConflictError and leaves all state unchanged;
// without it the value is overwritten and the membership appended, so a name
// may belong to multiple palettes.
func (d *Dictionary) Add(name string, v colormath.Value, paletteName string, check bool) error {
	if err := d.validate(v); err != nil {
		return err
	}
	if paletteName == "" {
		paletteName = IndependentPalette
	}

	if existing, ok := d.colors[name]; ok && check {
		return &apperr.ConflictError{Name: name, Existing: []float64(existing)}
	}

	d.colors[name] = v.Clone()
	if _, ok := d.palettes[paletteName]; !ok {
		d.palettes[paletteName] = nil
		d.paletteOrder = append(d.paletteOrder, paletteName)
	}
	if !lo.Contains(d.palettes[paletteName], name) {
		d.palettes[paletteName] = append(d.palettes[paletteName], name)
	}
	d.changed[paletteName] = struct{}{}
	return nil
}

// Remove drops a name's membership from one palette. When the last membership
// goes, the name leaves the namespace as well.
func (d *Dictionary) Remove(name, paletteName string) error {
	members, ok := d.palettes[paletteName]
	if !ok || !lo.Contains(members, name) {
		return &apperr.NotFoundError{Name: fmt.Sprintf("%s in palette %s", name, paletteName)}
	}

	d.palettes[paletteName] = lo.Without(members, name)
	d.changed[paletteName] = struct{}{}

	if !d.hasMembership(name) {
		delete(d.colors, name)
	}
	return nil
}

// RemoveAll drops a name from every palette and from the namespace entirely.
// An absent name is reported through NotFoundError with no state changed.
func (d *Dictionary) RemoveAll(name string) error {
	if _, ok := d.colors[name]; !ok && !d.hasMembership(name) {
		return &apperr.NotFoundError{Name: name}
	}

	for paletteName, members := range d.palettes {
		if lo.Contains(members, name) {
			d.palettes[paletteName] = lo.Without(members, name)
			d.changed[paletteName] = struct{}{}
		}
	}
	delete(d.colors, name)
	return nil
}

// hasMembership reports whether any palette still lists the name.
func (d *Dictionary) hasMembership(name string) bool {
	for _, members := range d.palettes {
		if lo.Contains(members, name) {
			return true
		}
	}
	return false
}

// Save flushes every dirty palette back to the persistence provider at the
// persisted norm. Palettes commit independently; a failure stops the flush
// but leaves already-committed palettes on disk.
func (d *Dictionary) Save() error {
	for _, paletteName := range d.paletteOrder {
		if _, dirty := d.changed[paletteName]; !dirty {
			continue
		}

		record := palette.NewRecord()
		for _, name := range d.palettes[paletteName] {
			record.Set(name, colormath.Renorm(d.colors[name], d.norm, palette.PersistedNorm))
		}
		if err := d.store.Save(paletteName, record); err != nil {
			return err
		}
		delete(d.changed, paletteName)
	}
	return nil
}
