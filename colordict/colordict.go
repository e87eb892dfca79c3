// Package colordict implements the palette-backed dictionary of named colors.
//
// A Dictionary aggregates one or more palettes into a single namespace of
// color names. Values are stored at the configured norm and converted to the
// configured representation on read. A Dictionary is not safe for concurrent
// mutation; callers needing that must serialize access themselves.
package colordict

import (
	"fmt"
	"sort"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/log"
	"github.com/colordict-cli/colordict/palette"
	"github.com/colordict-cli/colordict/where"
	"github.com/samber/lo"
)

// IndependentPalette is the palette colors are registered into when no
// explicit palette is named on Add.
const IndependentPalette = "independent"

// equalityTolerance bounds floating drift when comparing stored values.
const equalityTolerance = 1e-6

// Options configures a Dictionary at construction. The zero value selects the
// defaults: norm 255, rgb mode, all palettes from the default palettes path.
type Options struct {
	// Norm is the common scale every stored channel value is expressed in.
	Norm float64

	// Mode is the representation reads return when not overridden per call.
	Mode colormath.Mode

	// Grayscale converts every value to its luminance on read.
	Grayscale bool

	// Path is the directory palettes are loaded from and saved to.
	Path string

	// Palettes restricts loading to an explicit subset. Empty loads all
	// palettes found at Path.
	Palettes []string
}

// Dictionary holds colors extracted from palettes.
type Dictionary struct {
	norm      float64
	mode      colormath.Mode
	grayscale bool

	store *palette.Store

	colors       map[string]colormath.Value
	palettes     map[string][]string
	paletteOrder []string
	changed      map[string]struct{}

	snapshot *snapshot
}

// New constructs a Dictionary and eagerly loads its palettes, rescaling every
// stored value from the persisted norm to the configured one.
func New(opts Options) (*Dictionary, error) {
	if opts.Norm < 0 {
		return nil, &apperr.ConfigError{Reason: fmt.Sprintf("norm must be positive, got %v", opts.Norm)}
	}
	if opts.Norm == 0 {
		opts.Norm = 255
	}
	if opts.Mode == "" {
		opts.Mode = colormath.ModeRGB
	}
	if _, err := colormath.ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}
	if opts.Path == "" {
		opts.Path = where.Palettes()
	}

	d := &Dictionary{
		norm:      opts.Norm,
		mode:      opts.Mode,
		grayscale: opts.Grayscale,
		store:     palette.NewStore(opts.Path),
		colors:    make(map[string]colormath.Value),
		palettes:  make(map[string][]string),
		changed:   make(map[string]struct{}),
	}

	available, err := d.store.List()
	if err != nil {
		return nil, err
	}

	requested := opts.Palettes
	if len(requested) == 0 {
		requested = available
	} else {
		for _, name := range requested {
			if !lo.Contains(available, name) {
				return nil, &apperr.ConfigError{Reason: fmt.Sprintf("palette %q does not exist at %q", name, opts.Path)}
			}
		}
	}

	for _, name := range requested {
		if err := d.loadPalette(name); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// loadPalette merges one palette's record into the namespace. When two
// palettes disagree on a name's value, the palette loaded last wins and the
// disagreement is logged.
func (d *Dictionary) loadPalette(name string) error {
	record, err := d.store.Load(name)
	if err != nil {
		return err
	}

	members := make([]string, 0, record.Len())
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		value := colormath.Renorm(pair.Value, palette.PersistedNorm, d.norm)

		if existing, ok := d.colors[pair.Key]; ok && !existing.Equal(value, equalityTolerance) {
			log.Warnf("palette %q redefines %q from %v to %v", name, pair.Key, existing, value)
		}
		d.colors[pair.Key] = value
		members = append(members, pair.Key)
	}

	d.palettes[name] = members
	d.paletteOrder = append(d.paletteOrder, name)
	return nil
}

// Norm returns the configured channel scale.
func (d *Dictionary) Norm() float64 {
	return d.norm
}

// Mode returns the representation reads currently default to.
func (d *Dictionary) Mode() colormath.Mode {
	return d.mode
}

// SetMode changes the representation reads default to.
func (d *Dictionary) SetMode(mode colormath.Mode) error {
	parsed, err := colormath.ParseMode(string(mode))
	if err != nil {
		return err
	}
	d.mode = parsed
	return nil
}

// SetGrayscale toggles luminance conversion on read.
func (d *Dictionary) SetGrayscale(on bool) {
	d.grayscale = on
}

// Grayscale reports whether reads convert to luminance.
func (d *Dictionary) Grayscale() bool {
	return d.grayscale
}

// Get returns the named color in the dictionary's configured mode.
func (d *Dictionary) Get(name string) (colormath.Value, error) {
	return d.GetIn(name, d.mode)
}

// GetIn returns the named color converted to the requested mode at the
// dictionary's norm. In hex mode the numeric channels are returned rounded at
// norm 255; GetHex provides the string form.
func (d *Dictionary) GetIn(name string, mode colormath.Mode) (colormath.Value, error) {
	stored, err := d.raw(name)
	if err != nil {
		return nil, err
	}
	return mode.FromRGBA(stored, d.norm), nil
}

// GetHex returns the named color as a lowercase "#rrggbb" string. The stored
// value is rescaled to norm 255 internally; the caller never sees that norm.
func (d *Dictionary) GetHex(name string) (string, error) {
	stored, err := d.raw(name)
	if err != nil {
		return "", err
	}
	return colormath.RGBToHex(colormath.Renorm(stored, d.norm, 255)), nil
}

// raw resolves a name to its stored value with the grayscale transform applied.
func (d *Dictionary) raw(name string) (colormath.Value, error) {
	stored, ok := d.colors[name]
	if !ok {
		return nil, &apperr.NotFoundError{Name: name}
	}
	if d.grayscale {
		return colormath.Grayscale(stored), nil
	}
	return stored.Clone(), nil
}

// Named returns every name whose stored value equals the given one within
// floating tolerance. Multiple names may map to equal values.
func (d *Dictionary) Named(v colormath.Value) []string {
	target := v.WithAlpha(d.norm)

	var names []string
	for name, stored := range d.colors {
		if stored.WithAlpha(d.norm).Equal(target, equalityTolerance) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns every color name in the namespace, sorted.
func (d *Dictionary) Names() []string {
	names := lo.Keys(d.colors)
	sort.Strings(names)
	return names
}

// Values returns every stored value as RGBA at the configured norm,
// irrespective of mode, ordered to match Names.
func (d *Dictionary) Values() []colormath.Value {
	names := d.Names()
	values := make([]colormath.Value, len(names))
	for i, name := range names {
		values[i] = d.colors[name].WithAlpha(d.norm)
	}
	return values
}

// Items returns the full namespace as RGBA values at the configured norm,
// irrespective of mode.
func (d *Dictionary) Items() map[string]colormath.Value {
	items := make(map[string]colormath.Value, len(d.colors))
	for name, value := range d.colors {
		items[name] = value.WithAlpha(d.norm)
	}
	return items
}

// Palettes returns the loaded palette names in load/creation order.
func (d *Dictionary) Palettes() []string {
	return append([]string(nil), d.paletteOrder...)
}

// PalettesOf returns the loaded palettes that list the name, in load order.
// A name unknown to every palette yields an empty result.
func (d *Dictionary) PalettesOf(name string) []string {
	var owners []string
	for _, paletteName := range d.paletteOrder {
		if lo.Contains(d.palettes[paletteName], name) {
			owners = append(owners, paletteName)
		}
	}
	return owners
}

// Members returns the ordered color names belonging to a palette.
func (d *Dictionary) Members(name string) ([]string, error) {
	members, ok := d.palettes[name]
	if !ok {
		return nil, &apperr.NotFoundError{Name: name}
	}
	return append([]string(nil), members...), nil
}
