// Package palette implements the persistence provider for palette files.
//
// Each palette is one JSON object on disk, keyed by color name, each value an
// array of 3 or 4 channel values at the persisted norm 255. Records preserve
// insertion order so a save followed by a reload round-trips the file exactly.
package palette

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/filesystem"
	"github.com/colordict-cli/colordict/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PersistedNorm is the fixed norm every palette file is written at.
const PersistedNorm = 255

// extension is the filename suffix of palette files.
const extension = ".json"

// Record is the insertion-ordered mapping of color names to channel values
// held by one palette.
type Record = orderedmap.OrderedMap[string, colormath.Value]

// NewRecord returns an empty palette record.
func NewRecord() *Record {
	return orderedmap.New[string, colormath.Value]()
}

// File documents the serialized shape of a palette: one object keyed by color
// name, each value an array of channel values at norm 255. It exists for
// schema generation; actual decoding goes through Record to keep ordering.
type File map[string][]float64

// Store reads and writes palette records under a single directory through the
// virtualized filesystem layer.
type Store struct {
	path string
}

// NewStore returns a store rooted at the given directory.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the directory the store operates on.
func (s *Store) Path() string {
	return s.path
}

// file resolves the on-disk location of a named palette.
func (s *Store) file(name string) string {
	return filepath.Join(s.path, util.SanitizeFilename(name)+extension)
}

// List returns the names of every palette present at the store's path, sorted
// for deterministic load order.
func (s *Store) List() ([]string, error) {
	entries, err := filesystem.API().ReadDir(s.path)
	if err != nil {
		return nil, &apperr.StorageError{Op: "list", Palette: "*", Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		names = append(names, util.FileStem(entry.Name()))
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a named palette is present at the store's path.
func (s *Store) Exists(name string) bool {
	ok, err := filesystem.API().Exists(s.file(name))
	return err == nil && ok
}

// Load reads one palette record. Values are validated for arity but returned
// untouched at the persisted norm.
func (s *Store) Load(name string) (*Record, error) {
	data, err := filesystem.API().ReadFile(s.file(name))
	if err != nil {
		return nil, &apperr.StorageError{Op: "load", Palette: name, Err: err}
	}

	record := NewRecord()
	if err := json.Unmarshal(data, record); err != nil {
		return nil, &apperr.StorageError{Op: "load", Palette: name, Err: err}
	}

	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) < 3 || len(pair.Value) > 4 {
			return nil, &apperr.FormatError{
				Reason: fmt.Sprintf("color %q in palette %q has %d components, want 3 or 4", pair.Key, name, len(pair.Value)),
			}
		}
	}
	return record, nil
}

// Save serializes one palette record, overwriting prior content. Each palette
// commits independently; there is no cross-palette atomicity.
func (s *Store) Save(name string, record *Record) error {
	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return &apperr.StorageError{Op: "save", Palette: name, Err: err}
	}

	if err := filesystem.API().WriteFile(s.file(name), data, 0644); err != nil {
		return &apperr.StorageError{Op: "save", Palette: name, Err: err}
	}
	return nil
}
