package palette

import (
	"os"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/filesystem"
)

// BuiltinName is the palette seeded on first use so a fresh install always
// has something to look up.
const BuiltinName = "base"

// builtinColors is the seed content of the base palette at norm 255.
var builtinColors = []struct {
	name  string
	value colormath.Value
}{
	{"black", colormath.Value{0, 0, 0}},
	{"white", colormath.Value{255, 255, 255}},
	{"red", colormath.Value{255, 0, 0}},
	{"green", colormath.Value{0, 128, 0}},
	{"blue", colormath.Value{0, 0, 255}},
	{"yellow", colormath.Value{255, 255, 0}},
	{"cyan", colormath.Value{0, 255, 255}},
	{"magenta", colormath.Value{255, 0, 255}},
	{"orange", colormath.Value{255, 165, 0}},
	{"purple", colormath.Value{128, 0, 128}},
	{"brown", colormath.Value{165, 42, 42}},
	{"pink", colormath.Value{255, 192, 203}},
	{"gray", colormath.Value{128, 128, 128}},
	{"lime", colormath.Value{0, 255, 0}},
	{"navy", colormath.Value{0, 0, 128}},
	{"teal", colormath.Value{0, 128, 128}},
	{"olive", colormath.Value{128, 128, 0}},
	{"maroon", colormath.Value{128, 0, 0}},
	{"silver", colormath.Value{192, 192, 192}},
	{"gold", colormath.Value{255, 215, 0}},
}

// Builtin returns a fresh copy of the seed palette record.
func Builtin() *Record {
	record := NewRecord()
	for _, c := range builtinColors {
		record.Set(c.name, c.value.Clone())
	}
	return record
}

// EnsureSeeded writes the builtin palette when the store holds no palettes at
// all, so first-run lookups have content to resolve against.
func (s *Store) EnsureSeeded() error {
	if err := filesystem.API().MkdirAll(s.path, os.ModePerm); err != nil {
		return &apperr.StorageError{Op: "seed", Palette: BuiltinName, Err: err}
	}

	names, err := s.List()
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return nil
	}
	return s.Save(BuiltinName, Builtin())
}
