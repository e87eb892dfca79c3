package colordict

import (
	"errors"
	"testing"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/filesystem"
	"github.com/colordict-cli/colordict/palette"
	. "github.com/smartystreets/goconvey/convey"
)

const palettesDir = "/palettes"

// seed writes test palettes into the in-memory filesystem.
func seed() {
	filesystem.SetMemMapFs()
	So(filesystem.API().MkdirAll(palettesDir, 0755), ShouldBeNil)

	store := palette.NewStore(palettesDir)

	warm := palette.NewRecord()
	warm.Set("red", colormath.Value{255, 0, 0})
	warm.Set("orange", colormath.Value{255, 165, 0})
	So(store.Save("warm", warm), ShouldBeNil)

	cool := palette.NewRecord()
	cool.Set("blue", colormath.Value{0, 0, 255})
	cool.Set("teal", colormath.Value{0, 128, 128, 200})
	So(store.Save("cool", cool), ShouldBeNil)
}

func open(opts Options) *Dictionary {
	if opts.Path == "" {
		opts.Path = palettesDir
	}
	d, err := New(opts)
	So(err, ShouldBeNil)
	return d
}

func TestConstruction(t *testing.T) {
	Convey("Given seeded palettes", t, func() {
		seed()

		Convey("Default construction loads all palettes at norm 255", func() {
			d := open(Options{})
			So(d.Norm(), ShouldEqual, 255)
			So(d.Mode(), ShouldEqual, colormath.ModeRGB)
			So(d.Palettes(), ShouldResemble, []string{"cool", "warm"})
			So(d.Names(), ShouldResemble, []string{"blue", "orange", "red", "teal"})
		})

		Convey("A palette subset restricts the namespace", func() {
			d := open(Options{Palettes: []string{"warm"}})
			So(d.Names(), ShouldResemble, []string{"orange", "red"})
		})

		Convey("An unknown palette fails with ConfigError", func() {
			var configErr *apperr.ConfigError
			_, err := New(Options{Path: palettesDir, Palettes: []string{"missing"}})
			So(err, ShouldNotBeNil)
			So(errors.As(err, &configErr), ShouldBeTrue)
		})

		Convey("A negative norm fails with ConfigError", func() {
			var configErr *apperr.ConfigError
			_, err := New(Options{Path: palettesDir, Norm: -1})
			So(err, ShouldNotBeNil)
			So(errors.As(err, &configErr), ShouldBeTrue)
		})

		Convey("An unknown mode fails with ConfigError", func() {
			var configErr *apperr.ConfigError
			_, err := New(Options{Path: palettesDir, Mode: "cmyk"})
			So(err, ShouldNotBeNil)
			So(errors.As(err, &configErr), ShouldBeTrue)
		})

		Convey("A name defined by several palettes takes the last-loaded value", func() {
			store := palette.NewStore(palettesDir)

			first := palette.NewRecord()
			first.Set("shared", colormath.Value{10, 10, 10})
			So(store.Save("aaa", first), ShouldBeNil)

			second := palette.NewRecord()
			second.Set("shared", colormath.Value{200, 200, 200})
			So(store.Save("bbb", second), ShouldBeNil)

			Convey("In the default sorted load order", func() {
				d := open(Options{})
				v, err := d.Get("shared")
				So(err, ShouldBeNil)
				So(v.Equal(colormath.Value{200, 200, 200}, 0), ShouldBeTrue)

				// Both palettes still record the membership.
				So(d.PalettesOf("shared"), ShouldResemble, []string{"aaa", "bbb"})
			})

			Convey("In an explicit palette order", func() {
				d := open(Options{Palettes: []string{"bbb", "aaa"}})
				v, err := d.Get("shared")
				So(err, ShouldBeNil)
				So(v.Equal(colormath.Value{10, 10, 10}, 0), ShouldBeTrue)
				So(d.PalettesOf("shared"), ShouldResemble, []string{"bbb", "aaa"})
			})
		})

		Convey("Values are rescaled to a custom norm at load", func() {
			d := open(Options{Norm: 1})
			v, err := d.Get("red")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{1, 0, 0}, 1e-9), ShouldBeTrue)
		})
	})
}

func TestReads(t *testing.T) {
	Convey("Given a default dictionary", t, func() {
		seed()
		d := open(Options{})

		Convey("Get returns the value in the configured mode", func() {
			v, err := d.Get("red")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{255, 0, 0}, 0), ShouldBeTrue)
		})

		Convey("Get of an unknown name fails with NotFoundError", func() {
			var notFound *apperr.NotFoundError
			_, err := d.Get("chartreuse")
			So(err, ShouldNotBeNil)
			So(errors.As(err, &notFound), ShouldBeTrue)
		})

		Convey("GetIn overrides the mode for one call", func() {
			v, err := d.GetIn("red", colormath.ModeHSV)
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{0, 1, 1}, 1e-9), ShouldBeTrue)
		})

		Convey("GetIn rgba defaults alpha to the norm", func() {
			v, err := d.GetIn("red", colormath.ModeRGBA)
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{255, 0, 0, 255}, 0), ShouldBeTrue)
		})

		Convey("Persisted alpha survives to rgba reads", func() {
			v, err := d.GetIn("teal", colormath.ModeRGBA)
			So(err, ShouldBeNil)
			So(v[3], ShouldEqual, 200)
		})

		Convey("GetHex encodes at norm 255 regardless of the configured norm", func() {
			unit := open(Options{Norm: 1})
			hex, err := unit.GetHex("red")
			So(err, ShouldBeNil)
			So(hex, ShouldEqual, "#ff0000")
		})

		Convey("Grayscale applies before conversion", func() {
			d.SetGrayscale(true)
			v, err := d.Get("red")
			So(err, ShouldBeNil)
			So(v[0], ShouldAlmostEqual, 76.5, 1e-9)
			So(v[0], ShouldEqual, v[1])
			So(v[1], ShouldEqual, v[2])
		})

		Convey("Named finds all aliases of a value", func() {
			So(d.Set("crimson", colormath.Value{255, 0, 0}), ShouldBeNil)
			So(d.Named(colormath.Value{255, 0, 0}), ShouldResemble, []string{"crimson", "red"})
			So(d.Named(colormath.Value{1, 2, 3}), ShouldBeEmpty)
		})

		Convey("PalettesOf tracks memberships in load order", func() {
			So(d.PalettesOf("red"), ShouldResemble, []string{"warm"})
			So(d.PalettesOf("chartreuse"), ShouldBeEmpty)

			So(d.Add("red", colormath.Value{255, 0, 0}, "favorites", false), ShouldBeNil)
			So(d.PalettesOf("red"), ShouldResemble, []string{"warm", "favorites"})

			// A single owner can be removed from without naming the palette.
			So(d.Remove("orange", d.PalettesOf("orange")[0]), ShouldBeNil)
			So(d.PalettesOf("orange"), ShouldBeEmpty)
		})

		Convey("Bulk accessors always yield RGBA at the configured norm", func() {
			So(d.SetMode(colormath.ModeHSV), ShouldBeNil)
			for _, v := range d.Values() {
				So(v.HasAlpha(), ShouldBeTrue)
			}
			items := d.Items()
			So(items["red"].Equal(colormath.Value{255, 0, 0, 255}, 0), ShouldBeTrue)
		})
	})
}

func TestMutation(t *testing.T) {
	Convey("Given a default dictionary", t, func() {
		seed()
		d := open(Options{})

		Convey("Set overwrites in memory without touching membership", func() {
			So(d.Set("red", colormath.Value{200, 10, 10}), ShouldBeNil)
			v, err := d.Get("red")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{200, 10, 10}, 0), ShouldBeTrue)

			members, err := d.Members("warm")
			So(err, ShouldBeNil)
			So(members, ShouldResemble, []string{"red", "orange"})
		})

		Convey("Set rejects malformed values with FormatError", func() {
			var formatErr *apperr.FormatError
			So(errors.As(d.Set("bad", colormath.Value{1, 2}), &formatErr), ShouldBeTrue)
			So(errors.As(d.Set("bad", colormath.Value{1, 2, 300, 4, 5}), &formatErr), ShouldBeTrue)
			So(errors.As(d.Set("bad", colormath.Value{1, 2, 999}), &formatErr), ShouldBeTrue)
		})

		Convey("Add with check protects the one-name-one-value invariant", func() {
			So(d.Add("mint", colormath.Value{60, 240, 180}, "cool", true), ShouldBeNil)

			var conflict *apperr.ConflictError
			err := d.Add("mint", colormath.Value{1, 2, 3}, "cool", true)
			So(errors.As(err, &conflict), ShouldBeTrue)

			// The stored value must be the first one.
			v, err := d.Get("mint")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{60, 240, 180}, 0), ShouldBeTrue)
		})

		Convey("Add without check overwrites and extends membership", func() {
			So(d.Add("red", colormath.Value{250, 5, 5}, "favorites", false), ShouldBeNil)

			v, err := d.Get("red")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{250, 5, 5}, 0), ShouldBeTrue)

			// red now belongs to both palettes.
			warm := membersOf(d, "warm")
			favorites := membersOf(d, "favorites")
			So(warm, ShouldContain, "red")
			So(favorites, ShouldContain, "red")
		})

		Convey("Add defaults to the independent palette", func() {
			So(d.Add("slate", colormath.Value{110, 120, 130}, "", true), ShouldBeNil)
			members, err := d.Members(IndependentPalette)
			So(err, ShouldBeNil)
			So(members, ShouldContain, "slate")
		})

		Convey("Remove drops one membership, the last one drops the name", func() {
			So(d.Add("red", colormath.Value{255, 0, 0}, "favorites", false), ShouldBeNil)

			So(d.Remove("red", "favorites"), ShouldBeNil)
			_, err := d.Get("red")
			So(err, ShouldBeNil)

			So(d.Remove("red", "warm"), ShouldBeNil)
			var notFound *apperr.NotFoundError
			_, err = d.Get("red")
			So(errors.As(err, &notFound), ShouldBeTrue)
		})

		Convey("Remove of a non-member fails with NotFoundError", func() {
			var notFound *apperr.NotFoundError
			So(errors.As(d.Remove("red", "cool"), &notFound), ShouldBeTrue)
		})

		Convey("RemoveAll erases the name everywhere", func() {
			So(d.Add("red", colormath.Value{255, 0, 0}, "favorites", false), ShouldBeNil)
			So(d.RemoveAll("red"), ShouldBeNil)

			var notFound *apperr.NotFoundError
			_, err := d.Get("red")
			So(errors.As(err, &notFound), ShouldBeTrue)
			So(membersOf(d, "warm"), ShouldNotContain, "red")
			So(membersOf(d, "favorites"), ShouldNotContain, "red")

			Convey("And reports when the name was never present", func() {
				So(errors.As(d.RemoveAll("red"), &notFound), ShouldBeTrue)
			})
		})
	})
}

// membersOf fetches palette members, failing the test on error.
func membersOf(d *Dictionary, paletteName string) []string {
	members, err := d.Members(paletteName)
	So(err, ShouldBeNil)
	return members
}

func TestPersistence(t *testing.T) {
	Convey("Given a dictionary with mutations", t, func() {
		seed()
		d := open(Options{})
		So(d.Add("mint", colormath.Value{60, 240, 180}, "cool", true), ShouldBeNil)
		So(d.Set("red", colormath.Value{250, 0, 0}), ShouldBeNil)

		Convey("Save flushes dirty palettes and reloads identically", func() {
			So(d.Save(), ShouldBeNil)

			reloaded := open(Options{})
			v, err := reloaded.Get("mint")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{60, 240, 180}, 1e-9), ShouldBeTrue)

			v, err = reloaded.Get("red")
			So(err, ShouldBeNil)
			So(v.Equal(colormath.Value{250, 0, 0}, 1e-9), ShouldBeTrue)
		})

		Convey("Save rescales to the persisted norm for non-255 dictionaries", func() {
			unit := open(Options{Norm: 1})
			So(unit.Add("half", colormath.Value{0.5, 0.5, 0.5}, "grays", true), ShouldBeNil)
			So(unit.Save(), ShouldBeNil)

			record, err := palette.NewStore(palettesDir).Load("grays")
			So(err, ShouldBeNil)
			stored, ok := record.Get("half")
			So(ok, ShouldBeTrue)
			So(stored.Equal(colormath.Value{127.5, 127.5, 127.5}, 1e-9), ShouldBeTrue)
		})

		Convey("Clean palettes are not rewritten", func() {
			So(d.Save(), ShouldBeNil)

			// Corrupt the untouched palette on disk; a second Save must not heal it.
			So(filesystem.API().WriteFile(palettesDir+"/warm.json", []byte(`{"sentinel": [9, 9, 9]}`), 0644), ShouldBeNil)
			So(d.Set("mint", colormath.Value{61, 241, 181}), ShouldBeNil)
			So(d.Save(), ShouldBeNil)

			record, err := palette.NewStore(palettesDir).Load("warm")
			So(err, ShouldBeNil)
			_, ok := record.Get("sentinel")
			So(ok, ShouldBeTrue)
		})
	})
}

func TestBackupRestore(t *testing.T) {
	Convey("Given a dictionary", t, func() {
		seed()
		d := open(Options{})

		Convey("Restore without a backup fails with StateError", func() {
			var stateErr *apperr.StateError
			So(errors.As(d.Restore(), &stateErr), ShouldBeTrue)
		})

		Convey("Backup then mutation then Restore rolls back exactly", func() {
			namesBefore := d.Names()
			valueBefore, err := d.Get("red")
			So(err, ShouldBeNil)

			d.Backup()
			So(d.Add("extra", colormath.Value{9, 9, 9}, "scratch", true), ShouldBeNil)
			So(d.Set("red", colormath.Value{1, 1, 1}), ShouldBeNil)
			So(d.RemoveAll("blue"), ShouldBeNil)

			So(d.Restore(), ShouldBeNil)
			So(d.Names(), ShouldResemble, namesBefore)

			restored, err := d.Get("red")
			So(err, ShouldBeNil)
			So(restored.Equal(valueBefore, 0), ShouldBeTrue)

			_, err = d.Members("scratch")
			So(err, ShouldNotBeNil)

			Convey("And can be restored repeatedly", func() {
				So(d.Set("red", colormath.Value{2, 2, 2}), ShouldBeNil)
				So(d.Restore(), ShouldBeNil)
				again, err := d.Get("red")
				So(err, ShouldBeNil)
				So(again.Equal(valueBefore, 0), ShouldBeTrue)
			})
		})
	})
}
