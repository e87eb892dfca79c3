package palette

import (
	"errors"
	"testing"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestStore(t *testing.T) {
	Convey("Given a store over an empty directory", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().MkdirAll("/palettes", 0755), ShouldBeNil)
		store := NewStore("/palettes")

		Convey("List should return no names", func() {
			names, err := store.List()
			So(err, ShouldBeNil)
			So(names, ShouldBeEmpty)
		})

		Convey("Load of a missing palette should fail with StorageError", func() {
			var storageErr *apperr.StorageError
			_, err := store.Load("nope")
			So(err, ShouldNotBeNil)
			So(errors.As(err, &storageErr), ShouldBeTrue)
		})

		Convey("When saving a record", func() {
			record := NewRecord()
			record.Set("sunset", colormath.Value{250, 128, 30})
			record.Set("dusk", colormath.Value{40, 40, 90, 200})
			So(store.Save("sky", record), ShouldBeNil)

			Convey("It should appear in List", func() {
				names, err := store.List()
				So(err, ShouldBeNil)
				So(names, ShouldResemble, []string{"sky"})
				So(store.Exists("sky"), ShouldBeTrue)
			})

			Convey("It should round-trip exactly, order included", func() {
				loaded, err := store.Load("sky")
				So(err, ShouldBeNil)
				So(loaded.Len(), ShouldEqual, 2)

				first := loaded.Oldest()
				So(first.Key, ShouldEqual, "sunset")
				So(first.Value.Equal(colormath.Value{250, 128, 30}, 0), ShouldBeTrue)

				second := first.Next()
				So(second.Key, ShouldEqual, "dusk")
				So(second.Value.HasAlpha(), ShouldBeTrue)
			})
		})

		Convey("Load should reject values with the wrong arity", func() {
			So(filesystem.API().WriteFile("/palettes/bad.json", []byte(`{"oops": [1, 2]}`), 0644), ShouldBeNil)

			var formatErr *apperr.FormatError
			_, err := store.Load("bad")
			So(err, ShouldNotBeNil)
			So(errors.As(err, &formatErr), ShouldBeTrue)
		})

		Convey("EnsureSeeded should create the builtin palette once", func() {
			So(store.EnsureSeeded(), ShouldBeNil)
			So(store.Exists(BuiltinName), ShouldBeTrue)

			record := NewRecord()
			record.Set("only", colormath.Value{1, 2, 3})
			So(store.Save("custom", record), ShouldBeNil)

			// A second call must not reseed or overwrite.
			So(store.EnsureSeeded(), ShouldBeNil)
			names, err := store.List()
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{BuiltinName, "custom"})
		})
	})
}
