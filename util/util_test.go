package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var errTest = errors.New("discarded")

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("pal:name?.json"), ShouldEqual, "pal_name_.json")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("pal__name.json"), ShouldEqual, "pal_name.json")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-pal-name-"), ShouldEqual, "pal-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "color", "colors"), ShouldEqual, "1 color")
		So(Quantify(2, "color", "colors"), ShouldEqual, "2 colors")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/base.json"), ShouldEqual, "base")
		So(FileStem("base"), ShouldEqual, "base")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(1.5, 0.0, 1.0), ShouldEqual, 1.0)
		So(Clamp(-0.5, 0.0, 1.0), ShouldEqual, 0.0)
		So(Clamp(0.25, 0.0, 1.0), ShouldEqual, 0.25)
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return nil
		})
		So(called, ShouldBeTrue)
		So(func() {
			Ignore(func() error { return errTest })
		}, ShouldNotPanic)
	})
}

func TestMinMax(t *testing.T) {
	Convey("Min and Max", t, func() {
		So(Max(1, 3, 2), ShouldEqual, 3)
		So(Min(1, 3, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}
