package gradient

import (
	"errors"
	"testing"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	. "github.com/smartystreets/goconvey/convey"
)

func rgbGradient() *Linear {
	g, err := NewLinear(255,
		colormath.Value{255, 0, 0},
		colormath.Value{0, 255, 0},
		colormath.Value{0, 0, 255},
	)
	So(err, ShouldBeNil)
	return g
}

func TestConstruction(t *testing.T) {
	Convey("NewLinear", t, func() {
		Convey("Should reject an empty anchor sequence", func() {
			var configErr *apperr.ConfigError
			_, err := NewLinear(255)
			So(errors.As(err, &configErr), ShouldBeTrue)
		})

		Convey("Should default alpha to the norm", func() {
			g, err := NewLinear(255, colormath.Value{10, 20, 30})
			So(err, ShouldBeNil)
			So(g.Anchors()[0].Equal(colormath.Value{10, 20, 30, 255}, 0), ShouldBeTrue)
		})

		Convey("Should keep explicit alpha", func() {
			g, err := NewLinear(255, colormath.Value{10, 20, 30, 40})
			So(err, ShouldBeNil)
			So(g.Anchors()[0][3], ShouldEqual, 40)
		})
	})
}

func TestAt(t *testing.T) {
	Convey("Given a red-green-blue gradient", t, func() {
		g := rgbGradient()

		Convey("The endpoints return the first and last anchors", func() {
			So(g.At(0).Equal(colormath.Value{255, 0, 0, 255}, 0), ShouldBeTrue)
			So(g.At(1).Equal(colormath.Value{0, 0, 255, 255}, 0), ShouldBeTrue)
		})

		Convey("The midpoint lands exactly on the middle anchor", func() {
			So(g.At(0.5).Equal(colormath.Value{0, 255, 0, 255}, 1e-9), ShouldBeTrue)
		})

		Convey("Quarter way is the componentwise midpoint of red and green", func() {
			So(g.At(0.25).Equal(colormath.Value{127.5, 127.5, 0, 255}, 1e-9), ShouldBeTrue)
		})

		Convey("Out-of-range fractions clamp to the nearest endpoint", func() {
			So(g.At(-0.5).Equal(g.At(0), 0), ShouldBeTrue)
			So(g.At(1.5).Equal(g.At(1), 0), ShouldBeTrue)
		})
	})

	Convey("A single-anchor gradient returns its anchor for every fraction", t, func() {
		g, err := NewLinear(255, colormath.Value{12, 34, 56})
		So(err, ShouldBeNil)
		for _, p := range []float64{0, 0.3, 0.5, 1} {
			So(g.At(p).Equal(colormath.Value{12, 34, 56, 255}, 0), ShouldBeTrue)
		}
	})
}

func TestColors(t *testing.T) {
	Convey("Given a red-green-blue gradient", t, func() {
		g := rgbGradient()
		first := g.At(0)
		last := g.At(1)

		Convey("Stripped sampling never returns the first or last anchor", func() {
			colors, err := g.Colors(5, true)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 5)
			for _, c := range colors {
				So(c.Equal(first, 1e-9), ShouldBeFalse)
				So(c.Equal(last, 1e-9), ShouldBeFalse)
			}
		})

		Convey("Closed sampling with n=2 returns exactly the endpoints", func() {
			colors, err := g.Colors(2, false)
			So(err, ShouldBeNil)
			So(colors[0].Equal(first, 0), ShouldBeTrue)
			So(colors[1].Equal(last, 0), ShouldBeTrue)
		})

		Convey("A stripped single sample is the gradient midpoint", func() {
			colors, err := g.Colors(1, true)
			So(err, ShouldBeNil)
			So(colors[0].Equal(g.At(0.5), 1e-9), ShouldBeTrue)
		})

		Convey("Invalid sample counts fail with ConfigError", func() {
			var configErr *apperr.ConfigError
			_, err := g.Colors(0, true)
			So(errors.As(err, &configErr), ShouldBeTrue)
			_, err = g.Colors(1, false)
			So(errors.As(err, &configErr), ShouldBeTrue)
		})
	})
}
