// Package gradient implements linear interpolation across an ordered sequence of colors.
package gradient

import (
	"fmt"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/colormath"
	"github.com/colordict-cli/colordict/util"
)

// Linear is an immutable sequence of anchor colors interpolated channelwise.
// Interpolation operates directly on the numeric RGBA components; anchors are
// expected at a common norm.
type Linear struct {
	anchors []colormath.Value
	norm    float64
}

// NewLinear captures an ordered sequence of one or more RGB(A) anchors,
// defaulting absent alpha channels to the given norm.
func NewLinear(norm float64, anchors ...colormath.Value) (*Linear, error) {
	if len(anchors) == 0 {
		return nil, &apperr.ConfigError{Reason: "a gradient needs at least one anchor color"}
	}

	captured := make([]colormath.Value, len(anchors))
	for i, anchor := range anchors {
		captured[i] = anchor.WithAlpha(norm)
	}
	return &Linear{anchors: captured, norm: norm}, nil
}

// Anchors returns copies of the anchor colors in order.
func (g *Linear) Anchors() []colormath.Value {
	out := make([]colormath.Value, len(g.anchors))
	for i, anchor := range g.anchors {
		out[i] = anchor.Clone()
	}
	return out
}

// At evaluates the gradient at a fraction. The anchors span [0, 1] as equal
// length segments; t is clamped to [0, 1], so out-of-range fractions return
// the first or last anchor rather than extrapolating. A single-anchor
// gradient returns that anchor for every t.
func (g *Linear) At(t float64) colormath.Value {
	t = util.Clamp(t, 0, 1)

	segments := float64(len(g.anchors) - 1)
	pos := t * segments
	i := int(pos)
	next := util.Min(i+1, len(g.anchors)-1)

	return lerp(g.anchors[i], g.anchors[next], pos-float64(i))
}

// Colors returns n samples along the gradient. With stripped set, samples are
// evenly spaced strictly inside the open interval (0, 1), excluding the
// literal first and last anchors; otherwise they span the closed interval
// [0, 1] including both endpoints.
func (g *Linear) Colors(n int, stripped bool) ([]colormath.Value, error) {
	if stripped && n < 1 {
		return nil, &apperr.ConfigError{Reason: fmt.Sprintf("sample count must be at least 1, got %d", n)}
	}
	if !stripped && n < 2 {
		return nil, &apperr.ConfigError{Reason: fmt.Sprintf("closed-interval sampling needs at least 2 samples to include both endpoints, got %d", n)}
	}

	colors := make([]colormath.Value, n)
	for i := 0; i < n; i++ {
		var p float64
		if stripped {
			p = float64(i+1) / float64(n+1)
		} else {
			p = float64(i) / float64(n-1)
		}
		colors[i] = g.At(p)
	}
	return colors, nil
}

// lerp interpolates each channel independently between two equal-arity colors.
func lerp(a, b colormath.Value, t float64) colormath.Value {
	out := make(colormath.Value, len(a))
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
