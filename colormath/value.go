// Package colormath implements pure, stateless conversions between color representations.
//
// Values are 3- or 4-component channel tuples. Every conversion documents the
// norm its input is expected in; violating that contract produces garbage, it
// is not detected.
package colormath

import "math"

// Value is an RGB or RGBA channel tuple. The fourth component, when present,
// is the alpha channel.
type Value []float64

// HasAlpha reports whether the value carries an explicit alpha component.
func (v Value) HasAlpha() bool {
	return len(v) == 4
}

// Clone returns an independent copy of the value.
func (v Value) Clone() Value {
	out := make(Value, len(v))
	copy(out, v)
	return out
}

// WithAlpha returns the value extended to four components, defaulting the
// alpha channel to the given norm (fully opaque) when it is absent.
func (v Value) WithAlpha(norm float64) Value {
	if v.HasAlpha() {
		return v.Clone()
	}
	out := make(Value, 4)
	copy(out, v)
	out[3] = norm
	return out
}

// RGB returns the value truncated to its three color components.
func (v Value) RGB() Value {
	return v[:3].Clone()
}

// Equal reports componentwise equality within the given tolerance.
// Values of different arity are never equal.
func (v Value) Equal(other Value, tol float64) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-other[i]) > tol {
			return false
		}
	}
	return true
}
