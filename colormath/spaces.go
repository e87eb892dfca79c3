package colormath

import "math"

// The conversions below operate on normalized [0, 1] RGB and produce each
// target space's native range: HLS and HSV channels in [0, 1], YIQ luma in
// [0, 1] with chroma components that can be negative. Alpha is dropped on the
// way out of RGB and passed through unchanged on the way back in.

const oneThird = 1.0 / 3
const oneSixth = 1.0 / 6
const twoThird = 2.0 / 3

// mod1 wraps a value into [0, 1) the way a floored modulo would.
func mod1(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}
	return m
}

// RGBToHLS converts a norm-1 RGB(A) value to (hue, lightness, saturation).
func RGBToHLS(v Value) Value {
	r, g, b := v[0], v[1], v[2]
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc

	l := sumc / 2
	if minc == maxc {
		return Value{0, l, 0}
	}

	var s float64
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2 - sumc)
	}

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec

	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return Value{mod1(h / 6), l, s}
}

// HLSToRGB converts a (hue, lightness, saturation) value to norm-1 RGB.
// A fourth component, when present, is carried over as alpha.
func HLSToRGB(v Value) Value {
	h, l, s := v[0], v[1], v[2]
	var out Value
	if s == 0 {
		out = Value{l, l, l}
	} else {
		var m2 float64
		if l <= 0.5 {
			m2 = l * (1 + s)
		} else {
			m2 = l + s - l*s
		}
		m1 := 2*l - m2
		out = Value{hueComponent(m1, m2, h+oneThird), hueComponent(m1, m2, h), hueComponent(m1, m2, h-oneThird)}
	}
	if v.HasAlpha() {
		out = append(out, v[3])
	}
	return out
}

func hueComponent(m1, m2, hue float64) float64 {
	hue = mod1(hue)
	switch {
	case hue < oneSixth:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < twoThird:
		return m1 + (m2-m1)*(twoThird-hue)*6
	default:
		return m1
	}
}

// RGBToHSV converts a norm-1 RGB(A) value to (hue, saturation, value).
func RGBToHSV(v Value) Value {
	r, g, b := v[0], v[1], v[2]
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	if minc == maxc {
		return Value{0, 0, maxc}
	}

	rangec := maxc - minc
	s := rangec / maxc
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec

	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return Value{mod1(h / 6), s, maxc}
}

// HSVToRGB converts a (hue, saturation, value) value to norm-1 RGB.
// A fourth component, when present, is carried over as alpha.
func HSVToRGB(v Value) Value {
	h, s, val := v[0], v[1], v[2]
	var out Value
	if s == 0 {
		out = Value{val, val, val}
	} else {
		i := int(math.Floor(h * 6))
		f := h*6 - float64(i)
		p := val * (1 - s)
		q := val * (1 - s*f)
		t := val * (1 - s*(1-f))
		switch ((i % 6) + 6) % 6 {
		case 0:
			out = Value{val, t, p}
		case 1:
			out = Value{q, val, p}
		case 2:
			out = Value{p, val, t}
		case 3:
			out = Value{p, q, val}
		case 4:
			out = Value{t, p, val}
		default:
			out = Value{val, p, q}
		}
	}
	if v.HasAlpha() {
		out = append(out, v[3])
	}
	return out
}

// RGBToYIQ converts a norm-1 RGB(A) value to (luma, in-phase, quadrature).
func RGBToYIQ(v Value) Value {
	r, g, b := v[0], v[1], v[2]
	y := 0.30*r + 0.59*g + 0.11*b
	i := 0.74*(r-y) - 0.27*(b-y)
	q := 0.48*(r-y) + 0.41*(b-y)
	return Value{y, i, q}
}

// YIQToRGB converts a (luma, in-phase, quadrature) value to norm-1 RGB.
// Each output channel is clamped to [0, 1]. A fourth component, when present,
// is carried over as alpha.
func YIQToRGB(v Value) Value {
	y, i, q := v[0], v[1], v[2]
	r := y + 0.9468822170900693*i + 0.6235565819861433*q
	g := y - 0.27478764629897834*i - 0.6356910791873801*q
	b := y - 1.1085450346420322*i + 1.7090069284064666*q

	out := Value{clamp01(r), clamp01(g), clamp01(b)}
	if v.HasAlpha() {
		out = append(out, v[3])
	}
	return out
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
