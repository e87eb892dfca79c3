package colormath

import (
	"fmt"
	"math"
	"strings"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/util"
)

// grayWeights are the perceptual luminance weights applied to R, G and B.
var grayWeights = [3]float64{0.3, 0.59, 0.11}

// Renorm linearly rescales every component of a value, including alpha when
// present, from oldNorm to newNorm. No clamping is applied.
func Renorm(v Value, oldNorm, newNorm float64) Value {
	out := make(Value, len(v))
	for i, spec := range v {
		out[i] = spec * newNorm / oldNorm
	}
	return out
}

// Grayscale converts a color to its perceptual luminance, replicated across
// the three color channels. Alpha, when present, is preserved unchanged.
// It can be used to visualize how a palette would look if printed in black and white.
func Grayscale(v Value) Value {
	var lum float64
	for i, w := range grayWeights {
		lum += v[i] * w
	}
	out := make(Value, len(v))
	out[0], out[1], out[2] = lum, lum, lum
	if v.HasAlpha() {
		out[3] = v[3]
	}
	return out
}

// RGBToHex encodes a norm-255 RGB(A) value as a lowercase "#rrggbb" string.
// Each channel is rounded to the nearest integer and clamped to [0, 255];
// alpha, when present, is dropped.
func RGBToHex(v Value) string {
	var channels [3]int
	for i := 0; i < 3; i++ {
		channels[i] = int(util.Clamp(math.Round(v[i]), 0, 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
}

// HexToRGB parses a 6-digit hex string, with or without a leading "#", into
// an integer-valued norm-255 RGB value.
func HexToRGB(hex string) (Value, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil, &apperr.FormatError{Reason: fmt.Sprintf("hex color %q should be 6 characters long disregarding the leading '#'", hex)}
	}

	out := make(Value, 3)
	for i := 0; i < 3; i++ {
		channel, err := parseHexByte(hex[2*i : 2*i+2])
		if err != nil {
			return nil, err
		}
		out[i] = float64(channel)
	}
	return out, nil
}

// parseHexByte decodes two hex digits into an integer in [0, 255].
func parseHexByte(s string) (int, error) {
	var val int
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += int(c - '0')
		case 'a' <= c && c <= 'f':
			val += int(c-'a') + 10
		case 'A' <= c && c <= 'F':
			val += int(c-'A') + 10
		default:
			return 0, &apperr.FormatError{Reason: fmt.Sprintf("invalid hex digit %q", string(c))}
		}
	}
	return val, nil
}
