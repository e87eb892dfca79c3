package colormath

import (
	"fmt"
	"math"
	"strings"

	"github.com/colordict-cli/colordict/apperr"
	"github.com/colordict-cli/colordict/util"
)

// Mode identifies one of the supported color representations. The set is
// closed: unknown mode strings are rejected at configuration time through
// ParseMode, never at read time.
type Mode string

const (
	ModeRGB  Mode = "rgb"
	ModeRGBA Mode = "rgba"
	ModeHex  Mode = "hex"
	ModeHLS  Mode = "hls"
	ModeHSV  Mode = "hsv"
	ModeYIQ  Mode = "yiq"
)

// modeTable maps every supported mode to its conversion from an RGBA value at
// a caller-supplied norm into the mode's native representation.
var modeTable = map[Mode]func(v Value, norm float64) Value{
	ModeRGB: func(v Value, _ float64) Value {
		return v.RGB()
	},
	ModeRGBA: func(v Value, norm float64) Value {
		return v.WithAlpha(norm)
	},
	ModeHex: func(v Value, norm float64) Value {
		// Hex encoding assumes norm 255; rounding mirrors RGBToHex so the
		// numeric form and the string form always agree.
		scaled := Renorm(v.RGB(), norm, 255)
		for i, spec := range scaled {
			scaled[i] = util.Clamp(math.Round(spec), 0, 255)
		}
		return scaled
	},
	ModeHLS: func(v Value, norm float64) Value {
		return RGBToHLS(Renorm(v, norm, 1))
	},
	ModeHSV: func(v Value, norm float64) Value {
		return RGBToHSV(Renorm(v, norm, 1))
	},
	ModeYIQ: func(v Value, norm float64) Value {
		return RGBToYIQ(Renorm(v, norm, 1))
	},
}

// ParseMode validates a mode string against the closed set of supported representations.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if _, ok := modeTable[mode]; !ok {
		return "", &apperr.ConfigError{Reason: fmt.Sprintf("unknown color mode %q, available modes are: %s", s, strings.Join(Modes(), ", "))}
	}
	return mode, nil
}

// Modes returns the identifiers of every supported representation.
func Modes() []string {
	return []string{string(ModeRGB), string(ModeRGBA), string(ModeHex), string(ModeHLS), string(ModeHSV), string(ModeYIQ)}
}

// FromRGBA converts an RGB(A) value expressed at the given norm into the
// mode's native representation.
func (m Mode) FromRGBA(v Value, norm float64) Value {
	return modeTable[m](v, norm)
}
