package style

import "strings"

// SwatchWidth is the default character width of a single color preview block.
const SwatchWidth = 4

// Swatch renders a solid preview block for a color given as a "#rrggbb" hex string.
func Swatch(hex string) string {
	return Bg(NewColor(hex))(strings.Repeat(" ", SwatchWidth))
}

// SwatchBar renders a contiguous strip of single-cell preview blocks, one per
// hex string, used for visualizing gradients.
func SwatchBar(hexes []string) string {
	var b strings.Builder
	for _, h := range hexes {
		b.WriteString(Bg(NewColor(h))(" "))
	}
	return b.String()
}
