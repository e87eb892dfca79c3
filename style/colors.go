package style

import "github.com/charmbracelet/lipgloss"

// NewColor initializes a lipgloss.Color from a string value.
func NewColor(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = NewColor("1")
	Green  = NewColor("2")
	Yellow = NewColor("3")
	Blue   = NewColor("4")
	Purple = NewColor("5")
	Cyan   = NewColor("6")
	White  = NewColor("7")
	Black  = NewColor("8")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = NewColor("9")
	HiGreen  = NewColor("10")
	HiYellow = NewColor("11")
	HiBlue   = NewColor("12")
	HiPurple = NewColor("13")
	HiCyan   = NewColor("14")
	HiWhite  = NewColor("15")
	HiBlack  = NewColor("16")
)
