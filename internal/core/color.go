package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses the standard ANSI palette for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Attr represents text attributes applied to a screen cell.
// The scene uses bold and dim to modulate raindrop intensity.
type Attr uint8

const (
	AttrNormal Attr = 0
	AttrBold   Attr = 1 << iota
	AttrDim
)

// PaletteNames lists the color names accepted on the command line and in
// the config file, in display order.
var PaletteNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

var colorsByName = map[string]Color{
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

// ParseColor resolves a color name to a Color, case-insensitively.
// Unknown or empty names fall back to def rather than failing: a bad
// --rain-color should never prevent the scene from running.
func ParseColor(name string, def Color) Color {
	if c, ok := colorsByName[strings.ToLower(name)]; ok {
		return c
	}
	return def
}

// String returns the palette name for the color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "default"
	}
}
