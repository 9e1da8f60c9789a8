package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDim // ground preview and empty wells
	ColorBrightWhite
	ColorBrightYellow
)

// String returns a lowercase name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
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
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDim:
		return "dim"
	case ColorBrightWhite:
		return "bright-white"
	case ColorBrightYellow:
		return "bright-yellow"
	default:
		return "unknown"
	}
}
