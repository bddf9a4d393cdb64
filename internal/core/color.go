package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorOrange
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
)

// String returns the color name.
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
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	case ColorOrange:
		return "orange"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
