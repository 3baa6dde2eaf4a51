package logger

// Color is an ANSI escape sequence used by the console handler. The
// high-intensity variants are used because the regular ones render too dark
// on most terminals.
type Color string

const (
	ColorWhite  Color = "\033[97m"
	ColorRed    Color = "\033[91m"
	ColorOrange Color = "\033[38;5;208m"
	ColorGreen  Color = "\033[92m"
	ColorYellow Color = "\033[93m"
	ColorCyan   Color = "\033[96m"
	ColorBlue   Color = "\033[94m"
	ColorPurple Color = "\033[95m"
	ColorBrown  Color = "\033[38;5;94m"
	ColorBlack  Color = "\033[90m"

	colorOff Color = "\033[0m"
)

// Colorize wraps text in the escape sequences that render it in the given
// color on an ANSI terminal.
func Colorize(text string, c Color) string {
	if c == "" {
		return text
	}
	return string(c) + text + string(colorOff)
}
