package trace

// ANSI SGR color codes for the stdout trace, grounded on the CL enum of
// the original source's utils module. Presentation-only: nothing here
// feeds back into the matchmaker or player logic.
const (
	colorDull      = "\x1b[38;5;8m"
	colorDullGreen = "\x1b[38;5;29m"
	colorGreen     = "\x1b[38;5;10m"
	colorOrange    = "\x1b[38;5;208m"
	colorRed       = "\x1b[38;5;196m"
	colorTeal      = "\x1b[38;5;14m"
	colorEnd       = "\x1b[37m"
	colorReset     = "\x1b[0m"
)

func paint(enabled bool, color, text string) string {
	if !enabled {
		return text
	}
	return color + text + colorReset
}
