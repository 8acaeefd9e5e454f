package core

// Color is the foreground of a screen cell in the form lipgloss.Color
// accepts: an ANSI palette index such as "51", or a "#rrggbb" hex value that
// the renderer reduces to whatever the terminal supports.
// ColorDefault leaves the terminal's own foreground untouched.
type Color string

// Named palette entries used by the HUD.
const (
	ColorDefault Color = ""

	ColorRed    Color = "1"
	ColorGreen  Color = "2"
	ColorYellow Color = "3"
	ColorBlue   Color = "4"
	ColorCyan   Color = "6"
	ColorWhite  Color = "7"
	ColorGray   Color = "245"
)
