package core

// Color represents a foreground color for a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

// Palette used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed            // walls
	ColorGreen          // snake body
	ColorBrightGreen    // snake head
	ColorYellow         // food
	ColorCyan           // HUD
	ColorMagenta        // new best score
	ColorWhite          // overlay frame
	ColorOrange         // game over text
	ColorGray           // board border
)
