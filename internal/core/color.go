package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette used by the playfield and HUD.
const (
	ColorDefault     Color = iota
	ColorRed               // strong gravity zone
	ColorGreen             // upper barrier
	ColorBlue              // weak gravity zone
	ColorCyan              // cooldown banner
	ColorWhite             // message subtitles
	ColorBrightGreen       // live entity
	ColorBrightCyan        // slow time banner
	ColorBrightWhite       // score and titles
	ColorBrown             // lower barrier
	ColorGray              // dead entity
)
