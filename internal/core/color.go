package core

// Color is the foreground color of a screen cell. The renderer decides what
// each one looks like.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorGray

	colorCount
)

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	return c < colorCount
}
