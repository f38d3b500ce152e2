package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/core"
)

// palette holds the ANSI 256-color code for each core.Color; "" keeps the
// terminal default.
var palette = [...]lipgloss.Color{
	core.ColorDefault:     "",
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorBrightGreen: "10",
	core.ColorYellow:      "3",
	core.ColorGray:        "245",
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(palette) || palette[c] == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(palette[c])
}

// RenderScreen converts a Screen buffer to a styled string, one style run per
// stretch of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(c).Render(run.String()))
		}
	}
	return sb.String()
}
