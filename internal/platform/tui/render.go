package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflyer/internal/core"
)

// skyColor is the playfield background.
const skyColor = lipgloss.Color("#e0f2fe")

var baseStyle = lipgloss.NewStyle().Background(skyColor)

// styleFor maps a palette color to a lipgloss style over the sky.
func styleFor(c core.Color) lipgloss.Style {
	if hex := c.Hex(); hex != "" {
		return baseStyle.Foreground(lipgloss.Color(hex))
	}
	return baseStyle
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
