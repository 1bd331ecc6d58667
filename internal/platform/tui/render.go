package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-maze/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
	core.ColorWallEdge:    lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	core.ColorPellet:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorPowerPellet: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorPlayerBlink: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorPursuer:     lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	core.ColorPursuerAlt:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorFrozen:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorItem:        lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorHUDDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
