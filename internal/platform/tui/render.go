package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// hudBackground is the bar behind the HUD rows.
const hudBackground = lipgloss.Color("236")

var (
	fieldStyles = buildStyles(lipgloss.NewStyle())
	hudStyles   = buildStyles(lipgloss.NewStyle().Background(hudBackground).Bold(true))
)

func buildStyles(base lipgloss.Style) map[core.Color]lipgloss.Style {
	colors := core.Colors()
	styles := make(map[core.Color]lipgloss.Style, len(colors)+1)
	styles[core.ColorDefault] = base
	for _, c := range colors {
		styles[c] = base.Foreground(lipgloss.Color(c.ANSI()))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// The first hudRows rows are drawn on a bar. Adjacent cells with the same
// color share one escape sequence.
func RenderScreen(s *core.Screen, hudRows int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		styles := fieldStyles
		if y < hudRows {
			styles = hudStyles
		}
		renderRow(&sb, s, y, styles)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int, styles map[core.Color]lipgloss.Style) {
	var run strings.Builder
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color
		run.Reset()
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run.WriteRune(cell.Rune)
		}

		style, ok := styles[color]
		if !ok {
			style = styles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
}
