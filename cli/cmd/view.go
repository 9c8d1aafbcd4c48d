package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Reader10/Interprete-QDraw/board"
)

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	blackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("0"))
	redStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("1"))
	greenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))
)

func cellStyle(c board.Color) lipgloss.Style {
	switch c {
	case board.Black:
		return blackStyle
	case board.Red:
		return redStyle
	case board.Green:
		return greenStyle
	default:
		return emptyStyle
	}
}

// RenderBoard draws the grid with its head marker as a bordered block of
// styled terminal cells. Row 0 is the top row.
func RenderBoard(b *board.Board) string {
	hx, hy := b.Head()

	rows := make([]string, 0, b.Height())
	for y := 0; y < b.Height(); y++ {
		var row strings.Builder
		for x := 0; x < b.Width(); x++ {
			style := cellStyle(b.ColorAt(x, y))
			switch {
			case x == hx && y == hy:
				row.WriteString(style.Render("[]"))
			case b.ColorAt(x, y) == board.None:
				row.WriteString(style.Render("··"))
			default:
				row.WriteString(style.Render("  "))
			}
		}
		rows = append(rows, row.String())
	}

	return frameStyle.Render(strings.Join(rows, "\n"))
}
