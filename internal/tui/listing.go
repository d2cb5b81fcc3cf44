package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pders01/reel/internal/storage"
)

const (
	listCastLimit      = 3
	listThumbnailWidth = 48
)

// RenderMovieTable renders movies as a bordered table for non-interactive
// output. A width of zero lets the table size itself.
func RenderMovieTable(movies []*storage.Movie, width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	mutedCell := cellStyle.Foreground(MutedColor)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SeparatorStyle).
		Headers("Title", "Year", "Cast", "Genres", "Thumbnail").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 || col == 4:
				return mutedCell
			default:
				return cellStyle
			}
		})

	for _, m := range movies {
		cast := storage.NoCast
		if len(m.Cast) > 0 {
			cast = summarizeList(m.Cast, listCastLimit)
		}
		t.Row(
			m.Title,
			m.Year.String(),
			cast,
			m.GenresText(),
			truncateMiddle(m.ThumbnailText(), listThumbnailWidth),
		)
	}

	if width > 0 {
		t.Width(width)
	}
	return t.Render()
}

// LoadMoreHint is printed under a listing when rows were held back.
func LoadMoreHint(shown, filtered int) string {
	return HelpStyle.Render(fmt.Sprintf("%d more available • pass --pages to show more", filtered-shown))
}
