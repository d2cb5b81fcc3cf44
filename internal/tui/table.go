package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/reel/internal/storage"
)

const yearColumnWidth = 6

func newMovieTable() table.Model {
	t := table.New(
		table.WithColumns(movieColumns(100)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(movieTableStyles())
	return t
}

func movieTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		BorderBottom(true).
		Foreground(SecondaryColor).
		Bold(true)
	s.Selected = SelectedItemStyle
	return s
}

// movieColumns splits width between Title, Year, Cast, Genres and Thumbnail.
func movieColumns(width int) []table.Column {
	// cell padding of the default styles is one column on each side
	avail := width - yearColumnWidth - 5*2
	if avail < 40 {
		avail = 40
	}
	title := avail * 30 / 100
	cast := avail * 28 / 100
	genres := avail * 18 / 100
	thumb := avail - title - cast - genres

	return []table.Column{
		{Title: "Title", Width: title},
		{Title: "Year", Width: yearColumnWidth},
		{Title: "Cast", Width: cast},
		{Title: "Genres", Width: genres},
		{Title: "Thumbnail", Width: thumb},
	}
}

func movieRow(m *storage.Movie) table.Row {
	return table.Row{
		m.Title,
		m.Year.String(),
		m.CastText(),
		m.GenresText(),
		m.ThumbnailText(),
	}
}

func movieRows(movies []*storage.Movie) []table.Row {
	rows := make([]table.Row, len(movies))
	for i, m := range movies {
		rows[i] = movieRow(m)
	}
	return rows
}
