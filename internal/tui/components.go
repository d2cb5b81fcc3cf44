package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/reel/internal/search"
)

const headerGenreLimit = 3

// renderMoviesHeader shows the app name over a one-line summary of the
// window and the active filter. The summary is hidden while loading.
func renderMoviesHeader(shown, filtered, total int, filter search.FilterState, loading bool, width int) string {
	rows := []string{HeaderStyle.Render(truncateEnd("› "+AppName, width-2))}
	if loading {
		return lipgloss.JoinVertical(lipgloss.Top, rows...)
	}

	summary := MsgShowing(shown, filtered, total)
	if !filter.IsZero() {
		summary += " • " + filterSummary(filter)
	}
	rows = append(rows, renderMuted(truncateEnd(summary, width-2)))
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func filterSummary(filter search.FilterState) string {
	parts := make([]string, 0, 2)
	if filter.Query != "" {
		parts = append(parts, fmt.Sprintf("%q", filter.Query))
	}
	if len(filter.Genres) > 0 {
		parts = append(parts, summarizeList(filter.Genres.Sorted(), headerGenreLimit))
	}
	return strings.Join(parts, " in ")
}

// renderSearchBox frames the query input; the border lights up while it has focus.
func renderSearchBox(input textinput.Model) string {
	border := MutedColor
	if input.Focused() {
		border = AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(input.Width + 4).
		Render(input.View())
}

func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderLoadMore is the control under the table; key is the binding that triggers it.
func renderLoadMore(key string, remaining int) string {
	button := LoadMoreStyle.Render("Load More")
	hint := HelpStyle.Render(fmt.Sprintf(" %s • %d remaining", key, remaining))
	return lipgloss.JoinHorizontal(lipgloss.Center, button, hint)
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}
