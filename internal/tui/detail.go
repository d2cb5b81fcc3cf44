package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pders01/reel/internal/storage"
)

// movieMarkdown is the source of the detail view.
func movieMarkdown(m *storage.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", m.Title)
	meta := make([]string, 0, 2)
	if y := m.Year.String(); y != "" {
		meta = append(meta, "*"+y+"*")
	}
	if g := m.GenresText(); g != "" {
		meta = append(meta, g)
	}
	b.WriteString(strings.Join(meta, " · "))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Cast:** %s\n\n", m.CastText())

	if m.Thumbnail != "" {
		fmt.Fprintf(&b, "**Thumbnail:** %s", m.Thumbnail)
		if m.ThumbnailWidth > 0 && m.ThumbnailHeight > 0 {
			fmt.Fprintf(&b, " (%d×%d)", m.ThumbnailWidth, m.ThumbnailHeight)
		}
		b.WriteString("\n\n")
	} else {
		fmt.Fprintf(&b, "**Thumbnail:** %s\n\n", storage.NoImage)
	}

	if u := m.WikipediaURL(); u != "" {
		fmt.Fprintf(&b, "[Wikipedia](%s)\n\n", u)
	}

	if m.Extract != "" {
		b.WriteString("---\n\n")
		b.WriteString(m.Extract)
		b.WriteString("\n")
	}
	return b.String()
}

// wordWrapWidth clamps the detail text width to the configured bounds.
func (a *App) wordWrapWidth() int {
	maxWidth := a.config.UI.Detail.WordWrapMaxWidth
	minWidth := a.config.UI.Detail.WordWrapMinWidth

	w := (a.width * 9) / 10
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	if w < minWidth {
		w = minWidth
	}
	if a.width > 0 && a.width < 50 {
		w = max(a.width-4, 20)
	}
	return w
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	width := a.wordWrapWidth()

	if a.glamourRenderer == nil || abs(a.rendererWidth-width) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(a.theme.Glamour),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = width
	}
	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
