package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/reel/internal/catalog"
	"github.com/pders01/reel/internal/storage"
)

type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

// searchDebounceFireMsg arrives once the quiet interval after a keystroke
// has passed. Only the latest seq applies.
type searchDebounceFireMsg struct {
	seq uint64
}

type detailRenderedMsg struct {
	movie   *storage.Movie
	content string
}

type urlOpenedMsg struct {
	url string
	err error
}

func (a *App) loadCatalog() tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		cat, err := a.loader.Load(ctx)
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

// scheduleSearch records query as the pending search and arms the tick
// that may apply it.
func (a *App) scheduleSearch(query string) tea.Cmd {
	seq := a.debouncer.Push(query)
	return tea.Tick(a.debouncer.Wait(), func(time.Time) tea.Msg {
		return searchDebounceFireMsg{seq: seq}
	})
}

func (a *App) renderDetail(m *storage.Movie) tea.Cmd {
	r, err := a.getRenderer()
	return func() tea.Msg {
		source := movieMarkdown(m)
		if err != nil {
			return detailRenderedMsg{movie: m, content: wrapErr("initializing renderer", err).Error() + "\n\n" + source}
		}
		rendered, err := r.Render(source)
		if err != nil {
			return detailRenderedMsg{movie: m, content: fmt.Sprintf("%v\n\n%s", wrapErr("rendering details", err), source)}
		}
		return detailRenderedMsg{movie: m, content: rendered}
	}
}

func (a *App) openURL(url string) tea.Cmd {
	launcher := a.launcher
	return func() tea.Msg {
		if err := launcher.Open(url); err != nil {
			return urlOpenedMsg{url: url, err: wrapErr("failed to open "+truncateMiddle(url, 60), err)}
		}
		return urlOpenedMsg{url: url}
	}
}

// wrapErr prefixes err with context; nil stays nil.
func wrapErr(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
