package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/pders01/reel/internal/search"
)

type genreItem struct {
	name    string
	checked bool
}

func (i genreItem) Title() string {
	if i.checked {
		return CheckedStyle.Render("[x] " + i.name)
	}
	return "[ ] " + i.name
}

func (i genreItem) Description() string { return "" }
func (i genreItem) FilterValue() string { return i.name }

func newGenreList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "› genres"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

// genreItems builds the selector for the universe, checking the members of selected.
func genreItems(universe []string, selected search.GenreSet) []list.Item {
	items := make([]list.Item, len(universe))
	for i, g := range universe {
		items[i] = genreItem{name: g, checked: selected.Has(g)}
	}
	return items
}

// checkedGenres is the full set of checked items. Each change replaces the
// selection with this set.
func checkedGenres(items []list.Item) search.GenreSet {
	set := search.NewGenreSet()
	for _, it := range items {
		if g, ok := it.(genreItem); ok && g.checked {
			set[g.name] = struct{}{}
		}
	}
	return set
}

// toggleGenre flips the item at index.
func (a *App) toggleGenre(index int) {
	items := a.genreList.Items()
	if index < 0 || index >= len(items) {
		return
	}
	g, ok := items[index].(genreItem)
	if !ok {
		return
	}
	g.checked = !g.checked
	a.genreList.SetItem(index, g)
	a.setGenres(checkedGenres(a.genreList.Items()))
}

// checkAllGenres sets every item to checked.
func (a *App) checkAllGenres(checked bool) {
	items := a.genreList.Items()
	for i, it := range items {
		if g, ok := it.(genreItem); ok {
			g.checked = checked
			items[i] = g
		}
	}
	a.genreList.SetItems(items)
	a.setGenres(checkedGenres(items))
}
