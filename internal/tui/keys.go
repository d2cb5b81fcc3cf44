package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pders01/reel/internal/config"
)

type keyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Back          key.Binding
	Search        key.Binding
	Genres        key.Binding
	LoadMore      key.Binding
	ClearFilters  key.Binding
	Select        key.Binding
	Open          key.Binding
	OpenThumbnail key.Binding
	Toggle        key.Binding
	SelectAll     key.Binding
	ClearGenres   key.Binding
}

func newKeyMap(cfg *config.Config) keyMap {
	mod := cfg.Keys.Modifier + "+"
	b := cfg.Keys.Bindings

	return keyMap{
		Quit:          key.NewBinding(key.WithKeys(b.Quit, "ctrl+c"), key.WithHelp(b.Quit, "quit")),
		Help:          key.NewBinding(key.WithKeys(b.Help), key.WithHelp(b.Help, "help")),
		Back:          key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "back")),
		Search:        key.NewBinding(key.WithKeys(mod+b.Search, "/"), key.WithHelp(mod+b.Search, "search")),
		Genres:        key.NewBinding(key.WithKeys(mod+b.Genres), key.WithHelp(mod+b.Genres, "genres")),
		LoadMore:      key.NewBinding(key.WithKeys(mod+b.LoadMore), key.WithHelp(mod+b.LoadMore, "load more")),
		ClearFilters:  key.NewBinding(key.WithKeys(mod+b.ClearFilters), key.WithHelp(mod+b.ClearFilters, "clear filters")),
		Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Open:          key.NewBinding(key.WithKeys(mod+"o"), key.WithHelp(mod+"o", "open page")),
		OpenThumbnail: key.NewBinding(key.WithKeys(mod+"t"), key.WithHelp(mod+"t", "open thumbnail")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		SelectAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		ClearGenres:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "none")),
	}
}

// viewKeys adapts the bindings of one view to help.KeyMap.
type viewKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (v viewKeys) ShortHelp() []key.Binding  { return v.short }
func (v viewKeys) FullHelp() [][]key.Binding { return v.full }

func (k keyMap) forView(view View, searchFocused, hasMore bool) viewKeys {
	switch view {
	case ViewGenres:
		return viewKeys{
			short: []key.Binding{k.Toggle, k.SelectAll, k.ClearGenres, k.Back},
			full:  [][]key.Binding{{k.Toggle, k.SelectAll, k.ClearGenres}, {k.Back, k.Quit}},
		}
	case ViewDetail:
		return viewKeys{
			short: []key.Binding{k.Open, k.OpenThumbnail, k.Back},
			full:  [][]key.Binding{{k.Open, k.OpenThumbnail}, {k.Back, k.Quit}},
		}
	default:
		if searchFocused {
			return viewKeys{
				short: []key.Binding{k.Genres, k.ClearFilters, k.Back},
				full:  [][]key.Binding{{k.Genres, k.ClearFilters}, {k.Back}},
			}
		}
		short := []key.Binding{k.Search, k.Genres}
		if hasMore {
			short = append(short, k.LoadMore)
		}
		short = append(short, k.ClearFilters, k.Select)
		return viewKeys{
			short: short,
			full: [][]key.Binding{
				{k.Search, k.Genres, k.ClearFilters},
				{k.LoadMore, k.Select},
				{k.Help, k.Quit},
			},
		}
	}
}
