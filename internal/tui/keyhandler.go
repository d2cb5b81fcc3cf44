package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/reel/internal/config"
)

type KeyHandler struct {
	app         *App
	config      *config.Config
	modifierKey string
	keys        keyMap
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{
		app:         app,
		config:      cfg,
		modifierKey: cfg.Keys.Modifier + "+",
		keys:        app.keys,
	}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(msg); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	return kh.app.view == ViewMovies && kh.app.searchInput.Focused()
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return kh.app.quit()
	case key.Matches(msg, kh.keys.Back), msg.String() == "enter", msg.String() == "tab", msg.String() == "down":
		// Leave the input; the typed query stays applied
		kh.app.searchInput.Blur()
		kh.app.table.Focus()
		return kh.app, nil
	case key.Matches(msg, kh.keys.Genres):
		kh.app.searchInput.Blur()
		return kh.openGenres()
	case key.Matches(msg, kh.keys.ClearFilters):
		kh.app.clearFilters()
		return kh.app, nil
	case key.Matches(msg, kh.keys.LoadMore):
		kh.app.loadMore()
		return kh.app, nil
	default:
		return kh.delegateToTextInput(msg)
	}
}

// delegateToTextInput updates the visible query at once and debounces
// the filter.
func (kh *KeyHandler) delegateToTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prev := kh.app.searchInput.Value()
	newSearchInput, cmd := kh.app.searchInput.Update(msg)
	kh.app.searchInput = newSearchInput

	if value := kh.app.searchInput.Value(); value != prev {
		return kh.app, tea.Batch(cmd, kh.app.scheduleSearch(value))
	}
	return kh.app, cmd
}

// handleCustomKeys handles only our custom action keys
func (kh *KeyHandler) handleCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, kh.keys.Quit):
		model, cmd := kh.app.quit()
		return model, cmd, true
	case key.Matches(msg, kh.keys.Help):
		kh.app.help.ShowAll = !kh.app.help.ShowAll
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.Back):
		model, cmd := kh.navigateBack()
		return model, cmd, true
	}

	switch kh.app.view {
	case ViewMovies:
		return kh.handleMoviesCustomKeys(msg)
	case ViewGenres:
		return kh.handleGenresCustomKeys(msg)
	case ViewDetail:
		return kh.handleDetailCustomKeys(msg)
	default:
		return kh.app, nil, false
	}
}

func (kh *KeyHandler) handleMoviesCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, kh.keys.Search):
		kh.app.table.Blur()
		return kh.app, kh.app.searchInput.Focus(), true
	case key.Matches(msg, kh.keys.Genres):
		model, cmd := kh.openGenres()
		return model, cmd, true
	case key.Matches(msg, kh.keys.LoadMore):
		kh.app.loadMore()
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.ClearFilters):
		kh.app.clearFilters()
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.Select):
		model, cmd := kh.openDetail()
		return model, cmd, true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handleGenresCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, kh.keys.Toggle):
		kh.app.toggleGenre(kh.app.genreList.Index())
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.SelectAll):
		kh.app.checkAllGenres(true)
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.ClearGenres):
		kh.app.checkAllGenres(false)
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.Select), key.Matches(msg, kh.keys.Genres):
		kh.app.view = ViewMovies
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.ClearFilters):
		kh.app.clearFilters()
		return kh.app, nil, true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handleDetailCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	m := kh.app.currentMovie
	if m == nil {
		return kh.app, nil, false
	}
	switch {
	case key.Matches(msg, kh.keys.Open):
		if u := m.WikipediaURL(); u != "" {
			return kh.app, kh.app.openURL(u), true
		}
		kh.app.setStatus(MsgNoLink, StatusWarn)
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.OpenThumbnail):
		if m.Thumbnail != "" {
			return kh.app, kh.app.openURL(m.Thumbnail), true
		}
		kh.app.setStatus(MsgNoThumbnail, StatusWarn)
		return kh.app, nil, true
	}
	return kh.app, nil, false
}

// delegateToCharm lets Charm handle all keys we don't intercept
func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch kh.app.view {
	case ViewMovies:
		kh.app.table, cmd = kh.app.table.Update(msg)
	case ViewGenres:
		kh.app.genreList, cmd = kh.app.genreList.Update(msg)
	case ViewDetail:
		kh.app.viewport, cmd = kh.app.viewport.Update(msg)
	}
	return kh.app, cmd
}

func (kh *KeyHandler) openGenres() (tea.Model, tea.Cmd) {
	kh.app.view = ViewGenres
	return kh.app, nil
}

func (kh *KeyHandler) openDetail() (tea.Model, tea.Cmd) {
	m := kh.app.selectedMovie()
	if m == nil {
		return kh.app, nil
	}
	kh.app.currentMovie = m
	kh.app.view = ViewDetail
	kh.app.rendering = true
	kh.app.viewport.SetContent("")
	return kh.app, tea.Batch(kh.app.spinner.Tick, kh.app.renderDetail(m))
}

// navigateBack implements back navigation; at the top it quits
func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	if kh.app.help.ShowAll {
		kh.app.help.ShowAll = false
		return kh.app, nil
	}

	switch kh.app.view {
	case ViewGenres:
		kh.app.view = ViewMovies
		return kh.app, nil
	case ViewDetail:
		kh.app.view = ViewMovies
		kh.app.currentMovie = nil
		kh.app.rendering = false
		kh.app.clearStatus()
		return kh.app, nil
	default:
		return kh.app.quit()
	}
}

// GetHelpForCurrentView returns only our custom help text (Charm handles the rest)
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	bindings := kh.app.currentKeys().ShortHelp()
	help := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		help = append(help, h.Key+": "+h.Desc)
	}
	return help
}
