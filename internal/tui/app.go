package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/reel/internal/catalog"
	"github.com/pders01/reel/internal/config"
	"github.com/pders01/reel/internal/debounce"
	"github.com/pders01/reel/internal/media"
	"github.com/pders01/reel/internal/paging"
	"github.com/pders01/reel/internal/search"
	"github.com/pders01/reel/internal/storage"
)

const searchCharLimit = 256

// CatalogLoader supplies the collection once.
type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// URLOpener opens a link outside the terminal.
type URLOpener interface {
	Open(url string) error
}

type App struct {
	config     *config.Config
	loader     CatalogLoader
	launcher   URLOpener
	engine     search.Searcher
	pager      *paging.Pager
	debouncer  *debounce.Debouncer[string]
	keyHandler *KeyHandler
	keys       keyMap
	theme      Theme

	ctx    context.Context
	cancel context.CancelFunc

	table       table.Model
	genreList   list.Model
	searchInput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model
	help        help.Model

	view    View
	catalog *catalog.Catalog
	filter  search.FilterState
	results []*storage.Movie
	visible []*storage.Movie

	currentMovie *storage.Movie
	loading      bool
	rendering    bool
	status       string
	statusKind   StatusKind
	err          error
	width        int
	height       int
	closed       bool

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

type AppOption func(*App)

// WithLauncher replaces the platform URL launcher.
func WithLauncher(l URLOpener) AppOption {
	return func(a *App) { a.launcher = l }
}

// WithTheme skips theme resolution from the config.
func WithTheme(t Theme) AppOption {
	return func(a *App) { a.theme = t }
}

func NewApp(loader CatalogLoader, cfg *config.Config, opts ...AppOption) *App {
	si := textinput.New()
	si.Placeholder = "Search titles…"
	si.Prompt = "⌕ "
	si.CharLimit = searchCharLimit

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		config:      cfg,
		loader:      loader,
		engine:      search.NewEngine(nil),
		pager:       paging.New(cfg.UI.PageSize),
		debouncer:   debounce.New[string](cfg.UI.SearchDebounce),
		keys:        newKeyMap(cfg),
		ctx:         ctx,
		cancel:      cancel,
		genreList:   newGenreList(),
		searchInput: si,
		viewport:    viewport.New(0, 0),
		spinner:     sp,
		help:        help.New(),
		view:        ViewMovies,
		catalog:     &catalog.Catalog{},
		results:     []*storage.Movie{},
		visible:     []*storage.Movie{},
		loading:     true,
	}

	for _, opt := range opts {
		opt(app)
	}
	if app.theme.Name == "" {
		app.theme = LoadTheme(cfg)
	} else {
		ApplyTheme(app.theme)
	}
	if app.launcher == nil {
		app.launcher = media.NewLauncher(cfg.UI.Opener)
	}

	app.table = newMovieTable()
	app.spinner.Style = lipgloss.NewStyle().Foreground(AccentColor)
	app.keyHandler = NewKeyHandler(app, cfg)
	app.setStatus(MsgLoading, StatusInfo)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadCatalog(),
		a.spinner.Tick,
	)
}

// Close stops pending debounced searches and cancels in-flight loads.
// It is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.debouncer.Stop()
	a.cancel()
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.Close()
	return a, tea.Quit
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if !a.loading && !a.rendering {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case catalogLoadedMsg:
		a.applyCatalog(msg)
		return a, nil

	case searchDebounceFireMsg:
		if query, ok := a.debouncer.Fire(msg.seq); ok {
			a.setQuery(query)
		}
		return a, nil

	case detailRenderedMsg:
		if a.view == ViewDetail && a.currentMovie == msg.movie {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
			a.rendering = false
			a.clearStatus()
		}
		return a, nil

	case urlOpenedMsg:
		if msg.err != nil {
			a.setStatus(msg.err.Error(), StatusError)
		} else {
			a.setStatus(MsgOpened(msg.url), StatusSuccess)
		}
		return a, nil
	}

	if a.view == ViewDetail {
		if _, ok := msg.(tea.MouseMsg); ok {
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height

	inputWidth := width - 8
	if inputWidth < 10 {
		inputWidth = max(width-4, 1)
	}
	a.searchInput.Width = inputWidth

	a.table.SetColumns(movieColumns(width))
	a.table.SetWidth(width)
	// header 2, input frame 3, load more 1, separator 1, status 1, one spare
	a.table.SetHeight(max(height-9, 3))

	a.genreList.SetSize(width, max(height-3, 3))
	a.viewport.Width = width
	a.viewport.Height = max(height-3, 1)
	a.help.Width = width
}

func (a *App) applyCatalog(msg catalogLoadedMsg) {
	a.loading = false
	cat := msg.catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	a.catalog = cat
	a.engine.SetCollection(cat.Movies)
	a.genreList.SetItems(genreItems(cat.Genres, a.filter.Genres))
	a.refresh()

	switch {
	case msg.err != nil:
		a.err = msg.err
		a.setStatus(MsgLoadFailed, StatusError)
	case cat.Offline:
		a.setStatus(MsgOffline(len(cat.Movies), cat.FetchedAt), StatusWarn)
	default:
		a.setStatus(MsgLoaded(len(cat.Movies), len(cat.Genres)), StatusSuccess)
	}
}

// refresh recomputes the filtered results and the rendered window.
func (a *App) refresh() {
	a.results = a.engine.Results(a.filter)
	a.visible = paging.Page(a.results, a.pager)
	a.table.SetRows(movieRows(a.visible))
	if c := a.table.Cursor(); c >= len(a.visible) {
		a.table.SetCursor(max(len(a.visible)-1, 0))
	}
}

func (a *App) filterChanged() {
	if a.config.UI.ResetPageOnFilter {
		a.pager.Reset()
	}
	a.refresh()
}

func (a *App) setQuery(query string) {
	if query == a.filter.Query {
		return
	}
	a.filter.Query = query
	a.filterChanged()
}

func (a *App) setGenres(set search.GenreSet) {
	a.filter.Genres = set
	a.filterChanged()
}

// hasMore reports whether the Load More control is shown.
func (a *App) hasMore() bool {
	return a.pager.HasMore(len(a.results))
}

func (a *App) loadMore() {
	if !a.hasMore() {
		return
	}
	a.pager.LoadMore()
	a.refresh()
}

// clearFilters resets query and genre selection. The window is kept.
func (a *App) clearFilters() {
	a.searchInput.Reset()
	// a newer seq invalidates ticks still in flight
	a.debouncer.Push("")
	a.filter = search.FilterState{}
	a.checkAllGenres(false)
	a.setStatus(MsgFiltersCleared, StatusInfo)
}

func (a *App) selectedMovie() *storage.Movie {
	i := a.table.Cursor()
	if i < 0 || i >= len(a.visible) {
		return nil
	}
	return a.visible[i]
}

func (a *App) View() string {
	var content string
	bodyHeight := max(a.height-3, 1)

	switch a.view {
	case ViewMovies:
		content = a.moviesView(bodyHeight)
	case ViewGenres:
		content = a.genreList.View()
	case ViewDetail:
		if a.rendering {
			content = renderCentered(a.width, bodyHeight,
				a.spinner.View()+" "+renderMuted(MsgRendering))
		} else {
			content = a.viewport.View()
		}
	}

	separator := SeparatorStyle.Render(strings.Repeat("─", max(a.width-1, 0)))
	return lipgloss.JoinVertical(lipgloss.Top, content, separator, a.statusBar())
}

func (a *App) moviesView(bodyHeight int) string {
	header := renderMoviesHeader(len(a.visible), len(a.results), len(a.catalog.Movies), a.filter, a.loading, a.width)
	input := renderSearchBox(a.searchInput)

	var body string
	switch {
	case a.loading:
		body = renderCentered(a.width, max(bodyHeight-5, 3),
			lipgloss.JoinVertical(lipgloss.Center,
				GetCompactBanner(""),
				a.spinner.View()+" "+renderMuted(MsgLoading)))
	case len(a.catalog.Movies) == 0:
		msg := MsgNoMovies
		if a.err != nil {
			msg = MsgLoadFailed
		}
		body = renderCentered(a.width, max(bodyHeight-5, 3), renderMuted(msg))
	case len(a.results) == 0:
		body = renderCentered(a.width, max(bodyHeight-5, 3), renderMuted(MsgNoResults))
	default:
		body = a.table.View()
	}

	rows := []string{header, input, body}
	if a.hasMore() {
		rows = append(rows, a.loadMoreControl())
	}
	return ContentWrapper(a.width, bodyHeight).Render(lipgloss.JoinVertical(lipgloss.Top, rows...))
}

func (a *App) loadMoreControl() string {
	return renderLoadMore(a.keys.LoadMore.Help().Key, len(a.results)-len(a.visible))
}

func (a *App) statusBar() string {
	if a.help.ShowAll {
		return StatusBarStyle.Width(a.width).Render(a.help.View(a.currentKeys()))
	}

	bar := StatusBarStyle.Width(a.width).MaxHeight(1)
	if a.err != nil {
		return bar.Render(StatusErrorStyle.Render(fmt.Sprintf("✗ %v", a.err)))
	}

	commands := strings.Join(a.keyHandler.GetHelpForCurrentView(), " • ")
	if a.status == "" {
		return bar.Render(commands)
	}
	left := a.statusKind.style().Render(a.status)
	return bar.Render(left + renderMuted("  │  "+commands))
}

func (a *App) currentKeys() viewKeys {
	return a.keys.forView(a.view, a.searchInput.Focused(), a.hasMore())
}
