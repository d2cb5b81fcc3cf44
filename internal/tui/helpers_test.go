package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pders01/reel/internal/catalog"
	"github.com/pders01/reel/internal/config"
	"github.com/pders01/reel/internal/storage"
)

type fakeLoader struct {
	catalog *catalog.Catalog
	err     error
	calls   int
}

func (f *fakeLoader) Load(context.Context) (*catalog.Catalog, error) {
	f.calls++
	return f.catalog, f.err
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func upAndUs() []*storage.Movie {
	return []*storage.Movie{
		{Title: "Up", Year: 2009, Genres: []string{"Animation"}, Href: "Up_(2009_film)"},
		{Title: "Us", Year: 2019, Genres: []string{"Horror"}, Thumbnail: "https://upload.wikimedia.org/us.jpg"},
	}
}

func manyMovies(n int) []*storage.Movie {
	genres := []string{"Drama", "Comedy", "Horror"}
	movies := make([]*storage.Movie, n)
	for i := range movies {
		movies[i] = &storage.Movie{
			Title:  fmt.Sprintf("Movie %03d", i),
			Year:   storage.Year(1950 + i%70),
			Genres: []string{genres[i%len(genres)]},
		}
	}
	return movies
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *fakeOpener) {
	t.Helper()
	if cfg == nil {
		cfg = config.TestConfig()
	}
	r, err := NewThemeRegistry()
	require.NoError(t, err)
	theme, _ := r.Get("dusk")

	opener := &fakeOpener{}
	app := NewApp(&fakeLoader{catalog: &catalog.Catalog{}}, cfg, WithLauncher(opener), WithTheme(theme))
	t.Cleanup(app.Close)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, opener
}

// loaded returns a test app with movies already delivered.
func loaded(t *testing.T, cfg *config.Config, movies []*storage.Movie) (*App, *fakeOpener) {
	t.Helper()
	app, opener := newTestApp(t, cfg)
	app.Update(catalogLoadedMsg{catalog: &catalog.Catalog{
		Movies: movies,
		Genres: catalog.DeriveGenres(movies),
	}})
	return app, opener
}

func press(app *App, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = app.Update(m)
	}
	return cmd
}

func runes(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func titlesOf(movies []*storage.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

var (
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlG = tea.KeyMsg{Type: tea.KeyCtrlG}
	keyCtrlN = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlO = tea.KeyMsg{Type: tea.KeyCtrlO}
	keyCtrlT = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)
