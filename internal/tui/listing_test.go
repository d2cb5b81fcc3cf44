package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pders01/reel/internal/storage"
)

func TestRenderMovieTable(t *testing.T) {
	movies := []*storage.Movie{
		{Title: "Up", Year: 2009, Cast: []string{"Ed Asner", "Christopher Plummer", "Jordan Nagai", "Bob Peterson"}, Genres: []string{"Animation"}},
		{Title: "Us", Year: 2019, Genres: []string{"Horror"}, Thumbnail: "https://upload.wikimedia.org/us.jpg"},
	}

	out := RenderMovieTable(movies, 0)

	for _, want := range []string{"Title", "Year", "Cast", "Genres", "Thumbnail", "Up", "2009", "Us", "Horror"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, storage.NoCast)
	assert.Contains(t, out, storage.NoImage)
	assert.Contains(t, out, "upload.wikimedia.org/us.jpg")
	// header, separator, two rows and borders
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 5)
}

func TestRenderMovieTable_Empty(t *testing.T) {
	out := RenderMovieTable(nil, 0)
	assert.Contains(t, out, "Title")
}

func TestLoadMoreHint(t *testing.T) {
	assert.Contains(t, LoadMoreHint(50, 120), "70 more available")
}

func TestMovieColumns(t *testing.T) {
	cols := movieColumns(120)
	assert.Len(t, cols, 5)
	assert.Equal(t, "Year", cols[1].Title)

	total := 0
	for _, c := range cols {
		total += c.Width
	}
	assert.Equal(t, 120-10, total)

	// Narrow terminals keep a usable minimum
	narrow := movieColumns(20)
	assert.Greater(t, narrow[0].Width, 0)
}

func TestMovieRow(t *testing.T) {
	row := movieRow(&storage.Movie{Title: "Up", Year: 2009, Genres: []string{"Animation", "Family"}})
	assert.Equal(t, []string{"Up", "2009", storage.NoCast, "Animation, Family", storage.NoImage}, []string(row))
}
