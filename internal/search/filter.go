package search

import (
	"sort"
	"strings"

	"github.com/pders01/reel/internal/storage"
)

// GenreSet is a set of selected genre names.
type GenreSet map[string]struct{}

// NewGenreSet builds a set from names. Duplicates collapse.
func NewGenreSet(names ...string) GenreSet {
	s := make(GenreSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s GenreSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexical order.
func (s GenreSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Key is a canonical string form of the set, usable as a map key.
func (s GenreSet) Key() string {
	return strings.Join(s.Sorted(), "\x00")
}

// intersects reports whether any of genres is in s.
func (s GenreSet) intersects(genres []string) bool {
	for _, g := range genres {
		if s.Has(g) {
			return true
		}
	}
	return false
}

// FilterState is the user-controlled input of the filter.
type FilterState struct {
	Query  string
	Genres GenreSet
}

// IsZero reports whether the state filters nothing.
func (f FilterState) IsZero() bool {
	return f.Query == "" && len(f.Genres) == 0
}

// Filter returns the movies whose title contains query (case-insensitive)
// and that share at least one genre with genres. An empty query or an
// empty genre set does not restrict. Source order is preserved and the
// returned slice is always newly allocated.
func Filter(movies []*storage.Movie, query string, genres GenreSet) []*storage.Movie {
	needle := strings.ToLower(query)
	out := make([]*storage.Movie, 0, len(movies))
	for _, m := range movies {
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		if len(genres) > 0 && !genres.intersects(m.Genres) {
			continue
		}
		out = append(out, m)
	}
	return out
}
