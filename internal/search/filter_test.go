package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pders01/reel/internal/storage"
)

func TestFilter(t *testing.T) {
	movies := fixture()

	tests := []struct {
		name   string
		query  string
		genres GenreSet
		want   []string
	}{
		{
			name: "no filter returns everything in order",
			want: []string{"Alien", "The Apartment", "Up", "Us", "Aladdin", "The Thing", "Untitled Project"},
		},
		{
			name:  "case-insensitive substring",
			query: "THE",
			want:  []string{"The Apartment", "The Thing"},
		},
		{
			name:  "substring inside word",
			query: "partm",
			want:  []string{"The Apartment"},
		},
		{
			name:  "no title matches",
			query: "zzz",
			want:  []string{},
		},
		{
			name:   "single genre",
			genres: NewGenreSet("Horror"),
			want:   []string{"Alien", "Us", "The Thing"},
		},
		{
			name:   "genres are OR-ed",
			genres: NewGenreSet("Animation", "Drama"),
			want:   []string{"The Apartment", "Up", "Aladdin"},
		},
		{
			name:   "unknown genre matches nothing",
			genres: NewGenreSet("Western"),
			want:   []string{},
		},
		{
			name:   "title and genre are AND-ed",
			query:  "al",
			genres: NewGenreSet("Horror"),
			want:   []string{"Alien"},
		},
		{
			name:   "movie without genres excluded by genre filter",
			query:  "untitled",
			genres: NewGenreSet("Drama"),
			want:   []string{},
		},
		{
			name:   "empty genre set does not restrict",
			query:  "untitled",
			genres: NewGenreSet(),
			want:   []string{"Untitled Project"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(movies, tt.query, tt.genres))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_UpAndUs(t *testing.T) {
	movies := upAndUs()

	assert.Equal(t, []string{"Up", "Us"}, titles(Filter(movies, "u", nil)))
	assert.Equal(t, []string{"Us"}, titles(Filter(movies, "u", NewGenreSet("Horror"))))
}

func TestFilter_Properties(t *testing.T) {
	movies := fixture()
	queries := []string{"", "a", "The", "u", "x", " "}
	genreSets := []GenreSet{nil, NewGenreSet("Horror"), NewGenreSet("Animation", "Comedy"), NewGenreSet("Nope")}

	members := make(map[*storage.Movie]int, len(movies))
	for i, m := range movies {
		members[m] = i
	}

	for _, q := range queries {
		for _, g := range genreSets {
			got := Filter(movies, q, g)

			// Subset of the collection, in source order
			last := -1
			for _, m := range got {
				idx, ok := members[m]
				if !assert.True(t, ok, "result not from collection") {
					continue
				}
				assert.Greater(t, idx, last, "order not preserved")
				last = idx

				assert.True(t, strings.Contains(strings.ToLower(m.Title), strings.ToLower(q)))
				if len(g) > 0 {
					assert.True(t, g.intersects(m.Genres))
				}
			}

			// Idempotent
			again := Filter(got, q, g)
			if diff := cmp.Diff(titles(got), titles(again)); diff != "" {
				t.Errorf("Filter not idempotent for q=%q g=%v:\n%s", q, g.Sorted(), diff)
			}

			// Complete: every excluded movie fails a predicate
			in := make(map[*storage.Movie]bool, len(got))
			for _, m := range got {
				in[m] = true
			}
			for _, m := range movies {
				matches := strings.Contains(strings.ToLower(m.Title), strings.ToLower(q)) &&
					(len(g) == 0 || g.intersects(m.Genres))
				assert.Equal(t, matches, in[m], "movie %q q=%q", m.Title, q)
			}
		}
	}
}

func TestFilter_ReturnsFreshSlice(t *testing.T) {
	movies := upAndUs()
	got := Filter(movies, "", nil)
	got[0] = nil
	assert.NotNil(t, movies[0])
}

func TestGenreSet(t *testing.T) {
	s := NewGenreSet("Horror", "Drama", "Horror")

	assert.Len(t, s, 2)
	assert.True(t, s.Has("Drama"))
	assert.False(t, s.Has("Comedy"))
	assert.Equal(t, []string{"Drama", "Horror"}, s.Sorted())
	assert.Equal(t, NewGenreSet("Drama", "Horror").Key(), s.Key())
	assert.Equal(t, "", GenreSet(nil).Key())
}

func TestFilterState_IsZero(t *testing.T) {
	assert.True(t, FilterState{}.IsZero())
	assert.True(t, FilterState{Genres: NewGenreSet()}.IsZero())
	assert.False(t, FilterState{Query: "a"}.IsZero())
	assert.False(t, FilterState{Genres: NewGenreSet("Horror")}.IsZero())
}
