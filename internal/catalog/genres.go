package catalog

import "github.com/pders01/reel/internal/storage"

// DeriveGenres returns every genre used by movies, deduplicated, in the
// order each genre is first seen.
func DeriveGenres(movies []*storage.Movie) []string {
	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, m := range movies {
		for _, g := range m.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}
	return genres
}
