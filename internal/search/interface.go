package search

import "github.com/pders01/reel/internal/storage"

// Searcher is the filter API the browser holds.
type Searcher interface {
	SetCollection(movies []*storage.Movie)
	Results(state FilterState) []*storage.Movie
}

var _ Searcher = (*Engine)(nil)
