package search

import (
	"strconv"
	"sync"

	"github.com/pders01/reel/internal/storage"
)

// Engine filters a collection and memoizes the most recent result. The
// memo key is the collection generation plus the filter state, so a repeated
// render with unchanged inputs does not rescan the collection.
type Engine struct {
	mu         sync.Mutex
	movies     []*storage.Movie
	generation uint64

	lastKey    string
	lastResult []*storage.Movie
	hasResult  bool
	recomputes int
}

// NewEngine creates an engine over movies.
func NewEngine(movies []*storage.Movie) *Engine {
	e := &Engine{}
	e.SetCollection(movies)
	return e
}

// SetCollection replaces the collection and invalidates the memo.
func (e *Engine) SetCollection(movies []*storage.Movie) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.movies = movies
	e.generation++
	e.hasResult = false
	e.lastResult = nil
}

// Len returns the size of the unfiltered collection.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.movies)
}

// Results returns the movies matching state. Callers must not modify the
// returned slice; it is shared with later calls for the same inputs.
func (e *Engine) Results(state FilterState) []*storage.Movie {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := e.memoKey(state)
	if e.hasResult && key == e.lastKey {
		return e.lastResult
	}

	e.lastResult = Filter(e.movies, state.Query, state.Genres)
	e.lastKey = key
	e.hasResult = true
	e.recomputes++
	return e.lastResult
}

func (e *Engine) memoKey(state FilterState) string {
	return strconv.FormatUint(e.generation, 10) + "\x01" + state.Query + "\x01" + state.Genres.Key()
}
