package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pders01/reel/internal/config"
	"github.com/pders01/reel/internal/debuglog"
	"github.com/pders01/reel/internal/storage"
	"github.com/pders01/reel/internal/validation"
)

// Catalog is the loaded collection and the genre universe derived from it.
// Both are fixed once loaded.
type Catalog struct {
	Movies []*storage.Movie
	Genres []string
	// Offline is set when the movies came from the local snapshot.
	Offline bool
	// FetchedAt is when the movies were retrieved from the source.
	FetchedAt time.Time
}

func emptyCatalog() *Catalog {
	return &Catalog{Movies: []*storage.Movie{}, Genres: []string{}}
}

// SnapshotStore is the subset of storage.Store the loader needs.
type SnapshotStore interface {
	SaveSnapshot(meta storage.SnapshotMeta, movies []*storage.Movie) error
	LoadSnapshot() (*storage.SnapshotMeta, []*storage.Movie, error)
}

// Loader obtains the collection at most once. Later calls to Load return
// the result of the first call.
type Loader struct {
	fetcher   *Fetcher
	validator *validation.SourceURLValidator
	store     SnapshotStore
	source    string
	offline   bool

	once    sync.Once
	catalog *Catalog
	err     error
}

type LoaderOption func(*Loader)

// WithSnapshotStore saves each successful fetch to store.
func WithSnapshotStore(store SnapshotStore) LoaderOption {
	return func(l *Loader) { l.store = store }
}

// WithOffline reads the collection from the snapshot store instead of the network.
func WithOffline(offline bool) LoaderOption {
	return func(l *Loader) { l.offline = offline }
}

func NewLoader(cfg *config.Config, opts ...LoaderOption) *Loader {
	validator := validation.NewSourceURLValidator()
	if cfg.Source.AllowLocal {
		validator = validation.NewPermissiveSourceURLValidator()
	}
	l := &Loader{
		fetcher:   NewFetcher(cfg),
		validator: validator,
		source:    cfg.Source.URL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured source URL.
func (l *Loader) Source() string {
	return l.source
}

// Load returns the catalog. On failure the error is a *LoadError and the
// returned catalog is empty, never nil.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	l.once.Do(func() {
		l.catalog, l.err = l.load(ctx)
		if l.err != nil {
			debuglog.WithFields(map[string]interface{}{
				"source":  l.source,
				"offline": l.offline,
			}).Errorf("movie load failed: %v", l.err)
			l.catalog = emptyCatalog()
		}
	})
	return l.catalog, l.err
}

func (l *Loader) load(ctx context.Context) (*Catalog, error) {
	if l.offline {
		return l.loadSnapshot()
	}

	url, err := l.validator.ValidateAndNormalize(l.source)
	if err != nil {
		return nil, &LoadError{Source: l.source, Err: fmt.Errorf("invalid source URL: %w", err)}
	}

	start := time.Now()
	resp, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}

	c := &Catalog{
		Movies:    resp.Movies,
		Genres:    DeriveGenres(resp.Movies),
		FetchedAt: time.Now(),
	}
	debuglog.Infof("loaded %d movies, %d genres from %s in %s", len(c.Movies), len(c.Genres), url, time.Since(start))

	if l.store != nil {
		meta := storage.SnapshotMeta{
			SourceURL:    url,
			FetchedAt:    c.FetchedAt,
			ETag:         resp.ETag,
			LastModified: resp.LastModified,
		}
		if err := l.store.SaveSnapshot(meta, c.Movies); err != nil {
			debuglog.Warnf("saving snapshot: %v", err)
		}
	}

	return c, nil
}

func (l *Loader) loadSnapshot() (*Catalog, error) {
	if l.store == nil {
		return nil, &LoadError{Source: "snapshot", Err: storage.ErrNoSnapshot}
	}
	meta, movies, err := l.store.LoadSnapshot()
	if err != nil {
		return nil, &LoadError{Source: "snapshot", Err: err}
	}
	debuglog.Infof("loaded %d movies from snapshot of %s", len(movies), meta.SourceURL)
	return &Catalog{
		Movies:    movies,
		Genres:    DeriveGenres(movies),
		Offline:   true,
		FetchedAt: meta.FetchedAt,
	}, nil
}
