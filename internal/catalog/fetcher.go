package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pders01/reel/internal/config"
	"github.com/pders01/reel/internal/storage"
)

const (
	defaultUserAgent = "reel/1.0 (movie browser; github.com/pders01/reel)"
	defaultTimeout   = 30 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(cfg *config.Config) *Fetcher {
	t := defaultTimeout
	ua := defaultUserAgent
	if cfg != nil {
		if cfg.Source.HTTPTimeout > 0 {
			t = cfg.Source.HTTPTimeout
		}
		if cfg.Source.UserAgent != "" {
			ua = cfg.Source.UserAgent
		}
	}
	return &Fetcher{
		client:    &http.Client{Timeout: t},
		userAgent: ua,
	}
}

// Response is a decoded collection plus the cache headers the server sent.
type Response struct {
	Movies       []*storage.Movie
	ETag         string
	LastModified string
}

// Fetch issues a single GET to url and decodes the JSON array body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching movies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	movies, err := Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Movies:       movies,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}

// ErrNotArray is returned when the body is valid JSON but not an array.
var ErrNotArray = errors.New("response is not a JSON array")

// Decode reads a JSON array of movies. Null entries are dropped. The body
// must be exactly one array; null, objects and trailing data are errors.
func Decode(r io.Reader) ([]*storage.Movie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading movies: %w", err)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("decoding movies: %w", ErrNotArray)
	}

	var raw []*storage.Movie
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding movies: %w", err)
	}
	movies := make([]*storage.Movie, 0, len(raw))
	for _, m := range raw {
		if m != nil {
			movies = append(movies, m)
		}
	}
	return movies, nil
}
