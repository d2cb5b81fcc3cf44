package storage

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"
)

// Movie is one record of the upstream dataset. The collection is read-only
// for this client; nothing here mutates a Movie after decoding.
type Movie struct {
	Title           string   `json:"title"`
	Year            Year     `json:"year"`
	Cast            []string `json:"cast,omitempty"`
	Genres          []string `json:"genres"`
	Href            string   `json:"href,omitempty"`
	Extract         string   `json:"extract,omitempty"`
	Thumbnail       string   `json:"thumbnail,omitempty"`
	ThumbnailWidth  int      `json:"thumbnail_width,omitempty"`
	ThumbnailHeight int      `json:"thumbnail_height,omitempty"`
}

const (
	NoCast  = "N/A"
	NoImage = "No Image"
)

// CastText joins the cast for display, falling back to NoCast when absent or empty.
func (m *Movie) CastText() string {
	if text := strings.Join(m.Cast, ", "); text != "" {
		return text
	}
	return NoCast
}

func (m *Movie) GenresText() string {
	return strings.Join(m.Genres, ", ")
}

// ThumbnailText returns the thumbnail URL or NoImage.
func (m *Movie) ThumbnailText() string {
	if m.Thumbnail == "" {
		return NoImage
	}
	return m.Thumbnail
}

// WikipediaURL resolves Href against English Wikipedia.
func (m *Movie) WikipediaURL() string {
	if m.Href == "" {
		return ""
	}
	return "https://en.wikipedia.org/wiki/" + m.Href
}

// Year is a release year. It decodes from a number, a numeric string or
// null; anything else becomes zero, which displays as blank, so one odd
// record never fails the collection.
type Year int

func (y *Year) UnmarshalJSON(data []byte) error {
	*y = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return nil
		}
		text = strings.TrimSpace(unquoted)
	}
	if n, err := strconv.Atoi(text); err == nil {
		*y = Year(n)
		return nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		*y = Year(f)
	}
	return nil
}

// String renders the year, or "" when it is unknown.
func (y Year) String() string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(int(y))
}

// SnapshotMeta describes the last collection saved by the loader.
type SnapshotMeta struct {
	SourceURL    string    `json:"source_url"`
	FetchedAt    time.Time `json:"fetched_at"`
	Count        int       `json:"count"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"last_modified"`
}
