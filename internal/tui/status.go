package tui

import (
	"fmt"
	"time"
)

// Canonical short status messages used across the app.
const (
	MsgLoading        = "Loading movies…"
	MsgRendering      = "Rendering details…"
	MsgNoResults      = "No movies match the current filters"
	MsgNoMovies       = "No movies"
	MsgLoadFailed     = "Could not load movies"
	MsgFiltersCleared = "Filters cleared"
	MsgNoLink         = "No link for this movie"
	MsgNoThumbnail    = "No thumbnail for this movie"
)

func MsgLoaded(movies, genres int) string {
	return fmt.Sprintf("Loaded %d movies • %d genres", movies, genres)
}

func MsgOffline(movies int, fetchedAt time.Time) string {
	if fetchedAt.IsZero() {
		return fmt.Sprintf("Offline: %d movies from snapshot", movies)
	}
	return fmt.Sprintf("Offline: %d movies from snapshot of %s", movies, fetchedAt.Format("Jan 2 2006, 15:04"))
}

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 movie"
	}
	return fmt.Sprintf("%d movies", n)
}

// MsgShowing summarises the rendered window against the filtered size.
func MsgShowing(shown, filtered, total int) string {
	if filtered == total {
		return fmt.Sprintf("showing %d of %s", shown, MsgResultsCount(total))
	}
	return fmt.Sprintf("showing %d of %d matches • %s total", shown, filtered, MsgResultsCount(total))
}

func MsgGenresSelected(n int) string {
	switch n {
	case 0:
		return "all genres"
	case 1:
		return "1 genre"
	default:
		return fmt.Sprintf("%d genres", n)
	}
}

func MsgOpened(url string) string {
	return "Opened " + truncateMiddle(url, 60)
}

// setStatus replaces the transient status line.
func (a *App) setStatus(text string, kind StatusKind) {
	a.status = text
	a.statusKind = kind
}

func (a *App) clearStatus() {
	a.status = ""
	a.statusKind = StatusInfo
}
