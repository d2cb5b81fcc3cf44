package tui

type View int

const (
	ViewMovies View = iota
	ViewGenres
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewMovies:
		return "movies"
	case ViewGenres:
		return "genres"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}
