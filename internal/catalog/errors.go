package catalog

import "fmt"

// LoadError reports that the collection could not be obtained: the request
// failed, the server answered with an error status, or the body was not a
// JSON array of movies.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading movies from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
