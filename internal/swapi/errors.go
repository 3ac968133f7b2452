package swapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for failures that never produced an HTTP status.
var (
	// ErrNetwork wraps transport failures where no response was received.
	ErrNetwork = errors.New("swapi: network error")
	// ErrDecode wraps response bodies that are not valid page JSON.
	ErrDecode = errors.New("swapi: invalid response body")
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("swapi: page must be >= 1")
)

// StatusError is returned when SWAPI answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("swapi: GET %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// StatusCode extracts the HTTP status from err, or 0 if err carries none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
