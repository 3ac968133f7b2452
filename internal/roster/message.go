package roster

import (
	"errors"
	"net/http"

	"github.com/rshade/holocron/internal/swapi"
)

// User-facing messages. These are the only strings shown for failures.
const (
	MsgNoCharacters = "No characters found."
	MsgServerError  = "Server error. Please try again later."
	MsgUnexpected   = "Unexpected error. Please try again."
	MsgNetwork      = "Network error. Please check your internet connection."
	MsgGeneric      = "An error occurred. Please try again."
)

// ErrNoResults marks a successful response that contained no characters.
var ErrNoResults = errors.New("no characters found")

// Message maps err to its user-facing message. A nil error maps to "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNoResults) {
		return MsgNoCharacters
	}

	switch code := swapi.StatusCode(err); {
	case code == http.StatusNotFound:
		return MsgNoCharacters
	case code == http.StatusInternalServerError:
		return MsgServerError
	case code != 0:
		return MsgUnexpected
	}

	if errors.Is(err, swapi.ErrNetwork) {
		return MsgNetwork
	}
	return MsgGeneric
}
