package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated signals a terminal authorization failure: the refresh
// protocol was exhausted (or never possible) and the session has been
// cleared. Callers navigate back to the login entry point.
var ErrUnauthenticated = errors.New("unauthenticated")

// Error is a non-2xx API response. Message and Fields carry the server's
// envelope payload unchanged so the view layer can surface them verbatim.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// IsNotFound reports whether err is a 404 API error
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
