package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by FetchOne when the catalog has no script with the id.
var ErrNotFound = errors.New("script not found")

// SourceUnavailableError reports a catalog that could not be read.
type SourceUnavailableError struct {
	URL string
	Err error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("catalog unavailable at %s: %v", e.URL, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
