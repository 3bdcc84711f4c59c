package dataset

import "errors"

// Sentinel error kinds for this package. Callers match with errors.Is.
var (
	ErrFetch = errors.New("dataset fetch failed")
	ErrParse = errors.New("dataset parse failed")
)
