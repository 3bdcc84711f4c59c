package repository

import "errors"

// Sentinel error kinds for this package.
var (
	ErrEmptySnapshot = errors.New("empty snapshot")
)
