package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrServe      = errors.New("serve failed")
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// NewKind tags a sentinel with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// Wrap annotates an upstream error with the operation that saw it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
