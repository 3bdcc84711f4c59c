package service

import "errors"

// Sentinel error kinds for this package.
var (
	ErrNoStore           = errors.New("no event store configured")
	ErrUnknownConference = errors.New("unknown conference")
)
