package simulate

import "errors"

// Sentinel error kinds for this package.
var (
	ErrUnknownConference = errors.New("unknown conference")
	ErrWrite             = errors.New("write failed")
)
