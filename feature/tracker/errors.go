package tracker

import "errors"

// Error taxonomy for store operations. Handlers map these onto structured
// error responses; anything unrecognized is shaped as a generic failure.
var (
	// ErrStoreUnavailable marks a backing table that is missing or
	// unreachable.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidArgument marks a malformed identifier or payload.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks an identifier that does not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrUnknownAction marks an unrecognized operation tag.
	ErrUnknownAction = errors.New("unknown action")
)
