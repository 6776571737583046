package pystr

import "errors"

// Errors of package pystr. Functions wrap them with additional detail.
var (
	ErrNotFound = errors.New("substring not found")
	ErrIndex    = errors.New("string index out of range")
	ErrValue    = errors.New("invalid value")
	ErrType     = errors.New("type mismatch")
)
