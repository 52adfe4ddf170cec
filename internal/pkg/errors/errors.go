package errors

import "errors"

var (
	// ErrInvalidArgument is a generic sentinel for invalid caller input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoContent marks a script that produced nothing narratable.
	ErrNoContent = errors.New("no narratable content")
)
