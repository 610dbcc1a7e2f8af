package repository

import "errors"

var (
	// ErrInvalidRole indicates an append with a role outside the three
	// known values. This is a programming error, not an external condition.
	ErrInvalidRole = errors.New("invalid turn role")
)
