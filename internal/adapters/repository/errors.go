package repository

import "errors"

// Sentinel kinds for store errors.
var (
	// ErrNotFound signals an absent record on a point lookup. It is the
	// store-level shape of "empty result"; only the HTTP boundary turns it
	// into a 404.
	ErrNotFound = errors.New("statistics not found")
)
