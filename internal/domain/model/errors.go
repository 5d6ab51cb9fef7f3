package model

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel kinds for aggregate fold mismatches. These indicate a programming
// error in the caller, not bad user input.
var (
	ErrPlayerMismatch = errors.New("game stats player id does not match season stats player id")
	ErrTeamMismatch   = errors.New("game stats team id does not match season stats team id")
	ErrSeasonMismatch = errors.New("game stats season does not match season stats season")
)

// ValidationError reports per-field constraint violations. Fields maps a
// JSON field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, f := range names {
		parts[i] = f + ": " + e.Fields[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
