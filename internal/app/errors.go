package app

import "errors"

// Sentinel kinds for aggregation errors.
var (
	// ErrTeamNotFound means a game record named a team absent from the
	// roster. By the time it surfaces the game record and player aggregate
	// are already persisted; the write is not rolled back.
	ErrTeamNotFound = errors.New("team not found")
)
