// Package repository defines the statistics store contracts and their
// in-memory and redis-backed implementations.
package repository

import (
	"context"

	"github.com/okian/boxscore/internal/domain/model"
)

// Store names used as metric labels.
const (
	StoreGame         = "game"
	StorePlayerSeason = "player_season"
	StoreTeamSeason   = "team_season"
)

// GameStatsStore holds one record per (playerId, gameId) pair.
type GameStatsStore interface {
	// Save upserts the record under its composite key and returns it.
	// A nil input is a no-op, not an error.
	Save(ctx context.Context, stats *model.PlayerGameStats) (*model.PlayerGameStats, error)

	// FindByPlayerAndGame returns the record for the pair, or ErrNotFound.
	FindByPlayerAndGame(ctx context.Context, playerID, gameID string) (*model.PlayerGameStats, error)

	// FindAll returns every record, unordered.
	FindAll(ctx context.Context) ([]model.PlayerGameStats, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}

// PlayerSeasonStore holds one aggregate per (playerId, season) pair.
type PlayerSeasonStore interface {
	Save(ctx context.Context, stats *model.PlayerSeasonStats) (*model.PlayerSeasonStats, error)
	FindByPlayerAndSeason(ctx context.Context, playerID, season string) (*model.PlayerSeasonStats, error)
	FindAll(ctx context.Context) ([]model.PlayerSeasonStats, error)
	Count(ctx context.Context) int
}

// TeamSeasonStore holds one aggregate per (teamId, season) pair.
type TeamSeasonStore interface {
	Save(ctx context.Context, stats *model.TeamSeasonStats) (*model.TeamSeasonStats, error)
	FindByTeamAndSeason(ctx context.Context, teamID, season string) (*model.TeamSeasonStats, error)
	FindAll(ctx context.Context) ([]model.TeamSeasonStats, error)
	Count(ctx context.Context) int
}
