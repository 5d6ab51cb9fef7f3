package app

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/okian/boxscore/internal/adapters/repository"
	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/logger"
	"github.com/okian/boxscore/pkg/metrics"
)

// RecordGame persists a game record and folds it into the player and team
// season aggregates, in that order. The returned value is the game record,
// not an aggregate; callers query aggregates separately.
//
// Failure windows, deliberately not compensated:
//   - a game-store failure aborts before any aggregate is touched;
//   - a player-aggregate failure leaves the game record persisted;
//   - a team-side failure (including an unknown team) leaves both the game
//     record and the player aggregate persisted.
func (s *Service) RecordGame(ctx context.Context, stats model.PlayerGameStats) (model.PlayerGameStats, error) {
	if _, err := s.games.Save(ctx, &stats); err != nil {
		return model.PlayerGameStats{}, fmt.Errorf("save game stats: %w", err)
	}

	if err := s.updatePlayerSeason(ctx, stats); err != nil {
		metrics.RecordAggregationError()
		return model.PlayerGameStats{}, err
	}

	if _, err := s.updateTeamSeason(ctx, stats); err != nil {
		metrics.RecordAggregationError()
		return model.PlayerGameStats{}, err
	}

	metrics.RecordGameRecorded()
	s.logger.Debug(ctx, "recorded game statistics",
		logger.String("playerId", stats.PlayerID),
		logger.String("gameId", stats.GameID),
		logger.String("season", stats.Season),
	)
	return stats, nil
}

// updatePlayerSeason creates or folds the player's season aggregate.
func (s *Service) updatePlayerSeason(ctx context.Context, stats model.PlayerGameStats) error {
	existing, err := s.playerSeasons.FindByPlayerAndSeason(ctx, stats.PlayerID, stats.Season)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		season := model.PlayerSeasonFromFirstGame(stats)
		if _, err := s.playerSeasons.Save(ctx, &season); err != nil {
			return fmt.Errorf("save player season stats: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("load player season stats: %w", err)
	}

	updated, err := existing.WithNewGame(stats)
	if err != nil {
		return fmt.Errorf("fold game into player season: %w", err)
	}
	if _, err := s.playerSeasons.Save(ctx, &updated); err != nil {
		return fmt.Errorf("save player season stats: %w", err)
	}
	return nil
}

// updateTeamSeason resolves the team from the roster and creates or folds
// its season aggregate, returning the persisted value.
func (s *Service) updateTeamSeason(ctx context.Context, stats model.PlayerGameStats) (*model.TeamSeasonStats, error) {
	team, ok := s.roster.Team(stats.TeamID)
	if !ok {
		return nil, fmt.Errorf("%w: id %q", ErrTeamNotFound, stats.TeamID)
	}

	existing, err := s.teamSeasons.FindByTeamAndSeason(ctx, stats.TeamID, stats.Season)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		season := model.TeamSeasonFromFirstGame(stats, team)
		if _, err := s.teamSeasons.Save(ctx, &season); err != nil {
			return nil, fmt.Errorf("save team season stats: %w", err)
		}
		return &season, nil
	case err != nil:
		return nil, fmt.Errorf("load team season stats: %w", err)
	}

	updated, err := existing.WithNewGame(stats)
	if err != nil {
		return nil, fmt.Errorf("fold game into team season: %w", err)
	}
	if _, err := s.teamSeasons.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save team season stats: %w", err)
	}
	return &updated, nil
}
