package app

import (
	"context"

	"github.com/okian/boxscore/internal/domain/model"
)

// Read-only accessors. Point lookups return repository.ErrNotFound for
// absent aggregates; the HTTP layer turns that into a 404.

// Players returns the seeded players ordered by id.
func (s *Service) Players(_ context.Context) ([]model.Player, error) {
	return s.roster.Players(), nil
}

// Teams returns the seeded teams ordered by id.
func (s *Service) Teams(_ context.Context) ([]model.Team, error) {
	return s.roster.Teams(), nil
}

// PlayerSeason returns one player's aggregate for a season.
func (s *Service) PlayerSeason(ctx context.Context, playerID, season string) (*model.PlayerSeasonStats, error) {
	return s.playerSeasons.FindByPlayerAndSeason(ctx, playerID, season)
}

// TeamSeason returns one team's aggregate for a season.
func (s *Service) TeamSeason(ctx context.Context, teamID, season string) (*model.TeamSeasonStats, error) {
	return s.teamSeasons.FindByTeamAndSeason(ctx, teamID, season)
}

// AllPlayerSeasons returns every player season aggregate, unordered.
func (s *Service) AllPlayerSeasons(ctx context.Context) ([]model.PlayerSeasonStats, error) {
	return s.playerSeasons.FindAll(ctx)
}

// AllTeamSeasons returns every team season aggregate, unordered.
func (s *Service) AllTeamSeasons(ctx context.Context) ([]model.TeamSeasonStats, error) {
	return s.teamSeasons.FindAll(ctx)
}
