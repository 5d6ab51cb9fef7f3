package model

import "fmt"

// TeamSeasonStats aggregates the games played by a team's roster within one
// season. Unlike the player aggregate it keeps running averages only; each
// fold applies the incremental-mean update. Values are immutable.
type TeamSeasonStats struct {
	Team                 Team    `json:"team"`
	Season               string  `json:"season"`
	TotalGamesPlayed     int     `json:"totalGamesPlayed"`
	AverageTeamPoints    float64 `json:"averageTeamPoints"`
	AverageTeamRebounds  float64 `json:"averageTeamRebounds"`
	AverageTeamAssists   float64 `json:"averageTeamAssists"`
	AverageTeamSteals    float64 `json:"averageTeamSteals"`
	AverageTeamBlocks    float64 `json:"averageTeamBlocks"`
	AverageTeamFouls     float64 `json:"averageTeamFouls"`
	AverageTeamTurnovers float64 `json:"averageTeamTurnovers"`
}

// TeamSeasonFromFirstGame seeds a team aggregate from the first contributing
// game: averages start at that game's raw values.
func TeamSeasonFromFirstGame(game PlayerGameStats, team Team) TeamSeasonStats {
	return TeamSeasonStats{
		Team:                 team,
		Season:               game.Season,
		TotalGamesPlayed:     1,
		AverageTeamPoints:    float64(game.Points),
		AverageTeamRebounds:  float64(game.Rebounds),
		AverageTeamAssists:   float64(game.Assists),
		AverageTeamSteals:    float64(game.Steals),
		AverageTeamBlocks:    float64(game.Blocks),
		AverageTeamFouls:     float64(game.Fouls),
		AverageTeamTurnovers: float64(game.Turnovers),
	}
}

// WithNewGame folds game into the aggregate via the incremental-mean
// formula newAvg = (oldAvg*(n-1) + v) / n, where n is the post-increment
// game count. The receiver is left unchanged.
func (s TeamSeasonStats) WithNewGame(game PlayerGameStats) (TeamSeasonStats, error) {
	if game.TeamID != s.Team.ID {
		return TeamSeasonStats{}, fmt.Errorf("%w: have %q, got %q", ErrTeamMismatch, s.Team.ID, game.TeamID)
	}
	if game.Season != s.Season {
		return TeamSeasonStats{}, fmt.Errorf("%w: have %q, got %q", ErrSeasonMismatch, s.Season, game.Season)
	}

	n := s.TotalGamesPlayed + 1
	return TeamSeasonStats{
		Team:                 s.Team,
		Season:               s.Season,
		TotalGamesPlayed:     n,
		AverageTeamPoints:    incrementalMean(s.AverageTeamPoints, float64(game.Points), n),
		AverageTeamRebounds:  incrementalMean(s.AverageTeamRebounds, float64(game.Rebounds), n),
		AverageTeamAssists:   incrementalMean(s.AverageTeamAssists, float64(game.Assists), n),
		AverageTeamSteals:    incrementalMean(s.AverageTeamSteals, float64(game.Steals), n),
		AverageTeamBlocks:    incrementalMean(s.AverageTeamBlocks, float64(game.Blocks), n),
		AverageTeamFouls:     incrementalMean(s.AverageTeamFouls, float64(game.Fouls), n),
		AverageTeamTurnovers: incrementalMean(s.AverageTeamTurnovers, float64(game.Turnovers), n),
	}, nil
}

func incrementalMean(oldAvg, value float64, n int) float64 {
	return (oldAvg*float64(n-1) + value) / float64(n)
}
