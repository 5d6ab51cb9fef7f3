package model

import (
	"fmt"
	"math"
)

// PlayerSeasonStats aggregates one player's games within one season.
// Averages always equal total/gamesPlayed; avgMinutesPlayed is kept to one
// decimal place, rounded half-up. Values are immutable: folding in a new
// game produces a fresh value.
type PlayerSeasonStats struct {
	PlayerID           string  `json:"playerId"`
	Season             string  `json:"season"`
	GamesPlayed        int     `json:"gamesPlayed"`
	TotalPoints        int     `json:"totalPoints"`
	TotalRebounds      int     `json:"totalRebounds"`
	TotalAssists       int     `json:"totalAssists"`
	TotalSteals        int     `json:"totalSteals"`
	TotalBlocks        int     `json:"totalBlocks"`
	TotalFouls         int     `json:"totalFouls"`
	TotalTurnovers     int     `json:"totalTurnovers"`
	TotalMinutesPlayed float64 `json:"totalMinutesPlayed"`
	AvgPoints          float64 `json:"avgPoints"`
	AvgRebounds        float64 `json:"avgRebounds"`
	AvgAssists         float64 `json:"avgAssists"`
	AvgSteals          float64 `json:"avgSteals"`
	AvgBlocks          float64 `json:"avgBlocks"`
	AvgFouls           float64 `json:"avgFouls"`
	AvgTurnovers       float64 `json:"avgTurnovers"`
	AvgMinutesPlayed   float64 `json:"avgMinutesPlayed"`
}

// PlayerSeasonFromFirstGame seeds an aggregate from the player's first game
// of the season: totals and averages both equal the game's raw values.
func PlayerSeasonFromFirstGame(game PlayerGameStats) PlayerSeasonStats {
	return PlayerSeasonStats{
		PlayerID:           game.PlayerID,
		Season:             game.Season,
		GamesPlayed:        1,
		TotalPoints:        game.Points,
		TotalRebounds:      game.Rebounds,
		TotalAssists:       game.Assists,
		TotalSteals:        game.Steals,
		TotalBlocks:        game.Blocks,
		TotalFouls:         game.Fouls,
		TotalTurnovers:     game.Turnovers,
		TotalMinutesPlayed: game.MinutesPlayed,
		AvgPoints:          float64(game.Points),
		AvgRebounds:        float64(game.Rebounds),
		AvgAssists:         float64(game.Assists),
		AvgSteals:          float64(game.Steals),
		AvgBlocks:          float64(game.Blocks),
		AvgFouls:           float64(game.Fouls),
		AvgTurnovers:       float64(game.Turnovers),
		AvgMinutesPlayed:   roundHalfUpTenth(game.MinutesPlayed),
	}
}

// WithNewGame folds game into the aggregate and returns the updated value.
// The receiver is left unchanged. game must belong to the same player and
// season as the aggregate.
func (s PlayerSeasonStats) WithNewGame(game PlayerGameStats) (PlayerSeasonStats, error) {
	if game.PlayerID != s.PlayerID {
		return PlayerSeasonStats{}, fmt.Errorf("%w: have %q, got %q", ErrPlayerMismatch, s.PlayerID, game.PlayerID)
	}
	if game.Season != s.Season {
		return PlayerSeasonStats{}, fmt.Errorf("%w: have %q, got %q", ErrSeasonMismatch, s.Season, game.Season)
	}

	n := s.GamesPlayed + 1
	next := PlayerSeasonStats{
		PlayerID:           s.PlayerID,
		Season:             s.Season,
		GamesPlayed:        n,
		TotalPoints:        s.TotalPoints + game.Points,
		TotalRebounds:      s.TotalRebounds + game.Rebounds,
		TotalAssists:       s.TotalAssists + game.Assists,
		TotalSteals:        s.TotalSteals + game.Steals,
		TotalBlocks:        s.TotalBlocks + game.Blocks,
		TotalFouls:         s.TotalFouls + game.Fouls,
		TotalTurnovers:     s.TotalTurnovers + game.Turnovers,
		TotalMinutesPlayed: s.TotalMinutesPlayed + game.MinutesPlayed,
	}
	next.AvgPoints = float64(next.TotalPoints) / float64(n)
	next.AvgRebounds = float64(next.TotalRebounds) / float64(n)
	next.AvgAssists = float64(next.TotalAssists) / float64(n)
	next.AvgSteals = float64(next.TotalSteals) / float64(n)
	next.AvgBlocks = float64(next.TotalBlocks) / float64(n)
	next.AvgFouls = float64(next.TotalFouls) / float64(n)
	next.AvgTurnovers = float64(next.TotalTurnovers) / float64(n)
	next.AvgMinutesPlayed = roundHalfUpTenth(next.TotalMinutesPlayed / float64(n))
	return next, nil
}

// roundHalfUpTenth rounds to one decimal place with ties going up.
// Inputs are non-negative minute values.
func roundHalfUpTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
