package model

import (
	"math"
	"time"
)

// Game stat bounds.
const (
	maxFouls         = 6
	maxMinutesPlayed = 48.0

	// minutesEpsilon absorbs binary float noise when checking that minutes
	// land on a 0.1 boundary.
	minutesEpsilon = 1e-6
)

// PlayerGameStats is one player's box score for one game. A record is
// immutable once created and is identified by (playerId, gameId) for
// storage purposes.
type PlayerGameStats struct {
	StatID        string    `json:"statId"`
	PlayerID      string    `json:"playerId"`
	GameID        string    `json:"gameId"`
	TeamID        string    `json:"teamId"`
	Timestamp     time.Time `json:"timestamp"`
	Season        string    `json:"season"`
	Points        int       `json:"points"`
	Rebounds      int       `json:"rebounds"`
	Assists       int       `json:"assists"`
	Steals        int       `json:"steals"`
	Blocks        int       `json:"blocks"`
	Fouls         int       `json:"fouls"`
	Turnovers     int       `json:"turnovers"`
	MinutesPlayed float64   `json:"minutesPlayed"`
}

// NewPlayerGameStats validates s and returns it unchanged, or a
// *ValidationError describing every violated constraint.
func NewPlayerGameStats(s PlayerGameStats) (PlayerGameStats, error) {
	if err := s.Validate(); err != nil {
		return PlayerGameStats{}, err
	}
	return s, nil
}

// Validate checks the field constraints. It returns nil or a
// *ValidationError carrying a field-to-message map.
func (s PlayerGameStats) Validate() error {
	fields := make(map[string]string)

	if s.StatID == "" {
		fields["statId"] = "Statistics ID is required"
	}
	if s.PlayerID == "" {
		fields["playerId"] = "Player ID is required"
	}
	if s.GameID == "" {
		fields["gameId"] = "Game ID is required"
	}
	if s.TeamID == "" {
		fields["teamId"] = "Team ID is required"
	}
	if s.Timestamp.IsZero() {
		fields["timestamp"] = "Timestamp is required"
	}
	if s.Season == "" {
		fields["season"] = "Season identifier is required"
	}
	if s.Points < 0 {
		fields["points"] = "Points must be zero or positive"
	}
	if s.Rebounds < 0 {
		fields["rebounds"] = "Rebounds must be zero or positive"
	}
	if s.Assists < 0 {
		fields["assists"] = "Assists must be zero or positive"
	}
	if s.Steals < 0 {
		fields["steals"] = "Steals must be zero or positive"
	}
	if s.Blocks < 0 {
		fields["blocks"] = "Blocks must be zero or positive"
	}
	if s.Fouls < 0 || s.Fouls > maxFouls {
		fields["fouls"] = "Fouls must be between 0 and 6"
	}
	if s.Turnovers < 0 {
		fields["turnovers"] = "Turnovers must be zero or positive"
	}
	switch {
	case s.MinutesPlayed < 0 || s.MinutesPlayed > maxMinutesPlayed:
		fields["minutesPlayed"] = "Minutes played must be between 0 and 48"
	case !onTenthBoundary(s.MinutesPlayed):
		fields["minutesPlayed"] = "Minutes played must be in increments of 0.1"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// onTenthBoundary reports whether m is a whole number of tenths.
func onTenthBoundary(m float64) bool {
	scaled := m * 10
	return math.Abs(scaled-math.Round(scaled)) < minutesEpsilon
}
