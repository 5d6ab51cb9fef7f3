package loadgen

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/internal/domain/roster"
	"github.com/okian/boxscore/pkg/logger"
)

// Generation bounds. Counting stats stay in realistic single-game ranges so
// a rejected submission always means a service-side problem, not bad input.
const (
	maxPoints    = 60
	maxRebounds  = 25
	maxAssists   = 20
	maxSteals    = 8
	maxBlocks    = 8
	maxFouls     = 6
	maxTurnovers = 10

	// Minutes are generated in whole tenths, up to 48.0.
	maxMinutesTenths = 480
)

// randIntn returns a uniform random int in [0, n) using crypto/rand.
func randIntn(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateGames builds NumGames randomized records against the seed roster.
// Every (player, game) pair is unique so each submission creates a fresh
// record instead of overwriting an earlier one.
func generateGames(ctx context.Context, config *Config, stats *Stats) []model.PlayerGameStats {
	logger.Get().Info(ctx, "generating game records",
		logger.Int("numGames", config.NumGames),
		logger.String("season", config.Season))

	r := roster.Seed()
	players := r.Players()
	teams := r.Teams()

	games := make([]model.PlayerGameStats, config.NumGames)
	for i := range games {
		player := players[i%len(players)]
		team := teams[randIntn(len(teams))]

		games[i] = model.PlayerGameStats{
			StatID:        uuid.NewString(),
			PlayerID:      player.ID,
			GameID:        "game-" + strconv.Itoa(i/len(players)+1) + "-" + player.ID,
			TeamID:        team.ID,
			Timestamp:     time.Now().UTC(),
			Season:        config.Season,
			Points:        randIntn(maxPoints + 1),
			Rebounds:      randIntn(maxRebounds + 1),
			Assists:       randIntn(maxAssists + 1),
			Steals:        randIntn(maxSteals + 1),
			Blocks:        randIntn(maxBlocks + 1),
			Fouls:         randIntn(maxFouls + 1),
			Turnovers:     randIntn(maxTurnovers + 1),
			MinutesPlayed: float64(randIntn(maxMinutesTenths+1)) / 10,
		}
	}

	stats.GamesGenerated = len(games)
	return games
}
