package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/internal/domain/roster"
	"github.com/okian/boxscore/pkg/logger"
)

const percentageMultiplier = 100

// Run executes the complete load run: health check, generation, concurrent
// submission, then verification of the aggregates the service reports.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting boxscore load run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("games", config.NumGames),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("season", config.Season),
		logger.Any("verbose", config.Verbose))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	games := generateGames(ctx, config, stats)

	if err := submitGames(ctx, config, games, stats); err != nil {
		return fmt.Errorf("game submission failed: %w", err)
	}

	if err := verifyAggregates(ctx, config, games, stats); err != nil {
		return fmt.Errorf("aggregate verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "load run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Any 200 counts as healthy (the endpoint serves Prometheus metrics)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// verifyAggregates fetches each touched player's season aggregate and checks
// the game counts and point totals against what was submitted. Writes are
// synchronous, so the aggregates must already reflect every accepted record.
func verifyAggregates(ctx context.Context, config *Config, games []model.PlayerGameStats, stats *Stats) error {
	logger.Get().Info(ctx, "verifying season aggregates")

	expectedGames := make(map[string]int)
	expectedPoints := make(map[string]int)
	for _, g := range games {
		expectedGames[g.PlayerID]++
		expectedPoints[g.PlayerID] += g.Points
	}

	client := newHTTPClient(config.Timeout)
	mismatches := 0

	for _, player := range roster.Seed().Players() {
		want, ok := expectedGames[player.ID]
		if !ok {
			continue
		}

		url := fmt.Sprintf("%s/api/v1/statistics/players/%s/seasons/%s", config.BaseURL, player.ID, config.Season)
		resp, err := client.Get(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to fetch season for player %s: %w", player.ID, err)
		}
		body, err := readResponseBody(resp)
		if err != nil {
			return fmt.Errorf("failed to read season for player %s: %w", player.ID, err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("season fetch for player %s failed with status: %d", player.ID, resp.StatusCode)
		}

		var season model.PlayerSeasonStats
		if err := json.Unmarshal(body, &season); err != nil {
			return fmt.Errorf("failed to decode season for player %s: %w", player.ID, err)
		}
		stats.SeasonsRetrieved++

		if season.GamesPlayed != want || season.TotalPoints != expectedPoints[player.ID] {
			mismatches++
			logger.Get().Warn(ctx, "aggregate mismatch",
				logger.String("playerId", player.ID),
				logger.Int("wantGames", want),
				logger.Int("gotGames", season.GamesPlayed),
				logger.Int("wantPoints", expectedPoints[player.ID]),
				logger.Int("gotPoints", season.TotalPoints))
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d player aggregates did not match the submitted records", mismatches)
	}

	logger.Get().Info(ctx, "all player aggregates match", logger.Int("players", stats.SeasonsRetrieved))
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	var successRate, gamesPerSecond float64

	if stats.GamesSubmitted > 0 {
		successRate = float64(stats.GamesSuccessful) / float64(stats.GamesSubmitted) * percentageMultiplier
	}

	if stats.Duration > 0 {
		gamesPerSecond = float64(stats.GamesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("gamesGenerated", stats.GamesGenerated),
		logger.Int("gamesSubmitted", stats.GamesSubmitted),
		logger.Int("gamesSuccessful", stats.GamesSuccessful),
		logger.Int("gamesRejected", stats.GamesRejected),
		logger.Int("gamesFailed", stats.GamesFailed),
		logger.Int("seasonsRetrieved", stats.SeasonsRetrieved),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("gamesPerSecond", gamesPerSecond))
}
