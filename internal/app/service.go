// Package app provides the statistics service that backs the HTTP API:
// recording game statistics, folding season aggregates and serving the
// read-only queries.
package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	repository "github.com/okian/boxscore/internal/adapters/repository"
	"github.com/okian/boxscore/internal/domain/roster"
	"github.com/okian/boxscore/pkg/logger"
)

// Service implements the API dependencies for the statistics system. The
// three stores are process-wide singletons shared by all requests; no
// transaction spans more than one of them.
type Service struct {
	mu sync.Mutex

	games         repository.GameStatsStore
	playerSeasons repository.PlayerSeasonStore
	teamSeasons   repository.TeamSeasonStore
	roster        *roster.Roster

	shardCount  int
	redisClient *redis.Client

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoster injects the roster snapshot. Defaults to the seed roster.
func WithRoster(r *roster.Roster) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithShardCount sets the shard count for the in-memory stores.
func WithShardCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

// WithRedisClient switches the stores to the redis backend.
func WithRedisClient(client *redis.Client) Option {
	return func(s *Service) {
		s.redisClient = client
	}
}

// WithStores injects pre-built stores, primarily for tests.
func WithStores(games repository.GameStatsStore, playerSeasons repository.PlayerSeasonStore, teamSeasons repository.TeamSeasonStore) Option {
	return func(s *Service) {
		s.games = games
		s.playerSeasons = playerSeasons
		s.teamSeasons = teamSeasons
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		shardCount: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the stores and roster. Safe to call once; subsequent
// calls are no-ops.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.roster == nil {
		s.roster = roster.Seed()
	}

	if s.games == nil {
		if s.redisClient != nil {
			s.games = repository.NewRedisGameStatsStore(s.redisClient)
			s.playerSeasons = repository.NewRedisPlayerSeasonStore(s.redisClient)
			s.teamSeasons = repository.NewRedisTeamSeasonStore(s.redisClient)
			s.logger.Info(ctx, "using redis stores")
		} else {
			opts := []repository.Option{repository.WithShardCount(s.shardCount)}
			s.games = repository.NewMemoryGameStatsStore(opts...)
			s.playerSeasons = repository.NewMemoryPlayerSeasonStore(opts...)
			s.teamSeasons = repository.NewMemoryTeamSeasonStore(opts...)
			s.logger.Info(ctx, "using in-memory stores", logger.Int("shards", s.shardCount))
		}
	}

	s.started = true
	s.logger.Info(ctx, "statistics service started",
		logger.Int("players", s.roster.PlayerCount()),
		logger.Int("teams", s.roster.TeamCount()),
	)
	return nil
}

// Stop releases backend resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "statistics service stopped")
}

// GetStats returns service counters for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.started {
		ctx := context.Background()
		stats["gameRecords"] = s.games.Count(ctx)
		stats["playerSeasons"] = s.playerSeasons.Count(ctx)
		stats["teamSeasons"] = s.teamSeasons.Count(ctx)
		stats["players"] = s.roster.PlayerCount()
		stats["teams"] = s.roster.TeamCount()
	}
	return stats
}
