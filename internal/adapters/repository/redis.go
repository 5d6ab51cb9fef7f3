package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/metrics"
)

// Redis-backed store implementations. Records are stored as JSON strings
// under the same composite keys as the in-memory stores, namespaced per
// store. Selected with store_backend: redis; semantics match the memory
// backend except that FindAll scans the keyspace.

const (
	redisGamePrefix         = "boxscore:game"
	redisPlayerSeasonPrefix = "boxscore:playerseason"
	redisTeamSeasonPrefix   = "boxscore:teamseason"

	redisScanBatch = 100
)

type redisKV struct {
	client *redis.Client
	prefix string
	name   string
}

func (kv *redisKV) set(ctx context.Context, key string, v any) error {
	defer observe(kv.name, "save", time.Now())
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", kv.name, err)
	}
	if err := kv.client.Set(ctx, Key(kv.prefix, key), data, 0).Err(); err != nil {
		return fmt.Errorf("save %s record: %w", kv.name, err)
	}
	return nil
}

func (kv *redisKV) get(ctx context.Context, key string, out any) error {
	defer observe(kv.name, "find", time.Now())
	data, err := kv.client.Get(ctx, Key(kv.prefix, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s record: %w", kv.name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s record: %w", kv.name, err)
	}
	return nil
}

// scan walks the store's keyspace and hands each raw value to fn.
func (kv *redisKV) scan(ctx context.Context, fn func(data []byte) error) error {
	defer observe(kv.name, "find_all", time.Now())
	iter := kv.client.Scan(ctx, 0, Key(kv.prefix, "*"), redisScanBatch).Iterator()
	for iter.Next(ctx) {
		data, err := kv.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue // expired between scan and get
		}
		if err != nil {
			return fmt.Errorf("load %s record: %w", kv.name, err)
		}
		if err := fn(data); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan %s records: %w", kv.name, err)
	}
	return nil
}

func (kv *redisKV) count(ctx context.Context) int {
	n := 0
	iter := kv.client.Scan(ctx, 0, Key(kv.prefix, "*"), redisScanBatch).Iterator()
	for iter.Next(ctx) {
		n++
	}
	return n
}

// RedisGameStatsStore implements GameStatsStore on redis.
type RedisGameStatsStore struct {
	kv redisKV
}

// NewRedisGameStatsStore creates a redis-backed game statistics store.
func NewRedisGameStatsStore(client *redis.Client) *RedisGameStatsStore {
	return &RedisGameStatsStore{kv: redisKV{client: client, prefix: redisGamePrefix, name: StoreGame}}
}

func (s *RedisGameStatsStore) Save(ctx context.Context, stats *model.PlayerGameStats) (*model.PlayerGameStats, error) {
	if stats == nil {
		return nil, nil
	}
	if err := s.kv.set(ctx, Key(stats.PlayerID, stats.GameID), stats); err != nil {
		return nil, err
	}
	metrics.UpdateStoreRecords(StoreGame, s.kv.count(ctx))
	return stats, nil
}

func (s *RedisGameStatsStore) FindByPlayerAndGame(ctx context.Context, playerID, gameID string) (*model.PlayerGameStats, error) {
	var out model.PlayerGameStats
	if err := s.kv.get(ctx, Key(playerID, gameID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RedisGameStatsStore) FindAll(ctx context.Context) ([]model.PlayerGameStats, error) {
	out := make([]model.PlayerGameStats, 0)
	err := s.kv.scan(ctx, func(data []byte) error {
		var v model.PlayerGameStats
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode game record: %w", err)
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RedisGameStatsStore) Count(ctx context.Context) int {
	return s.kv.count(ctx)
}

// RedisPlayerSeasonStore implements PlayerSeasonStore on redis.
type RedisPlayerSeasonStore struct {
	kv redisKV
}

// NewRedisPlayerSeasonStore creates a redis-backed player season store.
func NewRedisPlayerSeasonStore(client *redis.Client) *RedisPlayerSeasonStore {
	return &RedisPlayerSeasonStore{kv: redisKV{client: client, prefix: redisPlayerSeasonPrefix, name: StorePlayerSeason}}
}

func (s *RedisPlayerSeasonStore) Save(ctx context.Context, stats *model.PlayerSeasonStats) (*model.PlayerSeasonStats, error) {
	if stats == nil {
		return nil, nil
	}
	if err := s.kv.set(ctx, Key(stats.PlayerID, stats.Season), stats); err != nil {
		return nil, err
	}
	metrics.UpdateStoreRecords(StorePlayerSeason, s.kv.count(ctx))
	return stats, nil
}

func (s *RedisPlayerSeasonStore) FindByPlayerAndSeason(ctx context.Context, playerID, season string) (*model.PlayerSeasonStats, error) {
	var out model.PlayerSeasonStats
	if err := s.kv.get(ctx, Key(playerID, season), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RedisPlayerSeasonStore) FindAll(ctx context.Context) ([]model.PlayerSeasonStats, error) {
	out := make([]model.PlayerSeasonStats, 0)
	err := s.kv.scan(ctx, func(data []byte) error {
		var v model.PlayerSeasonStats
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode player season record: %w", err)
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RedisPlayerSeasonStore) Count(ctx context.Context) int {
	return s.kv.count(ctx)
}

// RedisTeamSeasonStore implements TeamSeasonStore on redis.
type RedisTeamSeasonStore struct {
	kv redisKV
}

// NewRedisTeamSeasonStore creates a redis-backed team season store.
func NewRedisTeamSeasonStore(client *redis.Client) *RedisTeamSeasonStore {
	return &RedisTeamSeasonStore{kv: redisKV{client: client, prefix: redisTeamSeasonPrefix, name: StoreTeamSeason}}
}

func (s *RedisTeamSeasonStore) Save(ctx context.Context, stats *model.TeamSeasonStats) (*model.TeamSeasonStats, error) {
	if stats == nil {
		return nil, nil
	}
	if err := s.kv.set(ctx, Key(stats.Team.ID, stats.Season), stats); err != nil {
		return nil, err
	}
	metrics.UpdateStoreRecords(StoreTeamSeason, s.kv.count(ctx))
	return stats, nil
}

func (s *RedisTeamSeasonStore) FindByTeamAndSeason(ctx context.Context, teamID, season string) (*model.TeamSeasonStats, error) {
	var out model.TeamSeasonStats
	if err := s.kv.get(ctx, Key(teamID, season), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RedisTeamSeasonStore) FindAll(ctx context.Context) ([]model.TeamSeasonStats, error) {
	out := make([]model.TeamSeasonStats, 0)
	err := s.kv.scan(ctx, func(data []byte) error {
		var v model.TeamSeasonStats
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode team season record: %w", err)
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RedisTeamSeasonStore) Count(ctx context.Context) int {
	return s.kv.count(ctx)
}
