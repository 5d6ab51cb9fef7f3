// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer sources.
// - External errors must be wrapped via this package's error helpers.
package config

// Store backend names accepted in Config.StoreBackend.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ShardCount configures the number of shards in each in-memory store.
	ShardCount int `koanf:"shard_count"`

	// StoreBackend selects where statistics live: memory or redis.
	StoreBackend string `koanf:"store_backend"`

	// RedisURL is the connection URL used when StoreBackend is redis,
	// e.g. "redis://localhost:6379/0".
	RedisURL string `koanf:"redis_url"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8080",
		ShardCount:   8,
		StoreBackend: StoreMemory,
		RedisURL:     "redis://localhost:6379/0",
	}
}
