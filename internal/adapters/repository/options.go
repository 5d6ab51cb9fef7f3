package repository

// Default sharding for the in-memory stores.
const defaultShardCount = 8

type settings struct {
	shardCount int
}

// Option applies a configuration option to an in-memory store.
type Option func(*settings)

// WithShardCount sets the number of map shards.
func WithShardCount(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
