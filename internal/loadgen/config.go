// Package loadgen generates randomized game statistics and drives them
// through a running service over HTTP, then verifies the season aggregates
// it reads back.
package loadgen

import "time"

// Config holds configuration for a load run.
type Config struct {
	BaseURL  string        // Base URL of the service
	NumGames int           // Number of game records to generate
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Season   string        // Season label stamped on every record
	LogFile  string        // Log file for run output
	Verbose  bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	GamesGenerated   int
	GamesSubmitted   int
	GamesSuccessful  int
	GamesRejected    int
	GamesFailed      int
	SeasonsRetrieved int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
