package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/boxscore/internal/loadgen"
)

// Default configuration constants.
const (
	defaultNumGames   = 1000
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
	defaultSeason     = "2023-2024"
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numGames = flag.Int("games", defaultNumGames, "Number of game records to generate and submit")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		season   = flag.String("season", defaultSeason, "Season label stamped on every record")
		logFile  = flag.String("log", "", "Log file for run output (default: loadgen_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		loadgen.ShowHelp()
		return
	}

	if err := loadgen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &loadgen.Config{
		BaseURL:  *baseURL,
		NumGames: *numGames,
		Workers:  *workers,
		Timeout:  *timeout,
		Season:   *season,
		LogFile:  *logFile,
		Verbose:  *verbose,
	}

	if err := loadgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Load run failed: " + err.Error() + "\n")
		return
	}
}
