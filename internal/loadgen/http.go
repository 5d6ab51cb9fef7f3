package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/boxscore/internal/domain/model"
)

// HTTPClient wraps http.Client with a request timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitGames posts the game records concurrently through a worker pool.
func submitGames(ctx context.Context, config *Config, games []model.PlayerGameStats, stats *Stats) error {
	log.Printf("submitting %d game records with %d workers...", len(games), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/api/v1/statistics/player/stats"

	var (
		successful int64
		rejected   int64
		failed     int64
		submitted  int64
	)

	var lastReport time.Time
	reportInterval := 1 * time.Second

	gameChan := make(chan model.PlayerGameStats, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for game := range gameChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleGame(ctx, client, url, game)

					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "rejected":
						atomic.AddInt64(&rejected, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						rej := atomic.LoadInt64(&rejected)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("progress: %d/%d submitted (success: %d, rejected: %d, failed: %d)",
								total, len(games), succ, rej, fail)
						} else {
							fmt.Printf("\rsubmitted: %d/%d (success: %d, rejected: %d, failed: %d)",
								total, len(games), succ, rej, fail)
						}
					}
				}
			}
		}()
	}

	go func() {
		defer close(gameChan)
		for _, game := range games {
			select {
			case <-ctx.Done():
				return
			case gameChan <- game:
			}
		}
	}()

	wg.Wait()

	if !config.Verbose {
		fmt.Println()
	}

	stats.GamesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.GamesSuccessful = int(atomic.LoadInt64(&successful))
	stats.GamesRejected = int(atomic.LoadInt64(&rejected))
	stats.GamesFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`game submission completed:
   Successful: %d
   Rejected: %d
   Failed: %d
`, stats.GamesSuccessful, stats.GamesRejected, stats.GamesFailed)

	return nil
}

// submitSingleGame posts one record and classifies the outcome.
func submitSingleGame(ctx context.Context, client *HTTPClient, url string, game model.PlayerGameStats) string {
	resp, err := client.Post(ctx, url, game)
	if err != nil {
		return "failed"
	}

	if _, err := readResponseBody(resp); err != nil {
		return "failed"
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return "success"
	case http.StatusBadRequest:
		// The generator only emits valid records; a rejection means the
		// service disagrees about validity.
		return "rejected"
	default:
		return "failed"
	}
}
