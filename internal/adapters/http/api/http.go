// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/boxscore/internal/adapters/repository"
	"github.com/okian/boxscore/internal/domain/model"
)

// Dependencies bundles everything the HTTP handlers need. Handlers each
// declare a narrower interface; this is the union the server is wired with.
type Dependencies interface {
	RecordGame(ctx context.Context, stats model.PlayerGameStats) (model.PlayerGameStats, error)

	Players(ctx context.Context) ([]model.Player, error)
	Teams(ctx context.Context) ([]model.Team, error)

	PlayerSeason(ctx context.Context, playerID, season string) (*model.PlayerSeasonStats, error)
	TeamSeason(ctx context.Context, teamID, season string) (*model.TeamSeasonStats, error)
	AllPlayerSeasons(ctx context.Context) ([]model.PlayerSeasonStats, error)
	AllTeamSeasons(ctx context.Context) ([]model.TeamSeasonStats, error)
}

// StatsProvider exposes service counters for the /stats endpoint.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	playersHandler    *PlayersHandler
	teamsHandler      *TeamsHandler
	statisticsHandler *StatisticsHandler
	seasonsHandler    *SeasonsHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		playersHandler:    NewPlayersHandler(deps),
		teamsHandler:      NewTeamsHandler(deps),
		statisticsHandler: NewStatisticsHandler(deps),
		seasonsHandler:    NewSeasonsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /api/v1/players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("GET /api/v1/teams", MetricsMiddleware(s.teamsHandler.HandleList, "teams"))

	mux.HandleFunc("POST /api/v1/statistics/player/stats",
		MetricsMiddleware(s.statisticsHandler.HandleRecordGame, "record_game"))
	mux.HandleFunc("GET /api/v1/statistics/players/season-stats",
		MetricsMiddleware(s.seasonsHandler.HandleAllPlayerSeasons, "player_season_list"))
	mux.HandleFunc("GET /api/v1/statistics/players/{playerId}/seasons/{season}",
		MetricsMiddleware(s.seasonsHandler.HandlePlayerSeason, "player_season"))
	mux.HandleFunc("GET /api/v1/statistics/teams/stats",
		MetricsMiddleware(s.seasonsHandler.HandleAllTeamSeasons, "team_season_list"))
	mux.HandleFunc("GET /api/v1/statistics/teams/{teamId}/seasons/{season}",
		MetricsMiddleware(s.seasonsHandler.HandleTeamSeason, "team_season"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeInternalError answers a generic 500. The cause stays in the server
// logs only.
func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Code:    "internal_error",
		Message: "an unexpected server error occurred",
	})
}

// isNotFound translates the store-level empty result into the 404 decision.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
