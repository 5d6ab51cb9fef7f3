package api

import (
	"context"
	"net/http"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/logger"
)

// SeasonsDependencies defines what the season query handlers need.
type SeasonsDependencies interface {
	PlayerSeason(ctx context.Context, playerID, season string) (*model.PlayerSeasonStats, error)
	TeamSeason(ctx context.Context, teamID, season string) (*model.TeamSeasonStats, error)
	AllPlayerSeasons(ctx context.Context) ([]model.PlayerSeasonStats, error)
	AllTeamSeasons(ctx context.Context) ([]model.TeamSeasonStats, error)
}

// SeasonsHandler serves season aggregate queries.
type SeasonsHandler struct {
	deps SeasonsDependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps SeasonsDependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// HandlePlayerSeason handles
// GET /api/v1/statistics/players/{playerId}/seasons/{season} requests.
func (h *SeasonsHandler) HandlePlayerSeason(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("playerId")
	season := r.PathValue("season")
	if playerID == "" || season == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	stats, err := h.deps.PlayerSeason(r.Context(), playerID, season)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		logger.Get().Error(r.Context(), "failed to load player season stats",
			logger.String("playerId", playerID),
			logger.String("season", season),
			logger.Error(err),
		)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleTeamSeason handles
// GET /api/v1/statistics/teams/{teamId}/seasons/{season} requests.
func (h *SeasonsHandler) HandleTeamSeason(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")
	season := r.PathValue("season")
	if teamID == "" || season == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	stats, err := h.deps.TeamSeason(r.Context(), teamID, season)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		logger.Get().Error(r.Context(), "failed to load team season stats",
			logger.String("teamId", teamID),
			logger.String("season", season),
			logger.Error(err),
		)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleAllPlayerSeasons handles
// GET /api/v1/statistics/players/season-stats requests.
func (h *SeasonsHandler) HandleAllPlayerSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.deps.AllPlayerSeasons(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "failed to list player season stats", logger.Error(err))
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

// HandleAllTeamSeasons handles GET /api/v1/statistics/teams/stats requests.
func (h *SeasonsHandler) HandleAllTeamSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.deps.AllTeamSeasons(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "failed to list team season stats", logger.Error(err))
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}
