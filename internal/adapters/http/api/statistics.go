package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/logger"
	"github.com/okian/boxscore/pkg/metrics"
)

// StatisticsDependencies defines what the record-game handler needs.
type StatisticsDependencies interface {
	RecordGame(ctx context.Context, stats model.PlayerGameStats) (model.PlayerGameStats, error)
}

// StatisticsHandler accepts game statistics submissions.
type StatisticsHandler struct {
	deps StatisticsDependencies
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(deps StatisticsDependencies) *StatisticsHandler {
	return &StatisticsHandler{deps: deps}
}

// HandleRecordGame handles POST /api/v1/statistics/player/stats requests.
// Validation failures answer 400 with a field-to-message map; everything
// else that goes wrong answers a generic 500.
func (h *StatisticsHandler) HandleRecordGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.record_game"

	var stats model.PlayerGameStats
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}
	if stats.StatID == "" {
		stats.StatID = uuid.NewString()
	}
	if err := stats.Validate(); err != nil {
		metrics.RecordValidationError()
		if ve, ok := model.AsValidationError(err); ok {
			writeJSON(w, http.StatusBadRequest, ve.Fields)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	saved, err := h.deps.RecordGame(r.Context(), stats)
	if err != nil {
		logger.Get().Error(r.Context(), "failed to record game statistics",
			logger.String("playerId", stats.PlayerID),
			logger.String("gameId", stats.GameID),
			logger.Error(err),
		)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
