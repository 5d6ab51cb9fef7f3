package api

import (
	"context"
	"net/http"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/logger"
)

// PlayersDependencies defines what the players handler needs.
type PlayersDependencies interface {
	Players(ctx context.Context) ([]model.Player, error)
}

// PlayersHandler serves the seeded player roster.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleList handles GET /api/v1/players requests.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	players, err := h.deps.Players(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "failed to list players", logger.Error(err))
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, players)
}
