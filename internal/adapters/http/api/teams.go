package api

import (
	"context"
	"net/http"

	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/logger"
)

// TeamsDependencies defines what the teams handler needs.
type TeamsDependencies interface {
	Teams(ctx context.Context) ([]model.Team, error)
}

// TeamsHandler serves the seeded team roster.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleList handles GET /api/v1/teams requests.
func (h *TeamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "failed to list teams", logger.Error(err))
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}
