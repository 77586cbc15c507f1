package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/internal/transport/middleware"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	GetStats(ctx context.Context, includeUserCount bool) (*domain.Stats, error)
}

// StatsHandler serves the dashboard stats endpoint.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// statsResponse includes numberOfUsers only when the viewer was privileged
// enough to receive it; the key is present even when the count is zero.
type statsResponse struct {
	NumberOfCourses  int              `json:"numberOfCourses"`
	NumberOfContents int              `json:"numberOfContents"`
	LatestCourses    []courseResponse `json:"latestCourses"`
	NumberOfUsers    *int             `json:"numberOfUsers,omitempty"`
}

// Get handles GET /api/stats. The user count is an admin-only field; the
// role check collapses to a boolean here so the service stays policy-free.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context(), middleware.IsAdmin(r.Context()))
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	resp := statsResponse{
		NumberOfCourses:  stats.NumberOfCourses,
		NumberOfContents: stats.NumberOfContents,
		LatestCourses:    make([]courseResponse, 0, len(stats.LatestCourses)),
		NumberOfUsers:    stats.NumberOfUsers,
	}
	for _, c := range stats.LatestCourses {
		resp.LatestCourses = append(resp.LatestCourses, toCourse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}
