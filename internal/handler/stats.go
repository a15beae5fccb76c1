package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ngonapp/ngon/internal/metrics"
	"github.com/ngonapp/ngon/internal/service"
)

// StatsCollector aggregates collection counts.
type StatsCollector interface {
	Collect(ctx context.Context) (*service.Stats, error)
}

// StatsHandler handles the admin statistics endpoint.
type StatsHandler struct {
	svc      StatsCollector
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc StatsCollector, logger *slog.Logger, recorder metrics.Recorder) *StatsHandler {
	return &StatsHandler{
		svc:      svc,
		logger:   logger,
		recorder: recorder,
	}
}

// StatsResponse is the success envelope for statistics.
type StatsResponse struct {
	Status string         `json:"status"`
	Data   *service.Stats `json:"data"`
}

// Stats handles GET /api/admin/stats.
// Any failing count fails the whole call; partial counts are never surfaced.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Collect(r.Context())
	if err != nil {
		h.logger.Error("failed to collect statistics", slog.String("error", err.Error()))
		writeStatusError(w, http.StatusInternalServerError, "failed to collect statistics")
		return
	}

	h.recorder.RecordStatsSnapshot()

	writeJSON(w, http.StatusOK, StatsResponse{
		Status: "success",
		Data:   stats,
	})
}
