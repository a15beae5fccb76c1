package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ngonapp/ngon/internal/metrics"
	"github.com/ngonapp/ngon/internal/service"
)

// Searcher runs a free-text search across posts and recipes.
type Searcher interface {
	Search(ctx context.Context, q string) (*service.SearchResult, error)
}

// SearchHandler handles HTTP requests for the search endpoint.
type SearchHandler struct {
	svc      Searcher
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc Searcher, logger *slog.Logger, recorder metrics.Recorder) *SearchHandler {
	return &SearchHandler{
		svc:      svc,
		logger:   logger,
		recorder: recorder,
	}
}

// SearchResponse is the success envelope for search.
type SearchResponse struct {
	Success bool  `json:"success"`
	Total   int   `json:"total"`
	Data    []any `json:"data"`
}

// searchErrorResponse is the failure envelope for search.
type searchErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Search handles GET /api/search?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	result, err := h.svc.Search(r.Context(), q)
	if err != nil {
		h.logger.Error("search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, searchErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	h.recorder.RecordSearchResults(result.Total)

	writeJSON(w, http.StatusOK, SearchResponse{
		Success: true,
		Total:   result.Total,
		Data:    result.Items,
	})
}
