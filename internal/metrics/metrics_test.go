package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollector_ExposesMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest(http.MethodGet, "/api/search", http.StatusOK, 12*time.Millisecond)
	c.RecordSearchResults(3)
	c.RecordStatsSnapshot()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`ngon_http_requests_total{method="GET",route="/api/search",status="200"} 1`,
		"ngon_search_results",
		"ngon_stats_snapshots_total 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNoop_IsSafe(t *testing.T) {
	t.Parallel()

	n := NewNoop()
	n.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	n.RecordSearchResults(0)
	n.RecordStatsSnapshot()
}
