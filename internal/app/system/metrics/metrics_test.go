package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/system/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDashboardFetches(t *testing.T) {
	m := metrics.New()
	m.DashboardFetches.WithLabelValues(metrics.OutcomeOK).Inc()
	m.DashboardFetches.WithLabelValues(metrics.OutcomeOK).Inc()
	m.DashboardFetches.WithLabelValues(metrics.OutcomeError).Inc()

	if got := testutil.ToFloat64(m.DashboardFetches.WithLabelValues(metrics.OutcomeOK)); got != 2 {
		t.Errorf("ok fetches: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.DashboardFetches.WithLabelValues(metrics.OutcomeError)); got != 1 {
		t.Errorf("error fetches: got %v, want 1", got)
	}
}

func TestHandler_Exposes(t *testing.T) {
	m := metrics.New()
	m.APIRequests.WithLabelValues("properties", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `propertyhub_api_requests_total{code="200",endpoint="properties"} 1`) {
		t.Errorf("expected api counter in exposition, got:\n%s", body)
	}
}
