// internal/app/features/propertydash/handler.go
package propertydash

import (
	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/dalemusser/propertyhub/internal/app/system/metrics"
	"go.uber.org/zap"
)

// SourceFunc builds the PropertySource that fetches on behalf of u.
type SourceFunc func(u auth.SessionUser) PropertySource

// Handler is the shared dependency container for the property dashboard.
type Handler struct {
	Sources SourceFunc
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

// NewHandler constructs a new Handler. m may be nil.
func NewHandler(sources SourceFunc, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Sources: sources,
		Metrics: m,
		Log:     logger,
	}
}

func (h *Handler) recordFetch(s State) {
	if h.Metrics == nil {
		return
	}
	outcome := metrics.OutcomeOK
	switch s.Branch() {
	case BranchError:
		outcome = metrics.OutcomeError
	case BranchEmpty:
		outcome = metrics.OutcomeEmpty
	}
	h.Metrics.DashboardFetches.WithLabelValues(outcome).Inc()
}
