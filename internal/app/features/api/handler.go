// internal/app/features/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	reservationstore "github.com/dalemusser/propertyhub/internal/app/store/reservations"
	"github.com/dalemusser/propertyhub/internal/app/system/metrics"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// PropertyStore is the subset of the property store the API reads.
type PropertyStore interface {
	ListByTenant(ctx context.Context, tenantID string) ([]models.Property, error)
	GetForTenant(ctx context.Context, tenantID, id string) (*models.Property, error)
}

// RevenueStore aggregates reservation totals.
type RevenueStore interface {
	Summary(ctx context.Context, tenantID, propertyID string) (reservationstore.Summary, error)
}

// Handler serves the JSON property API.
type Handler struct {
	Properties PropertyStore
	Revenue    RevenueStore
	Cache      *cache.Cache // nil disables summary caching
	Metrics    *metrics.Metrics
	Log        *zap.Logger
}

// NewHandler constructs a Handler. A non-positive cacheTTL disables the
// revenue summary cache. m may be nil.
func NewHandler(props PropertyStore, rev RevenueStore, cacheTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *Handler {
	h := &Handler{
		Properties: props,
		Revenue:    rev,
		Metrics:    m,
		Log:        logger,
	}
	if cacheTTL > 0 {
		h.Cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return h
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, endpoint string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("encode api response", zap.String("endpoint", endpoint), zap.Error(err))
	}
	if h.Metrics != nil {
		h.Metrics.APIRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	}
}

func (h *Handler) writeDetail(w http.ResponseWriter, endpoint string, status int, detail string) {
	h.writeJSON(w, endpoint, status, detailResponse{Detail: detail})
}
