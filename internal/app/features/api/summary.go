// internal/app/features/api/summary.go
package api

import (
	"context"
	"errors"
	"math"
	"net/http"

	propertystore "github.com/dalemusser/propertyhub/internal/app/store/properties"
	reservationstore "github.com/dalemusser/propertyhub/internal/app/store/reservations"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/tokens"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const endpointSummary = "summary"

// defaultTenant is the placeholder tenant of unprovisioned accounts.
const defaultTenant = "default_tenant"

type summaryResponse struct {
	PropertyID        string  `json:"property_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	Currency          string  `json:"currency"`
	ReservationsCount int64   `json:"reservations_count"`
}

// DashboardSummary handles GET /api/v1/dashboard/summary?property_id=.
//
// The property must belong to the caller's tenant; otherwise 404.
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	claims, ok := tokens.ClaimsFrom(r.Context())
	if !ok {
		h.writeDetail(w, endpointSummary, http.StatusUnauthorized, "Not authenticated")
		return
	}
	propertyID := query.Get(r, "property_id")
	if propertyID == "" {
		h.writeDetail(w, endpointSummary, http.StatusUnprocessableEntity, "property_id is required")
		return
	}
	tenantID := claims.TenantID
	if tenantID == "" || tenantID == defaultTenant {
		h.Log.Error("invalid tenant for summary", zap.String("tenant_id", tenantID), zap.String("email", claims.Email))
		h.writeDetail(w, endpointSummary, http.StatusForbidden, "No valid tenant context")
		return
	}
	log := h.Log.With(zap.String("tenant_id", tenantID), zap.String("property_id", propertyID))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Properties.GetForTenant(ctx, tenantID, propertyID); err != nil {
		if errors.Is(err, propertystore.ErrNotFound) {
			log.Warn("property not found or access denied")
			h.writeDetail(w, endpointSummary, http.StatusNotFound, "Property not found")
			return
		}
		log.Error("verify property ownership", zap.Error(err))
		h.writeDetail(w, endpointSummary, http.StatusInternalServerError, "Error verifying property access")
		return
	}

	sum, err := h.summary(ctx, tenantID, propertyID)
	if err != nil {
		log.Error("fetch revenue", zap.Error(err))
		h.writeDetail(w, endpointSummary, http.StatusInternalServerError, "Error fetching revenue data")
		return
	}

	currency := sum.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	h.writeJSON(w, endpointSummary, http.StatusOK, summaryResponse{
		PropertyID:        propertyID,
		TotalRevenue:      roundCents(sum.Total),
		Currency:          currency,
		ReservationsCount: sum.Count,
	})
}

// summary reads through the cache, keyed by tenant and property so that
// tenants never share entries.
func (h *Handler) summary(ctx context.Context, tenantID, propertyID string) (reservationstore.Summary, error) {
	key := tenantID + ":" + propertyID
	if h.Cache != nil {
		if v, ok := h.Cache.Get(key); ok {
			h.countCache("hit")
			return v.(reservationstore.Summary), nil
		}
		h.countCache("miss")
	}

	sum, err := h.Revenue.Summary(ctx, tenantID, propertyID)
	if err != nil {
		return reservationstore.Summary{}, err
	}
	if h.Cache != nil {
		h.Cache.Set(key, sum, cache.DefaultExpiration)
	}
	return sum, nil
}

func (h *Handler) countCache(result string) {
	if h.Metrics != nil {
		h.Metrics.SummaryCacheHits.WithLabelValues(result).Inc()
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
