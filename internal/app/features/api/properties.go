// internal/app/features/api/properties.go
package api

import (
	"context"
	"net/http"

	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/tokens"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.uber.org/zap"
)

const endpointProperties = "properties"

type listResponse struct {
	Data  []models.Property `json:"data"`
	Total int               `json:"total"`
}

// ListProperties handles GET /api/v1/properties.
//
// Response: { "data": [{"id","name","timezone"}...], "total": n }
//
// The caller's tenant scopes the list. A missing tenant or a store failure
// yields an empty list rather than an error.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	claims, ok := tokens.ClaimsFrom(r.Context())
	if !ok {
		h.writeDetail(w, endpointProperties, http.StatusUnauthorized, "Not authenticated")
		return
	}
	empty := listResponse{Data: []models.Property{}, Total: 0}

	if claims.TenantID == "" {
		h.Log.Warn("property list requested without tenant", zap.String("email", claims.Email))
		h.writeJSON(w, endpointProperties, http.StatusOK, empty)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	props, err := h.Properties.ListByTenant(ctx, claims.TenantID)
	if err != nil {
		h.Log.Error("list properties", zap.String("tenant_id", claims.TenantID), zap.Error(err))
		h.writeJSON(w, endpointProperties, http.StatusOK, empty)
		return
	}
	if props == nil {
		props = []models.Property{}
	}

	h.Log.Debug("listed properties", zap.String("tenant_id", claims.TenantID), zap.Int("count", len(props)))
	h.writeJSON(w, endpointProperties, http.StatusOK, listResponse{Data: props, Total: len(props)})
}
