// internal/app/features/api/routes.go
package api

import (
	"github.com/dalemusser/propertyhub/internal/app/system/tokens"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes returns the router for /api/v1. Every route requires a bearer token.
func Routes(h *Handler, issuer *tokens.Issuer, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(tokens.Middleware(issuer, logger))

	r.Get("/properties", h.ListProperties)
	r.Get("/dashboard/summary", h.DashboardSummary)

	return r
}
