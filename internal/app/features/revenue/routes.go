// internal/app/features/revenue/routes.go
package revenue

import (
	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the revenue summary partial.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole("manager", "owner"))
	r.Get("/", h.ServeSummary)
	return r
}
