// internal/app/features/propertydash/routes.go
package propertydash

import (
	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the property dashboard feature.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("manager", "owner"))

		pr.Get("/", h.ServeDashboard)

		// HTMX endpoint for the settled panel
		pr.Get("/panel", h.ServePanel)
	})

	return r
}
