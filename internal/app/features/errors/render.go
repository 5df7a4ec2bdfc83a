// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/dashboard")
	}
	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_forbidden", newPageData(r, "Access denied", msg, backURL))
}

// RenderServerError shows a generic failure page. msg must be safe to show users.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/dashboard")
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", newPageData(r, "Something went wrong", msg, backURL))
}
