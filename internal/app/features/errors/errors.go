// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/propertyhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

func newPageData(r *http.Request, title, msg, backURL string) pageData {
	d := pageData{BaseVM: viewdata.NewBaseVM(r, title, backURL), Message: msg}
	d.BackURL = backURL
	return d
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_forbidden",
		newPageData(r, "Access denied", "You don't have permission to view this page.", "/dashboard"))
}
