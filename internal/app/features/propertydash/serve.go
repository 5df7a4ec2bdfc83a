// internal/app/features/propertydash/serve.go
package propertydash

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeDashboard renders the dashboard page with the panel in its loading
// state; the panel then fetches itself via ServePanel.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, State{Loading: true}); err != nil {
		h.Log.Error("render loading panel", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	templates.Render(w, r, "propertydash_view", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/dashboard"),
		Panel:  template.HTML(buf.String()),
	})
}

// ServePanel mounts a Dashboard for this request, runs its single fetch,
// and renders the settled panel. ?property= picks a non-default selection.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load properties")
	defer cancel()

	d := New(h.Sources(*u), h.Log.With(zap.String("user_id", u.ID)))
	defer d.Close()

	if err := d.Init(ctx); err != nil {
		h.Log.Error("dashboard init", zap.Error(err))
		h.writePanel(w, State{Err: ErrorMessage})
		return
	}
	h.recordFetch(d.State())

	if want := query.Get(r, "property"); want != "" {
		if err := d.Select(want); err != nil {
			level := zap.DebugLevel
			if errors.Is(err, ErrUnknownProperty) {
				level = zap.InfoLevel
			}
			h.Log.Check(level, "ignoring requested property").Write(zap.String("property", want), zap.Error(err))
		}
	}

	h.writePanel(w, d.State())
}

// failedPanel is written when the panel template itself fails. HTMX only
// swaps 2xx responses, so failures are still sent with 200.
const failedPanel = `<div id="property-dashboard" class="p-6"><p class="text-red-800" role="alert">` + ErrorMessage + `</p></div>`

func (h *Handler) writePanel(w http.ResponseWriter, s State) {
	var buf bytes.Buffer
	if err := Render(&buf, s); err != nil {
		h.Log.Error("render panel", zap.Error(err))
		buf.Reset()
		buf.WriteString(failedPanel)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
