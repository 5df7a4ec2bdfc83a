// internal/app/features/revenue/handler.go
package revenue

import (
	"errors"
	"net/http"

	"github.com/dalemusser/propertyhub/internal/app/secureapi"
	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SourceFunc builds the SummarySource that fetches on behalf of u.
type SourceFunc func(u auth.SessionUser) SummarySource

// Handler serves the revenue summary partial.
type Handler struct {
	Sources SourceFunc
	Log     *zap.Logger
}

// NewHandler constructs a new Handler.
func NewHandler(sources SourceFunc, logger *zap.Logger) *Handler {
	return &Handler{Sources: sources, Log: logger}
}

// ServeSummary renders the revenue summary for ?property_id=.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	propertyID := query.Get(r, "property_id")
	if propertyID == "" {
		http.Error(w, "property_id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load revenue summary")
	defer cancel()

	s, err := h.Sources(*u).GetRevenueSummary(ctx, propertyID)
	if err != nil && !errors.Is(err, secureapi.ErrPropertyNotFound) {
		h.Log.Warn("revenue summary fetch failed",
			zap.String("property_id", propertyID),
			zap.String("user_id", u.ID),
			zap.Error(err))
	}

	templates.RenderSnippet(w, "revenue_summary", buildView(propertyID, s, err))
}

var printer = message.NewPrinter(language.English)

func buildView(propertyID string, s secureapi.RevenueSummary, err error) summaryVM {
	vm := summaryVM{PropertyID: propertyID}
	switch {
	case errors.Is(err, secureapi.ErrPropertyNotFound):
		vm.Error = msgNotFound
		return vm
	case err != nil:
		vm.Error = msgFailed
		return vm
	}

	vm.Total = printer.Sprintf("%.2f", s.TotalRevenue)
	vm.Currency = s.Currency
	if s.ReservationsCount == 1 {
		vm.Reservations = "1 reservation"
	} else {
		vm.Reservations = printer.Sprintf("%d reservations", s.ReservationsCount)
	}
	return vm
}
