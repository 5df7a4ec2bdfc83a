// internal/app/features/revenue/types.go
package revenue

import (
	"context"

	"github.com/dalemusser/propertyhub/internal/app/secureapi"
)

// SummarySource fetches the revenue summary of one property.
type SummarySource interface {
	GetRevenueSummary(ctx context.Context, propertyID string) (secureapi.RevenueSummary, error)
}

const (
	msgNotFound = "Property not found"
	msgFailed   = "Error loading revenue data"
)

// summaryVM is the view model for the revenue_summary snippet.
type summaryVM struct {
	PropertyID   string
	Error        string
	Total        string
	Currency     string
	Reservations string
}
