// internal/domain/models/reservation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCurrency is reported when a property has no reservations to take a currency from.
const DefaultCurrency = "USD"

// Reservation is a single booking. TotalAmount is stored as Decimal128 so
// sums stay exact until they are rounded for display.
type Reservation struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	PropertyID  string               `bson:"property_id"`
	TenantID    string               `bson:"tenant_id"`
	TotalAmount primitive.Decimal128 `bson:"total_amount"`
	Currency    string               `bson:"currency"`
	CheckIn     time.Time            `bson:"check_in"`
	CreatedAt   time.Time            `bson:"created_at"`
}
