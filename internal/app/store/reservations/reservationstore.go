package reservationstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errBadRef = errors.New("reservation needs property_id and tenant_id")

// Summary is the unrounded revenue total for one property.
type Summary struct {
	Total    float64
	Count    int64
	Currency string
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reservations")}
}

// Insert stores a reservation, assigning ID and CreatedAt when unset.
func (s *Store) Insert(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	r.PropertyID = normalize.ID(r.PropertyID)
	r.TenantID = normalize.ID(r.TenantID)
	if r.PropertyID == "" || r.TenantID == "" {
		return models.Reservation{}, errBadRef
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.Currency = normalize.Currency(r.Currency)
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

// Count returns the number of reservations held by tenantID.
func (s *Store) Count(ctx context.Context, tenantID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"tenant_id": normalize.ID(tenantID)})
}

// Summary sums total_amount over the reservations of one property.
// A property with no reservations yields a zero Summary in DefaultCurrency.
func (s *Store) Summary(ctx context.Context, tenantID, propertyID string) (Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"tenant_id":   normalize.ID(tenantID),
			"property_id": normalize.ID(propertyID),
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"total":    bson.M{"$sum": "$total_amount"},
			"count":    bson.M{"$sum": 1},
			"currency": bson.M{"$first": "$currency"},
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return Summary{}, err
	}
	defer cur.Close(ctx)

	out := Summary{Currency: models.DefaultCurrency}
	if !cur.Next(ctx) {
		return out, cur.Err()
	}

	var row struct {
		Total    primitive.Decimal128 `bson:"total"`
		Count    int64                `bson:"count"`
		Currency string               `bson:"currency"`
	}
	if err := cur.Decode(&row); err != nil {
		return Summary{}, err
	}

	total, err := decimalToFloat(row.Total)
	if err != nil {
		return Summary{}, err
	}
	out.Total = total
	out.Count = row.Count
	if c := normalize.Currency(row.Currency); c != "" {
		out.Currency = c
	}
	return out, nil
}

func decimalToFloat(d primitive.Decimal128) (float64, error) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("decode revenue total %q: %w", d.String(), err)
	}
	return f, nil
}
