package propertystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when the property does not exist or belongs to
// another tenant. The two cases are indistinguishable to callers.
var ErrNotFound = errors.New("property not found")

var (
	errIDNeeded     = errors.New("property id is required")
	errTenantNeeded = errors.New("tenant id is required")
	errNameNeeded   = errors.New("property name is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("properties")}
}

// ListByTenant returns every property of tenantID ordered by name
// (case-insensitive), then id. An empty tenant yields an empty list.
func (s *Store) ListByTenant(ctx context.Context, tenantID string) ([]models.Property, error) {
	tenantID = normalize.ID(tenantID)
	if tenantID == "" {
		return []models.Property{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"tenant_id": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Property, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetForTenant loads one property, scoped to tenantID.
func (s *Store) GetForTenant(ctx context.Context, tenantID, id string) (*models.Property, error) {
	var p models.Property
	err := s.c.FindOne(ctx, bson.M{"_id": normalize.ID(id), "tenant_id": normalize.ID(tenantID)}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert creates or replaces the property keyed by ID.
func (s *Store) Upsert(ctx context.Context, p models.Property) (models.Property, error) {
	p.ID = normalize.ID(p.ID)
	p.TenantID = normalize.ID(p.TenantID)
	p.Name = normalize.Name(p.Name)
	switch {
	case p.ID == "":
		return models.Property{}, errIDNeeded
	case p.TenantID == "":
		return models.Property{}, errTenantNeeded
	case p.Name == "":
		return models.Property{}, errNameNeeded
	}
	p.NameCI = text.Fold(p.Name)

	update := bson.M{
		"$set": bson.M{
			"tenant_id": p.TenantID,
			"name":      p.Name,
			"name_ci":   p.NameCI,
			"timezone":  p.Timezone,
		},
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.Property
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": p.ID}, update, opts).Decode(&out); err != nil {
		return models.Property{}, err
	}
	return out, nil
}
