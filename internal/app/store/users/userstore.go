package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

var (
	errEmailNeeded = errors.New("email is required")
	errHashNeeded  = errors.New("password hash is required")
	errBadRole     = errors.New(`role must be "owner"|"manager"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmail looks up a user by case-insensitive email. Returns ErrNotFound if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Upsert creates or replaces the user keyed by email. The stored
// ObjectID and CreatedAt of an existing user are kept.
func (s *Store) Upsert(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.FullName = normalize.Name(u.FullName)
	u.Role = normalize.Role(u.Role)
	u.TenantID = normalize.ID(u.TenantID)
	if u.Email == "" {
		return models.User{}, errEmailNeeded
	}
	if u.PasswordHash == "" {
		return models.User{}, errHashNeeded
	}
	if u.Role == "" {
		u.Role = "manager"
	}
	switch u.Role {
	case "owner", "manager":
	default:
		return models.User{}, errBadRole
	}
	if u.Status == "" {
		u.Status = "active"
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"full_name":     u.FullName,
			"password_hash": u.PasswordHash,
			"tenant_id":     u.TenantID,
			"role":          u.Role,
			"status":        u.Status,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.User
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"email": u.Email}, update, opts).Decode(&out); err != nil {
		return models.User{}, err
	}
	return out, nil
}
