package testutil

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProperty inserts a property for tenantID.
func (f *Fixtures) CreateProperty(ctx context.Context, id, tenantID, name, tz string) models.Property {
	f.t.Helper()

	p := models.Property{
		ID:        id,
		TenantID:  tenantID,
		Name:      name,
		NameCI:    text.Fold(name),
		Timezone:  tz,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("properties").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test property: %v", err)
	}
	return p
}

// CreateReservation inserts a reservation; amount is a decimal string such as "120.50".
func (f *Fixtures) CreateReservation(ctx context.Context, propertyID, tenantID, amount, currency string) models.Reservation {
	f.t.Helper()

	dec, err := primitive.ParseDecimal128(amount)
	if err != nil {
		f.t.Fatalf("bad reservation amount %q: %v", amount, err)
	}
	now := time.Now().UTC()
	res := models.Reservation{
		ID:          primitive.NewObjectID(),
		PropertyID:  propertyID,
		TenantID:    tenantID,
		TotalAmount: dec,
		Currency:    currency,
		CheckIn:     now,
		CreatedAt:   now,
	}
	if _, err := f.db.Collection("reservations").InsertOne(ctx, res); err != nil {
		f.t.Fatalf("failed to create test reservation: %v", err)
	}
	return res
}

// CreateUser inserts a user whose password is password.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, password, tenantID string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		TenantID:     tenantID,
		Role:         "manager",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}
