// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a property manager account. Every user belongs to exactly one tenant;
// an empty TenantID is tolerated on read and means "no properties".
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	Email        string             `bson:"email" json:"email"` // lowercase
	PasswordHash string             `bson:"password_hash" json:"-"`
	TenantID     string             `bson:"tenant_id" json:"tenant_id"`
	Role         string             `bson:"role" json:"role"` // owner | manager
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
