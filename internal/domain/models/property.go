// internal/domain/models/property.go
package models

import (
	"time"
)

// Property is a rentable unit owned by one tenant.
//
// IDs are opaque strings (e.g. "prop-001") rather than ObjectIDs because
// they are issued by the upstream channel manager.
type Property struct {
	ID        string    `bson:"_id" json:"id"`
	TenantID  string    `bson:"tenant_id" json:"-"`
	Name      string    `bson:"name" json:"name"`
	NameCI    string    `bson:"name_ci" json:"-"` // ← always stored
	Timezone  string    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
}
