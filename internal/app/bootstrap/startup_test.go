package bootstrap

import (
	"testing"

	propertystore "github.com/dalemusser/propertyhub/internal/app/store/properties"
	reservationstore "github.com/dalemusser/propertyhub/internal/app/store/reservations"
	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func demoConfig() AppConfig {
	return AppConfig{
		SeedDemo:     true,
		DemoEmail:    "Demo@Example.com",
		DemoPassword: "secret-pass",
		DemoTenantID: "tenant-demo",
	}
}

func TestSeedDemo_CreatesData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := demoConfig()
	if err := seedDemo(ctx, db, cfg, testLogger()); err != nil {
		t.Fatalf("seedDemo failed: %v", err)
	}

	props, err := propertystore.New(db).ListByTenant(ctx, cfg.DemoTenantID)
	if err != nil {
		t.Fatalf("ListByTenant: %v", err)
	}
	if len(props) != len(demoProperties) {
		t.Fatalf("expected %d properties, got %d", len(demoProperties), len(props))
	}
	if props[0].Name != "Beach House Alpha" {
		t.Errorf("expected first property Beach House Alpha, got %q", props[0].Name)
	}

	sum, err := reservationstore.New(db).Summary(ctx, cfg.DemoTenantID, "prop-001")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Count != 3 {
		t.Errorf("expected 3 reservations for prop-001, got %d", sum.Count)
	}
	if sum.Total != 4330.5 {
		t.Errorf("expected total 4330.5, got %v", sum.Total)
	}

	u, err := userstore.New(db).GetByEmail(ctx, "demo@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.TenantID != cfg.DemoTenantID {
		t.Errorf("expected tenant %q, got %q", cfg.DemoTenantID, u.TenantID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cfg.DemoPassword)); err != nil {
		t.Errorf("demo password does not verify: %v", err)
	}
}

func TestSeedDemo_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := demoConfig()
	for i := 0; i < 2; i++ {
		if err := seedDemo(ctx, db, cfg, testLogger()); err != nil {
			t.Fatalf("seedDemo run %d failed: %v", i+1, err)
		}
	}

	want := 0
	for _, dp := range demoProperties {
		want += len(dp.amounts)
	}
	n, err := reservationstore.New(db).Count(ctx, cfg.DemoTenantID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != int64(want) {
		t.Errorf("expected %d reservations after two seeds, got %d", want, n)
	}

	users, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 1 {
		t.Errorf("expected 1 user, got %d", users)
	}
}
