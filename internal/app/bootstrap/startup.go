// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	shared "github.com/dalemusser/propertyhub/internal/app/features/shared/views"
	propertystore "github.com/dalemusser/propertyhub/internal/app/store/properties"
	reservationstore "github.com/dalemusser/propertyhub/internal/app/store/reservations"
	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	shared.LoadSharedTemplates()

	// api_timeout bounds the dashboard and revenue calls to the API, which
	// share the Short budget with single-document reads.
	timeouts.Configure(timeouts.Config{Short: appCfg.APITimeout})

	if !appCfg.SeedDemo {
		return nil
	}
	if err := seedDemo(ctx, deps.MongoDatabase, appCfg, logger); err != nil {
		logger.Error("demo seed failed", zap.Error(err))
		return err
	}
	return nil
}

type demoProperty struct {
	id, name, tz string
	amounts      []string
}

var demoProperties = []demoProperty{
	{"prop-001", "Beach House Alpha", "America/New_York", []string{"1250.00", "980.50", "2100.00"}},
	{"prop-002", "City Apartment Downtown", "America/Chicago", []string{"450.00", "525.25"}},
	{"prop-003", "Country Villa Estate", "Europe/Paris", []string{"3200.00"}},
	{"prop-004", "Lakeside Cottage", "America/Denver", []string{"640.00", "610.00", "700.75", "590.00"}},
	{"prop-005", "Urban Loft Modern", "America/Los_Angeles", nil},
}

// seedDemo upserts the demo properties and user. Reservations are only
// inserted while the tenant has none, so restarts do not double the revenue.
func seedDemo(ctx context.Context, db *mongo.Database, appCfg AppConfig, logger *zap.Logger) error {
	tenant := appCfg.DemoTenantID
	props := propertystore.New(db)
	res := reservationstore.New(db)
	users := userstore.New(db)

	for _, dp := range demoProperties {
		if _, err := props.Upsert(ctx, models.Property{ID: dp.id, TenantID: tenant, Name: dp.name, Timezone: dp.tz}); err != nil {
			return fmt.Errorf("seed property %s: %w", dp.id, err)
		}
	}

	existing, err := res.Count(ctx, tenant)
	if err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if existing == 0 {
		checkIn := time.Now().UTC().Truncate(24 * time.Hour)
		for _, dp := range demoProperties {
			for i, amt := range dp.amounts {
				d, err := primitive.ParseDecimal128(amt)
				if err != nil {
					return fmt.Errorf("seed amount %q: %w", amt, err)
				}
				r := models.Reservation{
					PropertyID:  dp.id,
					TenantID:    tenant,
					TotalAmount: d,
					Currency:    models.DefaultCurrency,
					CheckIn:     checkIn.AddDate(0, 0, -7*(i+1)),
				}
				if _, err := res.Insert(ctx, r); err != nil {
					return fmt.Errorf("seed reservation for %s: %w", dp.id, err)
				}
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	if _, err := users.Upsert(ctx, models.User{
		FullName:     "Demo Manager",
		Email:        appCfg.DemoEmail,
		PasswordHash: string(hash),
		TenantID:     tenant,
		Role:         "manager",
	}); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	logger.Info("demo data seeded",
		zap.String("tenant_id", tenant),
		zap.Int("properties", len(demoProperties)),
		zap.Bool("reservations_inserted", existing == 0))
	return nil
}
