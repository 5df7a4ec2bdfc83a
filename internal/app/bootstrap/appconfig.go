// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers framework-level settings (ports, TLS, logging,
// request limits). Everything PropertyHub needs beyond that lives here and
// is passed to every lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: propertyhub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime

	// Access tokens the dashboard presents to /api/v1
	TokenSecret string
	TokenTTL    time.Duration

	// Property API the dashboard calls. Usually this same process.
	APIBaseURL string
	APITimeout time.Duration

	// Revenue summary cache lifetime; 0 disables the cache.
	SummaryCacheTTL time.Duration

	// Demo data
	SeedDemo     bool
	DemoEmail    string
	DemoPassword string
	DemoTenantID string
}
