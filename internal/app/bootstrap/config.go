// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/tokens"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for PropertyHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: PROPERTYHUB_MONGO_URI, PROPERTYHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "property_hub", Desc: "MongoDB database name"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "propertyhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "12h", Desc: "Session cookie lifetime"},

	// API access tokens
	{Name: "token_secret", Default: "dev-only-token-secret-change-me-0123456789", Desc: "HS256 secret for API access tokens (>= 32 chars in production)"},
	{Name: "token_ttl", Default: "5m", Desc: "Access token lifetime"},

	// Property API
	{Name: "api_base_url", Default: "http://localhost:8080/api/v1", Desc: "Base URL of the property API the dashboard calls"},
	{Name: "api_timeout", Default: "10s", Desc: "HTTP timeout for property API calls"},
	{Name: "summary_cache_ttl", Default: "5m", Desc: "Revenue summary cache lifetime (0 disables)"},

	// Demo data
	{Name: "seed_demo", Default: false, Desc: "Seed demo properties, reservations and a demo user on startup"},
	{Name: "demo_email", Default: "demo@propertyhub.local", Desc: "Demo user email"},
	{Name: "demo_password", Default: "demo-password", Desc: "Demo user password"},
	{Name: "demo_tenant_id", Default: "tenant-a", Desc: "Tenant that owns the demo data"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig reads .env files, config files,
// PROPERTYHUB_* environment variables and command-line flags, merged with
// precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROPERTYHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 12*time.Hour),

		TokenSecret: appValues.String("token_secret"),
		TokenTTL:    appValues.Duration("token_ttl", 5*time.Minute),

		APIBaseURL:      appValues.String("api_base_url"),
		APITimeout:      appValues.Duration("api_timeout", 10*time.Second),
		SummaryCacheTTL: appValues.Duration("summary_cache_ttl", 5*time.Minute),

		SeedDemo:     appValues.Bool("seed_demo"),
		DemoEmail:    appValues.String("demo_email"),
		DemoPassword: appValues.String("demo_password"),
		DemoTenantID: appValues.String("demo_tenant_id"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// PropertyHub checks the MongoDB URI format, the property API URL, and in
// production the strength of the token secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if err := validateAPIBaseURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid api_base_url", zap.Error(err))
		return err
	}
	if appCfg.TokenSecret == "" {
		return fmt.Errorf("token_secret is required")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && len(appCfg.TokenSecret) < tokens.MinSecretLen {
		return fmt.Errorf("token_secret must be at least %d characters in production", tokens.MinSecretLen)
	}
	if appCfg.SeedDemo && (appCfg.DemoEmail == "" || appCfg.DemoPassword == "" || appCfg.DemoTenantID == "") {
		return fmt.Errorf("seed_demo requires demo_email, demo_password and demo_tenant_id")
	}
	return nil
}

func validateAPIBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid api_base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_base_url %q: want an absolute http(s) URL", raw)
	}
	return nil
}
