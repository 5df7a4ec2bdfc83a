// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	apifeature "github.com/dalemusser/propertyhub/internal/app/features/api"
	errorsfeature "github.com/dalemusser/propertyhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/propertyhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/propertyhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/propertyhub/internal/app/features/logout"
	"github.com/dalemusser/propertyhub/internal/app/features/propertydash"
	"github.com/dalemusser/propertyhub/internal/app/features/revenue"
	"github.com/dalemusser/propertyhub/internal/app/secureapi"
	propertystore "github.com/dalemusser/propertyhub/internal/app/store/properties"
	reservationstore "github.com/dalemusser/propertyhub/internal/app/store/reservations"
	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/dalemusser/propertyhub/internal/app/system/metrics"
	"github.com/dalemusser/propertyhub/internal/app/system/ratelimit"
	"github.com/dalemusser/propertyhub/internal/app/system/tokens"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed.
//
// PropertyHub serves two surfaces from one router: the signed-in HTML
// dashboard (session cookie auth) and the JSON property API under /api/v1
// (bearer token auth). The dashboard reaches the API over HTTP through
// secureapi, presenting a token minted for the session user.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	issuer, err := tokens.NewIssuer(appCfg.TokenSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token issuer init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	m := metrics.New()
	errLog := errorsfeature.NewErrorLogger(logger)
	api := newAPIClients(appCfg, issuer, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", m.Handler())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusSeeOther)
	})

	// Authentication
	users := userstore.New(deps.MongoDatabase)
	loginHandler := loginfeature.NewHandler(users, sessionMgr, errLog, logger)
	loginHandler.Limiter = ratelimit.NewLoginLimiter()
	r.With(csrfProtect(appCfg.SessionKey, secure)).Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)

	// Dashboard. The revenue partial is mounted first so its static prefix
	// wins over the dashboard's catch-all.
	revenueHandler := revenue.NewHandler(api.summarySource, logger)
	r.Mount("/dashboard/revenue", revenue.Routes(revenueHandler, sessionMgr))

	dashHandler := propertydash.NewHandler(api.propertySource, m, logger)
	r.Mount("/dashboard", propertydash.Routes(dashHandler, sessionMgr))

	// Property API
	apiHandler := apifeature.NewHandler(
		propertystore.New(deps.MongoDatabase),
		reservationstore.New(deps.MongoDatabase),
		appCfg.SummaryCacheTTL, m, logger)
	r.Mount("/api/v1", apifeature.Routes(apiHandler, issuer, logger))

	return r, nil
}

// csrfProtect guards form posts with gorilla/csrf. The token key is derived
// from the session key so both rotate together.
func csrfProtect(sessionKey string, secure bool) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("propertyhub-csrf:" + sessionKey))
	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		// Local dev over plain http: skip the TLS-only Referer check.
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// apiClients builds per-user secureapi clients sharing one http.Client.
type apiClients struct {
	baseURL string
	http    *http.Client
	issuer  *tokens.Issuer
	log     *zap.Logger
}

func newAPIClients(appCfg AppConfig, issuer *tokens.Issuer, logger *zap.Logger) *apiClients {
	return &apiClients{
		baseURL: appCfg.APIBaseURL,
		http:    &http.Client{Timeout: appCfg.APITimeout},
		issuer:  issuer,
		log:     logger,
	}
}

func (a *apiClients) client(u auth.SessionUser) *secureapi.Client {
	return &secureapi.Client{
		BaseURL: a.baseURL,
		HTTP:    a.http,
		Tokens:  a.issuer.SourceFor(u),
		Log:     a.log.With(zap.String("tenant_id", u.TenantID)),
	}
}

func (a *apiClients) propertySource(u auth.SessionUser) propertydash.PropertySource {
	return a.client(u)
}

func (a *apiClients) summarySource(u auth.SessionUser) revenue.SummarySource {
	return a.client(u)
}
