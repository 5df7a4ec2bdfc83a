// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/dalemusser/propertyhub/internal/app/system/limits"
	"github.com/dalemusser/propertyhub/internal/app/system/ratelimit"
	"github.com/dalemusser/propertyhub/internal/app/system/timeouts"
	"github.com/dalemusser/propertyhub/internal/app/system/viewdata"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const msgBadCredentials = "Invalid email or password."

// UserFinder looks up accounts by email.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Handler struct {
	Users      UserFinder
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter // nil disables throttling
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

func NewHandler(users UserFinder, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// ServeLogin renders the sign-in form.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, urlutil.SafeReturn(query.Get(r, "return"), "", "/dashboard"), http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "login_form", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/dashboard"),
		ReturnURL: query.Get(r, "return"),
	})
}

// HandleLoginPost checks email + password and starts a session.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxLoginFormSize)
	if err := r.ParseForm(); err != nil {
		h.renderFormWithError(w, r, "Bad request.", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))
	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email)
		return
	}
	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, email); !ok {
			h.Log.Warn("login: rate limited", zap.String("ip", ratelimit.ClientIP(r)), zap.String("email", email))
			w.WriteHeader(http.StatusTooManyRequests)
			h.renderFormWithError(w, r, reason, email)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			h.Log.Info("login: unknown email", zap.String("email", email))
			h.renderFormWithError(w, r, msgBadCredentials, email)
			return
		}
		h.ErrLog.LogServerError(w, r, "login: user lookup failed", err, "A database error occurred.", "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		h.Log.Info("login: bad password", zap.String("user_id", u.ID.Hex()))
		h.renderFormWithError(w, r, msgBadCredentials, email)
		return
	}
	if u.Status == "disabled" {
		h.Log.Info("login: disabled account", zap.String("user_id", u.ID.Hex()))
		h.renderFormWithError(w, r, "This account is disabled.", email)
		return
	}

	err = h.SessionMgr.SignIn(w, r, auth.SessionUser{
		ID:       u.ID.Hex(),
		Name:     u.FullName,
		LoginID:  u.Email,
		Role:     u.Role,
		TenantID: u.TenantID,
	})
	if err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		h.renderFormWithError(w, r, "Unable to create session. Please try again.", email)
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(email)
	}
	h.Log.Info("login success", zap.String("user_id", u.ID.Hex()), zap.String("tenant_id", u.TenantID))
	dest := urlutil.SafeReturn(ret, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	templates.Render(w, r, "login_form", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/dashboard"),
		Error:     msg,
		Email:     email,
		ReturnURL: strings.TrimSpace(r.FormValue("return")),
	})
}
