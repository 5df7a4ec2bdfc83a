package tokens_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/dalemusser/propertyhub/internal/app/system/tokens"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testSecret = "test-token-secret-must-be-32-chars!!"

func newIssuer(t *testing.T) *tokens.Issuer {
	t.Helper()
	iss, err := tokens.NewIssuer(testSecret, time.Minute)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return iss
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := tokens.NewIssuer("", time.Minute)
	if !errors.Is(err, tokens.ErrEmptySecret) {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := newIssuer(t)

	raw, err := iss.Issue("user-1", "pat@example.com", "tenant-a")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	c, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.Subject != "user-1" || c.Email != "pat@example.com" || c.TenantID != "tenant-a" {
		t.Errorf("unexpected claims: %+v", c)
	}
	if c.ID == "" {
		t.Error("expected jti to be set")
	}
	if c.ExpiresAt.Before(time.Now()) {
		t.Errorf("expected future expiry, got %v", c.ExpiresAt)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, _ := newIssuer(t).Issue("user-1", "pat@example.com", "tenant-a")

	other, _ := tokens.NewIssuer("another-secret-that-is-32-chars-long", time.Minute)
	if _, err := other.Verify(raw); !errors.Is(err, tokens.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": tokens.TokenIssuer,
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := newIssuer(t).Verify(raw); !errors.Is(err, tokens.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "someone-else",
		"sub": "user-1",
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(testSecret))

	if _, err := newIssuer(t).Verify(raw); err == nil {
		t.Error("expected error for foreign issuer")
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": tokens.TokenIssuer,
		"sub": "user-1",
	}).SignedString([]byte(testSecret))

	if _, err := newIssuer(t).Verify(raw); err == nil {
		t.Error("expected error for token without exp")
	}
}

func TestSource_Token(t *testing.T) {
	iss := newIssuer(t)
	src := iss.SourceFor(auth.SessionUser{ID: "user-9", LoginID: "lee@example.com", TenantID: "tenant-b"})

	raw, err := src.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	c, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.TenantID != "tenant-b" || c.Subject != "user-9" {
		t.Errorf("unexpected claims: %+v", c)
	}
}

func TestSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newIssuer(t).SourceFor(auth.SessionUser{}).Token(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestMiddleware(t *testing.T) {
	iss := newIssuer(t)
	valid, _ := iss.Issue("user-1", "pat@example.com", "tenant-a")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got tokens.Claims
			h := tokens.Middleware(iss, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = tokens.ClaimsFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest("GET", "/api/v1/properties", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status: got %d, want %d", rec.Code, tc.want)
			}
			if tc.want == http.StatusOK && got.TenantID != "tenant-a" {
				t.Errorf("expected claims in context, got %+v", got)
			}
			if tc.want == http.StatusUnauthorized {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body["detail"] != "Not authenticated" {
					t.Errorf("detail: got %q", body["detail"])
				}
			}
		})
	}
}
