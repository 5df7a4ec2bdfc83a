// Package tokens issues and verifies the short-lived bearer tokens that the
// dashboard presents to the property API.
//
// Tokens are HS256 JWTs carrying the user's tenant. The dashboard mints one
// per outbound call from the signed-in session; the API verifies it in
// Middleware and reads the tenant from ClaimsFrom.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer is the "iss" claim on every token this service signs.
const TokenIssuer = "propertyhub"

// MinSecretLen is the shortest signing secret accepted in production.
const MinSecretLen = 32

var (
	ErrEmptySecret  = errors.New("token secret is empty")
	ErrInvalidToken = errors.New("invalid access token")
)

// Claims is the verified content of an access token.
type Claims struct {
	ID        string // jti
	Subject   string // users._id
	Email     string
	TenantID  string
	ExpiresAt time.Time
}

// Issuer signs and verifies access tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer. ttl <= 0 falls back to five minutes.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given subject.
func (i *Issuer) Issue(subject, email, tenantID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":       TokenIssuer,
		"sub":       subject,
		"email":     email,
		"tenant_id": tenantID,
		"iat":       now.Unix(),
		"exp":       now.Add(i.ttl).Unix(),
		"jti":       uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, signing method, issuer and expiry.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	c := Claims{
		ID:       stringClaim(mc, "jti"),
		Subject:  stringClaim(mc, "sub"),
		Email:    stringClaim(mc, "email"),
		TenantID: stringClaim(mc, "tenant_id"),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Source mints a token for one session user on every call.
type Source struct {
	issuer *Issuer
	user   auth.SessionUser
}

// SourceFor binds the issuer to a signed-in user.
func (i *Issuer) SourceFor(u auth.SessionUser) Source {
	return Source{issuer: i, user: u}
}

// Token returns a fresh access token.
func (s Source) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.issuer.Issue(s.user.ID, s.user.LoginID, s.user.TenantID)
}

func stringClaim(mc jwt.MapClaims, key string) string {
	v, _ := mc[key].(string)
	return v
}
