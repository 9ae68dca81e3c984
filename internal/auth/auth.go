// Package auth resolves a request's session credentials to a user identity.
//
// The identity provider is external: it issues HS256-signed session tokens
// with the user id as subject. This package only verifies them; there is
// exactly one resolution strategy (cookie, with a bearer fallback for
// non-browser clients).
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tomocode/my-schedule-app/internal/errs"
)

// SessionCookie is the cookie the identity provider sets on login.
const SessionCookie = "session"

// Gate verifies session tokens against the provider's signing secret.
type Gate struct {
	signKey []byte
}

// NewGate constructs a Gate for the given HS256 secret.
func NewGate(signKey []byte) *Gate { return &Gate{signKey: signKey} }

// ResolveRequest extracts the session token from the request and verifies it.
// Every failure maps to errs.ErrUnauthenticated; callers never learn whether
// the token was absent, expired, or forged.
func (g *Gate) ResolveRequest(r *http.Request) (uuid.UUID, error) {
	tok := tokenFromRequest(r)
	if tok == "" {
		return uuid.Nil, errs.ErrUnauthenticated
	}
	return g.VerifyToken(tok)
}

// VerifyToken checks the HS256 signature and validity window, then returns
// the subject as a user id. A 30s leeway absorbs clock skew between this
// server and the identity provider.
func (g *Gate) VerifyToken(tok string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return g.signKey, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !parsed.Valid {
		return uuid.Nil, errs.ErrUnauthenticated
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errs.ErrUnauthenticated
	}
	return id, nil
}

// tokenFromRequest prefers the session cookie, falling back to
// "Authorization: Bearer <token>".
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		return strings.TrimSpace(v[7:])
	}
	return ""
}
