package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryBuffer keeps a margin before the token's actual expiry, so a
// token about to lapse is not presented to the backend.
const expiryBuffer = 30 * time.Second

// tokenExpiry peeks at a bearer token's exp claim without verifying the
// signature (the client holds no verification keys; the backend remains
// the authority). Returns false for opaque tokens or JWTs without exp.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// tokenStale reports whether a peekable token is already past its
// expiry (minus the buffer). Opaque tokens are never locally stale.
func tokenStale(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return false
	}
	return !now.Before(exp.Add(-expiryBuffer))
}
