package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// storedTokenExpired inspects the persisted access token without verifying
// its signature. Tokens are opaque to the client in general, so anything
// that does not parse as a JWT (or carries no expiry claim) is left for the
// server to judge; only a token that provably expired is reported.
func (m *Manager) storedTokenExpired(ctx context.Context) bool {
	token, ok, err := m.store.LoadToken(ctx)
	if err != nil || !ok {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
