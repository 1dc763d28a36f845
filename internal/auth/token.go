package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopcore-labs/shopcore/internal/models"
)

// ErrInvalidToken is the single failure callers see. Whether a token was
// malformed, expired, badly signed, or revoked is only distinguished in
// logs so the response leaks nothing about why it was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Manager owns the session token lifecycle: issued at login, verified on
// every request, revoked at logout. Tokens are self-contained HS256
// credentials; the revocation registry is the only server-side state.
type Manager struct {
	key      []byte
	ttl      time.Duration
	registry RevocationRegistry
}

func NewManager(key []byte, ttl time.Duration, registry RevocationRegistry) *Manager {
	return &Manager{
		key:      key,
		ttl:      ttl,
		registry: registry,
	}
}

// Issue builds a signed token embedding the principal's id, role, issue
// time, and a fixed-TTL expiry.
func (m *Manager) Issue(user *models.User) (string, *models.Claims, error) {

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}

	return signed, claims, nil
}

// Validate verifies signature and embedded expiry, then checks the
// revocation registry. A call that begins after a Revoke of the same
// token completed observes the revocation.
func (m *Manager) Validate(ctx context.Context, tokenString string) (*models.Claims, error) {

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.key, nil
	})

	if err != nil {
		slog.Warn("Token parsing failed", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		slog.Warn("Token rejected as invalid")
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		slog.Warn("Token expired", slog.String("userId", claims.UserID.String()))
		return nil, ErrInvalidToken
	}

	revoked, err := m.registry.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("checking revocation registry: %w", err)
	}

	if revoked {
		slog.Warn("Token revoked", slog.String("userId", claims.UserID.String()))
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Revoke inserts the token's exact serialized form into the registry.
// Idempotent. The embedded expiry bounds how long the entry is kept; a
// token that no longer parses is still registered with the full TTL.
func (m *Manager) Revoke(ctx context.Context, tokenString string) error {

	expiresAt := time.Now().Add(m.ttl)

	claims := &models.Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.key, nil
	}); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := m.registry.Revoke(ctx, tokenString, expiresAt); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	return nil
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
