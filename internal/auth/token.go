package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong algorithm, malformed payload, missing fields or
// elapsed expiry. Callers must treat all of these identically.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. A non-positive TTL falls back to
// the 15 day default.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 15 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the session token payload. The token is integrity
// protected, not encrypted, and carries nothing beyond id, role and expiry.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Generate builds and signs a session token for the given principal.
func (tm *TokenManager) Generate(userID uuid.UUID, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates a session token and returns the subject id and role.
func (tm *TokenManager) Parse(tokenStr string) (uuid.UUID, domain.Role, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || !claims.Role.Valid() {
		return uuid.Nil, "", ErrInvalidToken
	}
	return userID, claims.Role, nil
}

// TTL exposes the configured token lifetime for cookie expiry alignment.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
