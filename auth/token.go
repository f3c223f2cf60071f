// auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
)

// Claims is the only supported token claims shape for this service.
// The role claim is advisory; authorization re-reads the role from the
// account store on every request.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenService issues and parses signed, time-bounded identity tokens.
// The signing key is loaded once at startup; rotating it invalidates
// every outstanding token, which is acceptable for short-lived tokens.
type TokenService struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, expiryMinutes int) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("signing secret must be at least 32 bytes for HS256")
	}
	if expiryMinutes <= 0 {
		return nil, fmt.Errorf("token expiry must be > 0 minutes, got %d", expiryMinutes)
	}
	return &TokenService{
		key:    []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
		now:    time.Now,
	}, nil
}

// Issue builds and signs a token for the subject with the role claim.
func (s *TokenService) Issue(subjectEmail string, role model.Role) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Role: string(role),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Parse verifies the signature and expiry bound and returns the subject
// and role claims. Expired tokens and malformed/forged tokens fail with
// distinct sentinels; callers treat both as "unauthenticated" but tests
// observe the difference.
func (s *TokenService) Parse(tokenString string) (string, model.Role, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ems_errors.ErrTokenExpired
		}
		return "", "", ems_errors.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", "", ems_errors.ErrTokenInvalid
	}
	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return "", "", ems_errors.ErrTokenInvalid
	}
	return claims.Subject, role, nil
}
