// auth/token_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, 60)
	assert.NoError(t, err)
	return svc
}

func TestNewTokenService_RejectsWeakConfig(t *testing.T) {
	_, err := NewTokenService("too-short", 60)
	assert.Error(t, err)

	_, err = NewTokenService(testSecret, 0)
	assert.Error(t, err)

	_, err = NewTokenService(testSecret, -5)
	assert.Error(t, err)
}

func TestTokenService_IssueParse_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("admin@corp.example", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, role, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@corp.example", subject)
	assert.Equal(t, model.RoleAdmin, role)
}

func TestTokenService_Parse_Expired(t *testing.T) {
	svc := newTestTokenService(t)

	issuedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("hr@corp.example", model.RoleHR)
	assert.NoError(t, err)

	// Still valid one minute before the 60 minute bound.
	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, _, err = svc.Parse(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, _, err = svc.Parse(token)
	assert.ErrorIs(t, err, ems_errors.ErrTokenExpired)
}

func TestTokenService_Parse_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("hr@corp.example", model.RoleHR)
	assert.NoError(t, err)

	tampered := []byte(token)
	last := tampered[len(tampered)-1]
	if last == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	_, _, err = svc.Parse(string(tampered))
	assert.ErrorIs(t, err, ems_errors.ErrTokenInvalid)
}

func TestTokenService_Parse_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t)
	other, err := NewTokenService("ffffffffffffffffffffffffffffffff", 60)
	assert.NoError(t, err)

	token, err := issuer.Issue("admin@corp.example", model.RoleAdmin)
	assert.NoError(t, err)

	_, _, err = other.Parse(token)
	assert.ErrorIs(t, err, ems_errors.ErrTokenInvalid)
}

func TestTokenService_Parse_Garbage(t *testing.T) {
	svc := newTestTokenService(t)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, _, err := svc.Parse(input)
		assert.ErrorIs(t, err, ems_errors.ErrTokenInvalid, "input %q", input)
	}
}

func TestTokenService_Parse_RejectsUnsignedToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@corp.example",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: string(model.RoleAdmin),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, _, err = svc.Parse(unsigned)
	assert.ErrorIs(t, err, ems_errors.ErrTokenInvalid)
}

func TestTokenService_Parse_RejectsUnknownRoleClaim(t *testing.T) {
	svc := newTestTokenService(t)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@corp.example",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "SUPERUSER",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, _, err = svc.Parse(token)
	assert.ErrorIs(t, err, ems_errors.ErrTokenInvalid)
}

func TestTokenService_Parse_RejectsMissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: string(model.RoleEmployee),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, _, err = svc.Parse(token)
	assert.ErrorIs(t, err, ems_errors.ErrTokenInvalid)
}
