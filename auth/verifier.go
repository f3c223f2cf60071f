// auth/verifier.go
package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// AccountStore is the user-lookup collaborator consumed by the auth
// pipeline. Implementations return ems_errors.ErrUserNotFound for
// unknown emails.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*model.AppUser, error)
}

// NormalizeEmail maps a presented email to its canonical stored form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash is a valid bcrypt hash of a throwaway value. The unknown-email
// branch compares against it so both rejection paths cost one bcrypt
// comparison and response timing does not reveal whether the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CredentialVerifier validates a presented email+password pair against
// the stored bcrypt hash. All rejection causes collapse into
// ErrInvalidCredentials so login responses leak nothing.
type CredentialVerifier struct {
	accounts AccountStore
}

func NewCredentialVerifier(accounts AccountStore) *CredentialVerifier {
	return &CredentialVerifier{accounts: accounts}
}

// Verify returns the matched account's role on success. The password is
// never logged.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (model.Role, error) {
	email = NormalizeEmail(email)

	account, err := v.accounts.FindByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		logger.Warn("Login rejected: account lookup failed", zap.String("email", email))
		return "", ems_errors.ErrInvalidCredentials
	}
	if !account.Enabled {
		logger.Warn("Login rejected: account disabled", zap.String("email", email))
		return "", ems_errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Login rejected: password mismatch", zap.String("email", email))
		return "", ems_errors.ErrInvalidCredentials
	}

	return account.Role, nil
}
