// auth/resolver.go
package auth

import (
	"context"
	"errors"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
)

// IdentityResolver maps a cryptographically trusted subject email to a
// full Principal from the live account store. The role embedded in the
// token is deliberately ignored here: a demoted or disabled user must
// lose elevated access immediately, not at token expiry.
type IdentityResolver struct {
	accounts AccountStore
}

func NewIdentityResolver(accounts AccountStore) *IdentityResolver {
	return &IdentityResolver{accounts: accounts}
}

// Resolve fails with ErrUserNotFound when the account was deleted after
// token issuance; callers must reject, never fall back to the claim.
func (r *IdentityResolver) Resolve(ctx context.Context, subjectEmail string) (*model.Principal, error) {
	account, err := r.accounts.FindByEmail(ctx, NormalizeEmail(subjectEmail))
	if err != nil {
		if errors.Is(err, ems_errors.ErrUserNotFound) {
			return nil, ems_errors.ErrUserNotFound
		}
		return nil, err
	}

	return &model.Principal{
		Email:   account.Email,
		Role:    account.Role,
		Enabled: account.Enabled,
	}, nil
}
