// errors/auth_errors.go
package errors

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, disabled account and
	// wrong password alike; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is a malformed token or a signature mismatch.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrUserNotFound means the token subject no longer has an account.
	ErrUserNotFound = errors.New("user not found")

	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient role")
)
