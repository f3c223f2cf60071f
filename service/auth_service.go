// service/auth_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/grootan/ems/api/audit"
	"github.com/grootan/ems/api/auth"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

// AuthService handles the login flow: credential verification followed
// by token issuance.
type AuthService struct {
	verifier *auth.CredentialVerifier
	tokens   *auth.TokenService
	auditSvc audit.Service
}

var _ IAuthService = &AuthService{}

// NewAuthService creates a new instance of AuthService
func NewAuthService(verifier *auth.CredentialVerifier, tokens *auth.TokenService, auditSvc audit.Service) *AuthService {
	return &AuthService{
		verifier: verifier,
		tokens:   tokens,
		auditSvc: auditSvc,
	}
}

// Login verifies the credentials and issues a bearer token carrying the
// account's current role. The failure cause is never exposed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	email = auth.NormalizeEmail(email)
	logger.Info("Login attempt", zap.String("email", email))

	role, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		s.recordLogin(ctx, email, false)
		return nil, err
	}

	token, err := s.tokens.Issue(email, role)
	if err != nil {
		logger.Error("Failed to issue token", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	s.recordLogin(ctx, email, true)
	logger.Info("Login successful", zap.String("email", email))
	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *AuthService) recordLogin(ctx context.Context, email string, success bool) {
	err := s.auditSvc.Record(ctx, audit.Entry{
		Actor:   email,
		Action:  audit.ActionLogin,
		Success: success,
	})
	if err != nil {
		logger.Warn("Failed to record login audit entry", zap.Error(err), zap.String("email", email))
	}
}
