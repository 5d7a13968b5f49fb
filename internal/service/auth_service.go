package service

import (
	"context"
	"fmt"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo ports.UserRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	auditSvc ports.AuditService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	auditSvc ports.AuditService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		auditSvc: auditSvc,
	}
}

// Login validates credentials and returns a signed token. Unknown email and
// wrong password produce the same error and the same audit event type.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, httpCtx ports.HTTPContext) (*ports.LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		s.recordLogin(ctx, nil, email, httpCtx, false)
		return nil, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		s.recordLogin(ctx, user, email, httpCtx, false)
		return nil, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Issue(user)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("issue token: %w", err))
	}

	s.recordLogin(ctx, user, email, httpCtx, true)

	return &ports.LoginResult{
		AccessToken: token,
		ExpiresAt:   expiry,
		User:        user,
	}, nil
}

func (s *AuthServiceImpl) recordLogin(ctx context.Context, user *domain.User, email string, httpCtx ports.HTTPContext, success bool) {
	eventType := domain.AuditLoginFailure
	if success {
		eventType = domain.AuditLoginSuccess
	}

	var actor *domain.Principal
	if user != nil {
		actor = &domain.Principal{UserID: user.ID, Email: user.Email, Roles: user.Roles()}
	}

	// A failed ledger append must not break the login outcome.
	_ = s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType: eventType,
		Actor:     actor,
		HTTP:      httpCtx,
		Success:   success,
		Details:   map[string]any{"email": email},
	})
}
