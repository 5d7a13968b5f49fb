package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/internal/core/ports/mocks"
	"taxhub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockUserRepository,
	*mocks.MockHashService,
	*mocks.MockTokenService,
	*mocks.MockAuditService,
) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	auditSvc := mocks.NewMockAuditService(ctrl)

	svc := NewAuthService(userRepo, hashSvc, tokenSvc, auditSvc)
	return svc, userRepo, hashSvc, tokenSvc, auditSvc
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, hashSvc, tokenSvc, auditSvc := setupAuthService(t)

	ctx := context.Background()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "analyst@example.com",
		PasswordHash: "$argon2id$hashed",
		RolesCSV:     "USER",
	}
	expiry := time.Now().Add(30 * time.Minute)

	userRepo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
	hashSvc.EXPECT().Verify("correct-password", user.PasswordHash).Return(true, nil)
	tokenSvc.EXPECT().Issue(user).Return("signed.jwt.token", expiry, nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.RecordAuditCommand) error {
			assert.Equal(t, domain.AuditLoginSuccess, cmd.EventType)
			assert.True(t, cmd.Success)
			require.NotNil(t, cmd.Actor)
			assert.Equal(t, user.ID, cmd.Actor.UserID)
			return nil
		})

	result, err := svc.Login(ctx, user.Email, "correct-password", ports.HTTPContext{ClientIP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.AccessToken)
	assert.Equal(t, expiry, result.ExpiresAt)
	assert.Equal(t, user, result.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _, auditSvc := setupAuthService(t)

	ctx := context.Background()
	userRepo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.RecordAuditCommand) error {
			assert.Equal(t, domain.AuditLoginFailure, cmd.EventType)
			assert.False(t, cmd.Success)
			assert.Nil(t, cmd.Actor)
			return nil
		})

	result, err := svc.Login(ctx, "ghost@example.com", "whatever", ports.HTTPContext{})
	assert.Nil(t, result)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hashSvc, _, auditSvc := setupAuthService(t)

	ctx := context.Background()
	user := &domain.User{ID: uuid.New(), Email: "analyst@example.com", PasswordHash: "$argon2id$hashed"}

	userRepo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
	hashSvc.EXPECT().Verify("wrong", user.PasswordHash).Return(false, nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.RecordAuditCommand) error {
			assert.Equal(t, domain.AuditLoginFailure, cmd.EventType)
			return nil
		})

	result, err := svc.Login(ctx, user.Email, "wrong", ports.HTTPContext{})
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	svc, userRepo, _, _, _ := setupAuthService(t)

	ctx := context.Background()
	userRepo.EXPECT().GetByEmail(ctx, "analyst@example.com").Return(nil, errors.New("db down"))

	result, err := svc.Login(ctx, "analyst@example.com", "pw", ports.HTTPContext{})
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestAuthService_Login_AuditFailureDoesNotBreakLogin(t *testing.T) {
	svc, userRepo, hashSvc, tokenSvc, auditSvc := setupAuthService(t)

	ctx := context.Background()
	user := &domain.User{ID: uuid.New(), Email: "analyst@example.com", PasswordHash: "$argon2id$hashed"}

	userRepo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
	hashSvc.EXPECT().Verify("pw", user.PasswordHash).Return(true, nil)
	tokenSvc.EXPECT().Issue(user).Return("tok", time.Now().Add(time.Hour), nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).Return(errors.New("ledger down"))

	result, err := svc.Login(ctx, user.Email, "pw", ports.HTTPContext{})
	require.NoError(t, err)
	assert.Equal(t, "tok", result.AccessToken)
}
