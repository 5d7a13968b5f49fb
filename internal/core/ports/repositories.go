package ports

import (
	"context"
	"time"

	"taxhub/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ServiceRequestRepository defines persistence operations for lookup requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error)
	// Complete persists the terminal snapshot of a request.
	Complete(ctx context.Context, req *domain.ServiceRequest) error
	// FindLatest returns up to params.Limit requests, newest first.
	FindLatest(ctx context.Context, params RequestListParams) ([]domain.ServiceRequest, error)
}

// RequestListParams holds filter + pagination for listing requests.
type RequestListParams struct {
	// RequesterID filters by owner; nil lists across all users.
	RequesterID *uuid.UUID
	ServiceType *domain.ServiceType
	Status      *domain.RequestStatus
	Limit       int
}

// CaptchaChallengeRepository defines persistence operations for challenges.
type CaptchaChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.CaptchaChallenge) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error)
	// MarkSolved transitions a PENDING challenge to SOLVED with the given
	// solution token. Returns false when the challenge was not PENDING, so
	// exactly one concurrent solver wins.
	MarkSolved(ctx context.Context, id uuid.UUID, solutionToken string, solvedAt time.Time) (bool, error)
}

// AuditEventRepository appends to the audit ledger. There is deliberately
// no update or delete method.
type AuditEventRepository interface {
	Append(ctx context.Context, event *domain.AuditEvent) error
}
