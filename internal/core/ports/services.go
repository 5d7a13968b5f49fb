package ports

import (
	"context"
	"time"

	"taxhub/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Issue(user *domain.User) (string, time.Time, error)
	Verify(tokenString string) (*domain.Principal, error)
}

// ChallengeCache is the Redis read-through cache for challenge polling.
type ChallengeCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error) // nil, nil on miss
	Set(ctx context.Context, challenge *domain.CaptchaChallenge, ttl time.Duration) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// --- Service Ports (Business Logic) ---

// AuthService defines authentication business logic.
type AuthService interface {
	Login(ctx context.Context, email, password string, httpCtx HTTPContext) (*LoginResult, error)
}

// LoginResult holds an issued token and its subject.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

// HTTPContext carries request metadata into audit events.
type HTTPContext struct {
	ClientIP  string
	Method    string
	Path      string
	UserAgent string
}

// AuditService records ledger entries. Record is synchronous: when a
// business operation returns, its audit events are already appended.
type AuditService interface {
	Record(ctx context.Context, cmd RecordAuditCommand) error
}

// RecordAuditCommand holds one audit event to append.
type RecordAuditCommand struct {
	EventType  domain.AuditEventType
	Actor      *domain.Principal
	HTTP       HTTPContext
	Success    bool
	TargetType string
	TargetID   *uuid.UUID
	// Details and Extra are merged before serialization; Extra keys win.
	Details map[string]any
	Extra   map[string]any
}

// RequestRegistry defines the service-request lifecycle logic.
type RequestRegistry interface {
	Register(ctx context.Context, cmd RegisterRequestCommand) (*domain.ServiceRequest, error)
	Complete(ctx context.Context, cmd CompleteRequestCommand) (*domain.ServiceRequest, error)
	GetByID(ctx context.Context, id uuid.UUID, actor domain.Principal) (*domain.ServiceRequest, error)
	List(ctx context.Context, query ListRequestsQuery, actor domain.Principal) ([]domain.ServiceRequest, error)
}

// RegisterRequestCommand holds input for creating a lookup request.
type RegisterRequestCommand struct {
	ServiceType string
	TaxID       string
	Actor       domain.Principal
	HTTP        HTTPContext
	// Extra is merged into the creation audit details; canonical keys win.
	Extra map[string]any
}

// CompleteRequestCommand holds input for finishing a lookup request.
type CompleteRequestCommand struct {
	RequestID     uuid.UUID
	Status        domain.RequestStatus
	ResultCode    string
	ResultMessage string
	ResultPayload *string
	Actor         domain.Principal
	HTTP          HTTPContext
}

// ListScope selects whose requests a listing returns.
type ListScope string

const (
	ScopeMe  ListScope = "ME"
	ScopeAll ListScope = "ALL"
)

// ListRequestsQuery holds filter input for listing requests.
type ListRequestsQuery struct {
	Scope       ListScope
	ServiceType *string
	Status      *string
	Limit       int
}

// CaptchaCoordinator defines the human-in-the-loop challenge logic.
type CaptchaCoordinator interface {
	Create(ctx context.Context, cmd CreateChallengeCommand) (*domain.CaptchaChallenge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error)
	Solve(ctx context.Context, cmd SolveChallengeCommand) error
}

// CreateChallengeCommand holds input for registering a challenge.
type CreateChallengeCommand struct {
	ServiceRequestID uuid.UUID
	ServiceType      string
	TaxID            string
	Provider         string
	SiteKey          string
	PageURL          string
	ContextKey       string
	Actor            domain.Principal
	HTTP             HTTPContext
}

// SolveChallengeCommand holds a human-provided solution.
type SolveChallengeCommand struct {
	ChallengeID   uuid.UUID
	SolutionToken string
	Actor         domain.Principal
	HTTP          HTTPContext
}

// CndGateway talks to the federal tax-clearance portal.
type CndGateway interface {
	FetchCertificate(ctx context.Context, taxID string) (*CndGatewayResult, error)
}

// CndGatewayResult is the portal outcome for one certificate fetch.
type CndGatewayResult struct {
	Succeeded  bool
	Code       string
	Message    string
	PayloadRaw *string
}

// LookupService orchestrates end-to-end lookups across registry,
// coordinator and gateways.
type LookupService interface {
	RequestCnd(ctx context.Context, cmd LookupCommand) (*domain.ServiceRequest, error)
	RequestDte(ctx context.Context, serviceType domain.ServiceType, cmd LookupCommand) (*InteractiveLookupResult, error)
	RequestCnpj(ctx context.Context, cmd LookupCommand) (*InteractiveLookupResult, error)
}

// LookupCommand holds input for starting an orchestrated lookup.
type LookupCommand struct {
	TaxID string
	Actor domain.Principal
	HTTP  HTTPContext
}

// InteractiveLookupResult pairs the created request with the challenge
// blocking it.
type InteractiveLookupResult struct {
	Request   *domain.ServiceRequest
	Challenge *domain.CaptchaChallenge
}
