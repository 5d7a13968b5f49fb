package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// --- In-Memory Service Request Repo ---

type inMemoryRequestRepo struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.ServiceRequest
}

func newInMemoryRequestRepo() *inMemoryRequestRepo {
	return &inMemoryRequestRepo{requests: make(map[uuid.UUID]*domain.ServiceRequest)}
}

func (r *inMemoryRequestRepo) Create(ctx context.Context, req *domain.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *inMemoryRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryRequestRepo) Complete(ctx context.Context, req *domain.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *inMemoryRequestRepo) FindLatest(ctx context.Context, params ports.RequestListParams) ([]domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ServiceRequest
	for _, req := range r.requests {
		if params.RequesterID != nil && req.RequestedByUserID != *params.RequesterID {
			continue
		}
		if params.ServiceType != nil && req.ServiceType != *params.ServiceType {
			continue
		}
		if params.Status != nil && req.Status != *params.Status {
			continue
		}
		result = append(result, *req)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RequestedAt.After(result[j].RequestedAt)
	})
	if len(result) > params.Limit {
		result = result[:params.Limit]
	}
	return result, nil
}

// --- In-Memory Captcha Challenge Repo ---

type inMemoryChallengeRepo struct {
	mu         sync.Mutex
	challenges map[uuid.UUID]*domain.CaptchaChallenge
}

func newInMemoryChallengeRepo() *inMemoryChallengeRepo {
	return &inMemoryChallengeRepo{challenges: make(map[uuid.UUID]*domain.CaptchaChallenge)}
}

func (r *inMemoryChallengeRepo) Create(ctx context.Context, ch *domain.CaptchaChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ch
	r.challenges[ch.ID] = &cp
	return nil
}

func (r *inMemoryChallengeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.challenges[id]
	if !ok {
		return nil, nil
	}
	cp := *ch
	return &cp, nil
}

// MarkSolved mirrors the conditional UPDATE of the postgres repo: only a
// PENDING challenge transitions, so one of any concurrent solvers wins.
func (r *inMemoryChallengeRepo) MarkSolved(ctx context.Context, id uuid.UUID, solutionToken string, solvedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.challenges[id]
	if !ok || ch.Status != domain.ChallengeStatusPending {
		return false, nil
	}
	ch.Status = domain.ChallengeStatusSolved
	ch.SolutionToken = &solutionToken
	ch.SolvedAt = &solvedAt
	return true, nil
}

// --- In-Memory Audit Ledger ---

type inMemoryAuditLedger struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
}

func newInMemoryAuditLedger() *inMemoryAuditLedger {
	return &inMemoryAuditLedger{}
}

func (r *inMemoryAuditLedger) Append(ctx context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

// eventsOfType returns the appended events with the given type, in order.
func (r *inMemoryAuditLedger) eventsOfType(eventType domain.AuditEventType) []domain.AuditEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.AuditEvent
	for _, e := range r.events {
		if e.EventType == eventType {
			result = append(result, e)
		}
	}
	return result
}
