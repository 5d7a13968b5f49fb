package service

import (
	"context"
	"fmt"
	"time"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/internal/metrics"
	"taxhub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// pollCacheTTL bounds how stale a polled PENDING challenge may be.
const pollCacheTTL = 5 * time.Second

// CaptchaCoordinatorImpl implements ports.CaptchaCoordinator.
type CaptchaCoordinatorImpl struct {
	challengeRepo ports.CaptchaChallengeRepository
	cache         ports.ChallengeCache
	auditSvc      ports.AuditService
	metrics       *metrics.Metrics
	log           zerolog.Logger
}

// NewCaptchaCoordinator creates a new CaptchaCoordinatorImpl.
// cache may be nil; polling then always hits the database. metrics may be nil.
func NewCaptchaCoordinator(
	challengeRepo ports.CaptchaChallengeRepository,
	cache ports.ChallengeCache,
	auditSvc ports.AuditService,
	m *metrics.Metrics,
	log zerolog.Logger,
) *CaptchaCoordinatorImpl {
	return &CaptchaCoordinatorImpl{
		challengeRepo: challengeRepo,
		cache:         cache,
		auditSvc:      auditSvc,
		metrics:       m,
		log:           log,
	}
}

// Create registers a pending challenge and audits its creation. Every
// field is required; validation happens before any write.
func (s *CaptchaCoordinatorImpl) Create(ctx context.Context, cmd ports.CreateChallengeCommand) (*domain.CaptchaChallenge, error) {
	if cmd.ServiceRequestID == uuid.Nil || cmd.ServiceType == "" || cmd.Provider == "" ||
		cmd.SiteKey == "" || cmd.PageURL == "" || cmd.ContextKey == "" {
		return nil, apperror.Validation("all challenge fields are required")
	}

	taxID, ok := domain.NormalizeTaxID(cmd.TaxID)
	if !ok {
		return nil, apperror.Validation("tax id must contain exactly 14 digits")
	}

	challenge := &domain.CaptchaChallenge{
		ID:               uuid.New(),
		ServiceRequestID: cmd.ServiceRequestID,
		TaxID:            taxID,
		Provider:         cmd.Provider,
		SiteKey:          cmd.SiteKey,
		PageURL:          cmd.PageURL,
		ContextKey:       cmd.ContextKey,
		Status:           domain.ChallengeStatusPending,
		CreatedByUserID:  cmd.Actor.UserID,
		CreatedByEmail:   cmd.Actor.Email,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create challenge: %w", err))
	}

	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType:  domain.AuditChallengeCreated,
		Actor:      &cmd.Actor,
		HTTP:       cmd.HTTP,
		Success:    true,
		TargetType: domain.TargetCaptchaChallenge,
		TargetID:   &challenge.ID,
		Details: map[string]any{
			"serviceType":      cmd.ServiceType,
			"serviceRequestId": cmd.ServiceRequestID.String(),
			"taxId":            taxID,
			"provider":         cmd.Provider,
			"contextKey":       cmd.ContextKey,
			"pageUrl":          cmd.PageURL,
		},
	}); err != nil {
		s.log.Error().Err(err).Str("challenge_id", challenge.ID.String()).Msg("failed to audit challenge creation")
	}

	s.metrics.IncrementChallengesCreated()

	return challenge, nil
}

// GetByID serves challenge polling through a short-lived cache.
func (s *CaptchaCoordinatorImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Msg("challenge cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load challenge: %w", err))
	}
	if challenge == nil {
		return nil, apperror.ErrNotFound("Captcha challenge")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, challenge, pollCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("challenge cache write failed")
		}
	}

	return challenge, nil
}

// Solve applies a human-provided solution. Solving an already SOLVED
// challenge is a no-op, so retries and racing solvers converge on the
// first accepted token.
func (s *CaptchaCoordinatorImpl) Solve(ctx context.Context, cmd ports.SolveChallengeCommand) error {
	if cmd.SolutionToken == "" {
		return apperror.Validation("solution token must not be empty")
	}

	challenge, err := s.challengeRepo.GetByID(ctx, cmd.ChallengeID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load challenge: %w", err))
	}
	if challenge == nil {
		return apperror.ErrNotFound("Captcha challenge")
	}

	switch challenge.Status {
	case domain.ChallengeStatusSolved:
		return nil
	case domain.ChallengeStatusPending:
	default:
		return apperror.ErrInvalidState(fmt.Sprintf("challenge is %s, not PENDING", challenge.Status))
	}

	solvedAt := time.Now().UTC()
	won, err := s.challengeRepo.MarkSolved(ctx, cmd.ChallengeID, cmd.SolutionToken, solvedAt)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("mark challenge solved: %w", err))
	}
	if !won {
		// Lost the race. A concurrent solver got there first; converge
		// with the idempotent outcome unless the state moved elsewhere.
		current, err := s.challengeRepo.GetByID(ctx, cmd.ChallengeID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("reload challenge: %w", err))
		}
		if current != nil && current.Status == domain.ChallengeStatusSolved {
			return nil
		}
		return apperror.ErrInvalidState("challenge is no longer PENDING")
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, cmd.ChallengeID); err != nil {
			s.log.Warn().Err(err).Msg("challenge cache invalidation failed")
		}
	}

	s.metrics.IncrementChallengesSolved()

	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType:  domain.AuditChallengeSolved,
		Actor:      &cmd.Actor,
		HTTP:       cmd.HTTP,
		Success:    true,
		TargetType: domain.TargetCaptchaChallenge,
		TargetID:   &cmd.ChallengeID,
		Details: map[string]any{
			"serviceRequestId": challenge.ServiceRequestID.String(),
			"provider":         challenge.Provider,
			"contextKey":       challenge.ContextKey,
		},
	}); err != nil {
		s.log.Error().Err(err).Str("challenge_id", cmd.ChallengeID.String()).Msg("failed to audit challenge solve")
	}

	return nil
}
