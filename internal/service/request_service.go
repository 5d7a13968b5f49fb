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

const (
	minListLimit = 1
	maxListLimit = 100
)

// RequestRegistryImpl implements ports.RequestRegistry.
type RequestRegistryImpl struct {
	requestRepo ports.ServiceRequestRepository
	auditSvc    ports.AuditService
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

// NewRequestRegistry creates a new RequestRegistryImpl. metrics may be nil.
func NewRequestRegistry(
	requestRepo ports.ServiceRequestRepository,
	auditSvc ports.AuditService,
	m *metrics.Metrics,
	log zerolog.Logger,
) *RequestRegistryImpl {
	return &RequestRegistryImpl{
		requestRepo: requestRepo,
		auditSvc:    auditSvc,
		metrics:     m,
		log:         log,
	}
}

// Register validates input, persists a new request in its initial status
// and appends the creation audit event before returning.
func (s *RequestRegistryImpl) Register(ctx context.Context, cmd ports.RegisterRequestCommand) (*domain.ServiceRequest, error) {
	serviceType, ok := domain.ParseServiceType(cmd.ServiceType)
	if !ok {
		s.recordRejected(ctx, cmd, "unknown service type")
		return nil, apperror.Validation(fmt.Sprintf("unknown service type: %s", cmd.ServiceType))
	}

	taxID, ok := domain.NormalizeTaxID(cmd.TaxID)
	if !ok {
		s.recordRejected(ctx, cmd, "malformed tax id")
		return nil, apperror.Validation("tax id must contain exactly 14 digits")
	}

	req := domain.NewServiceRequest(
		serviceType,
		taxID,
		serviceType.InitialStatus(),
		cmd.Actor.UserID,
		cmd.Actor.Email,
		time.Now().UTC(),
	)

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create service request: %w", err))
	}

	// Canonical keys override caller extras so the ledger always carries
	// the normalized values. A ledger failure never undoes the state
	// change it documents; it only surfaces in the logs.
	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType:  domain.AuditServiceRequestCreated,
		Actor:      &cmd.Actor,
		HTTP:       cmd.HTTP,
		Success:    true,
		TargetType: domain.TargetServiceRequest,
		TargetID:   &req.ID,
		Details:    cmd.Extra,
		Extra: map[string]any{
			"serviceType": string(req.ServiceType),
			"taxId":       req.TaxID,
			"status":      string(req.Status),
		},
	}); err != nil {
		s.log.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to audit request creation")
	}

	return req, nil
}

// Complete moves a request to a terminal status and audits the outcome.
func (s *RequestRegistryImpl) Complete(ctx context.Context, cmd ports.CompleteRequestCommand) (*domain.ServiceRequest, error) {
	if !cmd.Status.Terminal() {
		return nil, apperror.Validation(fmt.Sprintf("completion status must be terminal, got %s", cmd.Status))
	}

	req, err := s.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load service request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("Service request")
	}

	completed := req.Complete(cmd.Status, time.Now().UTC(), cmd.ResultCode, cmd.ResultMessage, cmd.ResultPayload)

	if err := s.requestRepo.Complete(ctx, &completed); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete service request: %w", err))
	}

	eventType := domain.AuditServiceRequestFailure
	if cmd.Status == domain.RequestStatusSuccess {
		eventType = domain.AuditServiceRequestSuccess
	}
	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType:  eventType,
		Actor:      &cmd.Actor,
		HTTP:       cmd.HTTP,
		Success:    cmd.Status == domain.RequestStatusSuccess,
		TargetType: domain.TargetServiceRequest,
		TargetID:   &completed.ID,
		Details: map[string]any{
			"resultCode":    cmd.ResultCode,
			"resultMessage": cmd.ResultMessage,
		},
	}); err != nil {
		s.log.Error().Err(err).Str("request_id", completed.ID.String()).Msg("failed to audit request completion")
	}

	s.metrics.IncrementLookupOutcome(string(completed.ServiceType), string(completed.Status))

	return &completed, nil
}

// GetByID fetches one request. Non-admins only see their own requests;
// someone else's id answers exactly like a missing one.
func (s *RequestRegistryImpl) GetByID(ctx context.Context, id uuid.UUID, actor domain.Principal) (*domain.ServiceRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load service request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("Service request")
	}
	if !actor.IsAdmin() && req.RequestedByUserID != actor.UserID {
		return nil, apperror.ErrNotFound("Service request")
	}
	return req, nil
}

// List returns the newest requests in scope. The ALL scope is admin-only.
func (s *RequestRegistryImpl) List(ctx context.Context, query ports.ListRequestsQuery, actor domain.Principal) ([]domain.ServiceRequest, error) {
	params := ports.RequestListParams{
		Limit: clampLimit(query.Limit),
	}

	switch query.Scope {
	case ports.ScopeAll:
		if !actor.IsAdmin() {
			return nil, apperror.ErrForbidden()
		}
	case ports.ScopeMe, "":
		requesterID := actor.UserID
		params.RequesterID = &requesterID
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown scope: %s", query.Scope))
	}

	if query.ServiceType != nil {
		serviceType, ok := domain.ParseServiceType(*query.ServiceType)
		if !ok {
			return nil, apperror.Validation(fmt.Sprintf("unknown service type: %s", *query.ServiceType))
		}
		params.ServiceType = &serviceType
	}
	if query.Status != nil {
		status, ok := domain.ParseRequestStatus(*query.Status)
		if !ok {
			return nil, apperror.Validation(fmt.Sprintf("unknown status: %s", *query.Status))
		}
		params.Status = &status
	}

	requests, err := s.requestRepo.FindLatest(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list service requests: %w", err))
	}
	return requests, nil
}

func (s *RequestRegistryImpl) recordRejected(ctx context.Context, cmd ports.RegisterRequestCommand, reason string) {
	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType: domain.AuditServiceRequestCreated,
		Actor:     &cmd.Actor,
		HTTP:      cmd.HTTP,
		Success:   false,
		Details:   cmd.Extra,
		Extra: map[string]any{
			"serviceType": cmd.ServiceType,
			"taxId":       cmd.TaxID,
			"reason":      reason,
		},
	}); err != nil {
		s.log.Warn().Err(err).Msg("failed to audit rejected request")
	}
}

func clampLimit(limit int) int {
	if limit < minListLimit {
		return minListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
