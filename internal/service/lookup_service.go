package service

import (
	"context"
	"fmt"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/pkg/apperror"

	"github.com/rs/zerolog"
)

// CaptchaPageConfig describes the provider widget a human solver needs.
type CaptchaPageConfig struct {
	Provider string
	SiteKey  string
	PageURL  string
}

// LookupServiceImpl orchestrates end-to-end lookups: it registers the
// request, talks to the portal or raises a challenge, and completes the
// request with the outcome.
type LookupServiceImpl struct {
	registry    ports.RequestRegistry
	coordinator ports.CaptchaCoordinator
	cndGateway  ports.CndGateway
	auditSvc    ports.AuditService
	captchaCfg  CaptchaPageConfig
	log         zerolog.Logger
}

// NewLookupService creates a new LookupServiceImpl.
func NewLookupService(
	registry ports.RequestRegistry,
	coordinator ports.CaptchaCoordinator,
	cndGateway ports.CndGateway,
	auditSvc ports.AuditService,
	captchaCfg CaptchaPageConfig,
	log zerolog.Logger,
) *LookupServiceImpl {
	return &LookupServiceImpl{
		registry:    registry,
		coordinator: coordinator,
		cndGateway:  cndGateway,
		auditSvc:    auditSvc,
		captchaCfg:  captchaCfg,
		log:         log,
	}
}

// RequestCnd runs a tax-clearance lookup to completion. The returned
// request is always terminal: portal refusals complete it as FAILURE
// instead of surfacing an error.
func (s *LookupServiceImpl) RequestCnd(ctx context.Context, cmd ports.LookupCommand) (*domain.ServiceRequest, error) {
	req, err := s.registry.Register(ctx, ports.RegisterRequestCommand{
		ServiceType: string(domain.ServiceTypeCND),
		TaxID:       cmd.TaxID,
		Actor:       cmd.Actor,
		HTTP:        cmd.HTTP,
	})
	if err != nil {
		return nil, err
	}

	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType:  domain.AuditServiceRequested,
		Actor:      &cmd.Actor,
		HTTP:       cmd.HTTP,
		Success:    true,
		TargetType: domain.TargetServiceRequest,
		TargetID:   &req.ID,
		Details: map[string]any{
			"serviceType": string(req.ServiceType),
			"taxId":       req.TaxID,
		},
	}); err != nil {
		s.log.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to audit service request")
	}

	result, err := s.cndGateway.FetchCertificate(ctx, req.TaxID)
	if err != nil {
		s.log.Error().Err(err).Str("request_id", req.ID.String()).Msg("cnd gateway call failed")
		return s.registry.Complete(ctx, ports.CompleteRequestCommand{
			RequestID:     req.ID,
			Status:        domain.RequestStatusFailure,
			ResultCode:    "GATEWAY_ERROR",
			ResultMessage: "portal call failed",
			Actor:         cmd.Actor,
			HTTP:          cmd.HTTP,
		})
	}

	status := domain.RequestStatusFailure
	if result.Succeeded {
		status = domain.RequestStatusSuccess
	}
	return s.registry.Complete(ctx, ports.CompleteRequestCommand{
		RequestID:     req.ID,
		Status:        status,
		ResultCode:    result.Code,
		ResultMessage: result.Message,
		ResultPayload: result.PayloadRaw,
		Actor:         cmd.Actor,
		HTTP:          cmd.HTTP,
	})
}

// RequestDte starts a mailbox lookup. These portals demand a human-solved
// challenge up front, so the request parks in CAPTCHA_REQUIRED and the
// challenge is returned alongside it.
func (s *LookupServiceImpl) RequestDte(ctx context.Context, serviceType domain.ServiceType, cmd ports.LookupCommand) (*ports.InteractiveLookupResult, error) {
	return s.requestInteractive(ctx, serviceType, cmd)
}

// RequestCnpj starts a registry-data lookup. The registry portal always
// fronts its data with a captcha, so the flow is the interactive one.
func (s *LookupServiceImpl) RequestCnpj(ctx context.Context, cmd ports.LookupCommand) (*ports.InteractiveLookupResult, error) {
	return s.requestInteractive(ctx, domain.ServiceTypeCNPJReva, cmd)
}

// requestInteractive registers a CAPTCHA_REQUIRED request and raises the
// challenge a human must solve before the portal can be queried. The
// challenge is mandatory: an incomplete captcha page config fails the
// lookup before anything is written.
func (s *LookupServiceImpl) requestInteractive(ctx context.Context, serviceType domain.ServiceType, cmd ports.LookupCommand) (*ports.InteractiveLookupResult, error) {
	if s.captchaCfg.Provider == "" || s.captchaCfg.SiteKey == "" || s.captchaCfg.PageURL == "" {
		return nil, apperror.InternalError(fmt.Errorf("captcha page config is incomplete for %s", serviceType))
	}

	req, err := s.registry.Register(ctx, ports.RegisterRequestCommand{
		ServiceType: string(serviceType),
		TaxID:       cmd.TaxID,
		Actor:       cmd.Actor,
		HTTP:        cmd.HTTP,
	})
	if err != nil {
		return nil, err
	}

	if err := s.auditSvc.Record(ctx, ports.RecordAuditCommand{
		EventType:  domain.AuditServiceRequested,
		Actor:      &cmd.Actor,
		HTTP:       cmd.HTTP,
		Success:    true,
		TargetType: domain.TargetServiceRequest,
		TargetID:   &req.ID,
		Details: map[string]any{
			"serviceType": string(req.ServiceType),
			"taxId":       req.TaxID,
		},
	}); err != nil {
		s.log.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to audit service request")
	}

	challenge, err := s.coordinator.Create(ctx, ports.CreateChallengeCommand{
		ServiceRequestID: req.ID,
		ServiceType:      string(req.ServiceType),
		TaxID:            req.TaxID,
		Provider:         s.captchaCfg.Provider,
		SiteKey:          s.captchaCfg.SiteKey,
		PageURL:          s.captchaCfg.PageURL,
		ContextKey:       fmt.Sprintf("%s:%s", req.ServiceType, req.TaxID),
		Actor:            cmd.Actor,
		HTTP:             cmd.HTTP,
	})
	if err != nil {
		return nil, err
	}

	return &ports.InteractiveLookupResult{Request: req, Challenge: challenge}, nil
}
