package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupLookupService(t *testing.T) (
	*LookupServiceImpl,
	*mocks.MockRequestRegistry,
	*mocks.MockCaptchaCoordinator,
	*mocks.MockCndGateway,
	*mocks.MockAuditService,
) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRequestRegistry(ctrl)
	coordinator := mocks.NewMockCaptchaCoordinator(ctrl)
	gateway := mocks.NewMockCndGateway(ctrl)
	auditSvc := mocks.NewMockAuditService(ctrl)

	svc := NewLookupService(registry, coordinator, gateway, auditSvc, CaptchaPageConfig{
		Provider: "HCAPTCHA",
		SiteKey:  "site-key",
		PageURL:  "https://portal.example.gov/consulta",
	}, zerolog.Nop())
	return svc, registry, coordinator, gateway, auditSvc
}

func registeredRequest(actor domain.Principal, serviceType domain.ServiceType) *domain.ServiceRequest {
	return domain.NewServiceRequest(
		serviceType, "12345678000195", serviceType.InitialStatus(),
		actor.UserID, actor.Email, time.Now().UTC(),
	)
}

func TestLookupService_RequestCnd_PortalRefusalCompletesAsFailure(t *testing.T) {
	svc, registry, _, gateway, auditSvc := setupLookupService(t)
	ctx := context.Background()
	actor := userPrincipal()
	req := registeredRequest(actor, domain.ServiceTypeCND)

	registry.EXPECT().Register(ctx, gomock.Any()).Return(req, nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.RecordAuditCommand) error {
			assert.Equal(t, domain.AuditServiceRequested, cmd.EventType)
			return nil
		})
	gateway.EXPECT().FetchCertificate(ctx, req.TaxID).Return(&ports.CndGatewayResult{
		Succeeded: false,
		Code:      "CAPTCHA_REQUIRED",
		Message:   "portal demanded verification",
	}, nil)
	registry.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.CompleteRequestCommand) (*domain.ServiceRequest, error) {
			assert.Equal(t, req.ID, cmd.RequestID)
			assert.Equal(t, domain.RequestStatusFailure, cmd.Status)
			assert.Equal(t, "CAPTCHA_REQUIRED", cmd.ResultCode)
			done := req.Complete(cmd.Status, time.Now().UTC(), cmd.ResultCode, cmd.ResultMessage, cmd.ResultPayload)
			return &done, nil
		})

	result, err := svc.RequestCnd(ctx, ports.LookupCommand{TaxID: "12.345.678/0001-95", Actor: actor})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusFailure, result.Status)
}

func TestLookupService_RequestCnd_PortalSuccess(t *testing.T) {
	svc, registry, _, gateway, auditSvc := setupLookupService(t)
	ctx := context.Background()
	actor := userPrincipal()
	req := registeredRequest(actor, domain.ServiceTypeCND)
	payload := `{"certificate":"negative"}`

	registry.EXPECT().Register(ctx, gomock.Any()).Return(req, nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	gateway.EXPECT().FetchCertificate(ctx, req.TaxID).Return(&ports.CndGatewayResult{
		Succeeded:  true,
		Code:       "OK",
		Message:    "certificate issued",
		PayloadRaw: &payload,
	}, nil)
	registry.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.CompleteRequestCommand) (*domain.ServiceRequest, error) {
			assert.Equal(t, domain.RequestStatusSuccess, cmd.Status)
			require.NotNil(t, cmd.ResultPayload)
			done := req.Complete(cmd.Status, time.Now().UTC(), cmd.ResultCode, cmd.ResultMessage, cmd.ResultPayload)
			return &done, nil
		})

	result, err := svc.RequestCnd(ctx, ports.LookupCommand{TaxID: req.TaxID, Actor: actor})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusSuccess, result.Status)
}

func TestLookupService_RequestCnd_GatewayErrorCompletesAsFailure(t *testing.T) {
	svc, registry, _, gateway, auditSvc := setupLookupService(t)
	ctx := context.Background()
	actor := userPrincipal()
	req := registeredRequest(actor, domain.ServiceTypeCND)

	registry.EXPECT().Register(ctx, gomock.Any()).Return(req, nil)
	auditSvc.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	gateway.EXPECT().FetchCertificate(ctx, req.TaxID).Return(nil, errors.New("connection refused"))
	registry.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.CompleteRequestCommand) (*domain.ServiceRequest, error) {
			assert.Equal(t, domain.RequestStatusFailure, cmd.Status)
			assert.Equal(t, "GATEWAY_ERROR", cmd.ResultCode)
			done := req.Complete(cmd.Status, time.Now().UTC(), cmd.ResultCode, cmd.ResultMessage, nil)
			return &done, nil
		})

	result, err := svc.RequestCnd(ctx, ports.LookupCommand{TaxID: req.TaxID, Actor: actor})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusFailure, result.Status)
}

func TestLookupService_RequestCnd_RegisterErrorPropagates(t *testing.T) {
	svc, registry, _, _, _ := setupLookupService(t)
	ctx := context.Background()

	registry.EXPECT().Register(ctx, gomock.Any()).Return(nil, errors.New("validation failed"))

	_, err := svc.RequestCnd(ctx, ports.LookupCommand{TaxID: "bad", Actor: userPrincipal()})
	assert.Error(t, err)
}

func TestLookupService_RequestDte_RaisesChallenge(t *testing.T) {
	svc, registry, coordinator, _, auditSvc := setupLookupService(t)
	ctx := context.Background()
	actor := userPrincipal()
	req := registeredRequest(actor, domain.ServiceTypeDTEFederal)

	registry.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.RegisterRequestCommand) (*domain.ServiceRequest, error) {
			assert.Equal(t, "DTE_CAIXA_POSTAL_FEDERAL", cmd.ServiceType)
			return req, nil
		})
	auditSvc.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	coordinator.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.CreateChallengeCommand) (*domain.CaptchaChallenge, error) {
			assert.Equal(t, req.ID, cmd.ServiceRequestID)
			assert.Equal(t, "DTE_CAIXA_POSTAL_FEDERAL", cmd.ServiceType)
			assert.Equal(t, "HCAPTCHA", cmd.Provider)
			assert.Equal(t, "DTE_CAIXA_POSTAL_FEDERAL:12345678000195", cmd.ContextKey)
			return &domain.CaptchaChallenge{ID: req.ID, Status: domain.ChallengeStatusPending}, nil
		})

	result, err := svc.RequestDte(ctx, domain.ServiceTypeDTEFederal, ports.LookupCommand{TaxID: req.TaxID, Actor: actor})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCaptchaRequired, result.Request.Status)
	assert.Equal(t, domain.ChallengeStatusPending, result.Challenge.Status)
}

func TestLookupService_RequestCnpj_RaisesChallenge(t *testing.T) {
	svc, registry, coordinator, _, auditSvc := setupLookupService(t)
	ctx := context.Background()
	actor := userPrincipal()
	req := registeredRequest(actor, domain.ServiceTypeCNPJReva)

	registry.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.RegisterRequestCommand) (*domain.ServiceRequest, error) {
			assert.Equal(t, "CNPJ_REVA", cmd.ServiceType)
			return req, nil
		})
	auditSvc.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	coordinator.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.CreateChallengeCommand) (*domain.CaptchaChallenge, error) {
			assert.Equal(t, req.ID, cmd.ServiceRequestID)
			assert.Equal(t, "CNPJ_REVA", cmd.ServiceType)
			assert.Equal(t, "HCAPTCHA", cmd.Provider)
			assert.Equal(t, "CNPJ_REVA:12345678000195", cmd.ContextKey)
			return &domain.CaptchaChallenge{ID: req.ID, Status: domain.ChallengeStatusPending}, nil
		})

	result, err := svc.RequestCnpj(ctx, ports.LookupCommand{TaxID: req.TaxID, Actor: actor})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCaptchaRequired, result.Request.Status)
	assert.Equal(t, domain.ChallengeStatusPending, result.Challenge.Status)
}

func TestLookupService_RequestCnpj_MissingCaptchaConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRequestRegistry(ctrl)
	coordinator := mocks.NewMockCaptchaCoordinator(ctrl)
	gateway := mocks.NewMockCndGateway(ctrl)
	auditSvc := mocks.NewMockAuditService(ctrl)

	// No registry or coordinator expectations: the lookup fails before
	// anything is written.
	svc := NewLookupService(registry, coordinator, gateway, auditSvc, CaptchaPageConfig{}, zerolog.Nop())

	_, err := svc.RequestCnpj(context.Background(), ports.LookupCommand{
		TaxID: "12345678000195",
		Actor: userPrincipal(),
	})
	assert.Equal(t, "SYS_001", appErrCode(t, err))
}
