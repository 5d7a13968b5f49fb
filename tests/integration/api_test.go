package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taxhub/internal/adapter/gateway"
	httpHandler "taxhub/internal/adapter/http/handler"
	redisStorage "taxhub/internal/adapter/storage/redis"
	"taxhub/internal/core/domain"
	"taxhub/internal/service"
	"taxhub/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack with in-memory repos and
// miniredis-backed stores. This exercises the real HTTP layer, middleware,
// handlers, services and Redis adapters end-to-end.

type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	users      *inMemoryUserRepo
	requests   *inMemoryRequestRepo
	challenges *inMemoryChallengeRepo
	ledger     *inMemoryAuditLedger
	hashSvc    *service.Argon2HashService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	users := newInMemoryUserRepo()
	requests := newInMemoryRequestRepo()
	challenges := newInMemoryChallengeRepo()
	ledger := newInMemoryAuditLedger()

	log := logger.New("debug", false)
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	auditSvc := service.NewAuditService(ledger, nil, log)
	authSvc := service.NewAuthService(users, hashSvc, tokenSvc, auditSvc)
	registry := service.NewRequestRegistry(requests, auditSvc, nil, log)
	coordinator := service.NewCaptchaCoordinator(challenges, redisStorage.NewChallengeCache(rdb), auditSvc, nil, log)
	lookupSvc := service.NewLookupService(registry, coordinator, gateway.NewCndStubGateway(log), auditSvc, service.CaptchaPageConfig{
		Provider: "HCAPTCHA",
		SiteKey:  "test-site-key",
		PageURL:  "https://portal.example.gov.br/dte",
	}, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registry,
		CoordinatorSvc: coordinator,
		LookupSvc:      lookupSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:     server,
		redis:      mr,
		users:      users,
		requests:   requests,
		challenges: challenges,
		ledger:     ledger,
		hashSvc:    hashSvc,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) createUser(t *testing.T, email, password, rolesCSV string) *domain.User {
	t.Helper()
	hash, err := a.hashSvc.Hash(password)
	require.NoError(t, err)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		RolesCSV:     rolesCSV,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, a.users.Create(t.Context(), user))
	return user
}

func (a *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := a.postJSON(t, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func (a *testApp) postJSON(t *testing.T, path, token string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_LoginAndMe(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	user := app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	token := app.login(t, "ana@example.com", "StrongPass123!")

	resp := app.get(t, "/api/v1/auth/me", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, user.ID.String(), body["userId"])
	assert.Equal(t, "ana@example.com", body["email"])

	events := app.ledger.eventsOfType(domain.AuditLoginSuccess)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
}

func TestIntegration_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")

	resp := app.postJSON(t, "/api/v1/auth/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "WrongPass123!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Error shape is uniform across the API.
	body := decodeJSON(t, resp)
	assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
	assert.Equal(t, "/api/v1/auth/login", body["path"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["message"])

	events := app.ledger.eventsOfType(domain.AuditLoginFailure)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

func TestIntegration_MeWithoutToken(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp := app.get(t, "/api/v1/auth/me", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_CndLookupCompletesAsFailure(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	token := app.login(t, "ana@example.com", "StrongPass123!")

	resp := app.postJSON(t, "/api/v1/services/cnd", token, map[string]string{
		"taxId": "12.345.678/0001-95",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeJSON(t, resp)

	// The stub gateway hits the portal's captcha wall, so the request
	// always reaches a terminal FAILURE with the portal's refusal code.
	assert.Equal(t, "CND", body["serviceType"])
	assert.Equal(t, "FAILURE", body["status"])
	assert.Equal(t, "12345678000195", body["taxId"])
	assert.Equal(t, "CAPTCHA_REQUIRED", body["resultCode"])
	assert.NotEmpty(t, body["completedAt"])

	assert.Len(t, app.ledger.eventsOfType(domain.AuditServiceRequested), 1)
	assert.Len(t, app.ledger.eventsOfType(domain.AuditServiceRequestCreated), 1)
	assert.Len(t, app.ledger.eventsOfType(domain.AuditServiceRequestFailure), 1)
}

func TestIntegration_CndLookupMalformedTaxID(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	token := app.login(t, "ana@example.com", "StrongPass123!")

	resp := app.postJSON(t, "/api/v1/services/cnd", token, map[string]string{
		"taxId": "123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntegration_DteLookupRaisesChallengeAndSolves(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	token := app.login(t, "ana@example.com", "StrongPass123!")

	resp := app.postJSON(t, "/api/v1/services/dte/federal", token, map[string]string{
		"taxId": "12345678000195",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeJSON(t, resp)

	request := body["request"].(map[string]any)
	challenge := body["challenge"].(map[string]any)
	assert.Equal(t, "DTE_CAIXA_POSTAL_FEDERAL", request["serviceType"])
	assert.Equal(t, "CAPTCHA_REQUIRED", request["status"])
	assert.Equal(t, "PENDING", challenge["status"])
	assert.Equal(t, "HCAPTCHA", challenge["provider"])
	assert.Equal(t, request["id"], challenge["serviceRequestId"])

	challengeID := challenge["id"].(string)

	// Poll, then solve, then poll again: the solution token must be visible.
	resp = app.get(t, "/api/v1/challenges/"+challengeID, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.postJSON(t, "/api/v1/challenges/"+challengeID+"/solution", token, map[string]string{
		"solutionToken": "tok-human-1",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = app.get(t, "/api/v1/challenges/"+challengeID, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	solved := decodeJSON(t, resp)
	assert.Equal(t, "SOLVED", solved["status"])
	assert.Equal(t, "tok-human-1", solved["solutionToken"])
	assert.NotEmpty(t, solved["solvedAt"])

	// A repeated solve is a no-op, not a conflict.
	resp = app.postJSON(t, "/api/v1/challenges/"+challengeID+"/solution", token, map[string]string{
		"solutionToken": "tok-human-2",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// The first accepted token stays.
	ch, err := app.challenges.GetByID(t.Context(), uuid.MustParse(challengeID))
	require.NoError(t, err)
	require.NotNil(t, ch.SolutionToken)
	assert.Equal(t, "tok-human-1", *ch.SolutionToken)

	assert.Len(t, app.ledger.eventsOfType(domain.AuditChallengeCreated), 1)
	assert.Len(t, app.ledger.eventsOfType(domain.AuditChallengeSolved), 1)
}

func TestIntegration_CnpjLookupRaisesChallenge(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	token := app.login(t, "ana@example.com", "StrongPass123!")

	resp := app.postJSON(t, "/api/v1/services/cnpj", token, map[string]string{
		"taxId": "12.345.678/0001-95",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeJSON(t, resp)

	request := body["request"].(map[string]any)
	challenge := body["challenge"].(map[string]any)
	assert.Equal(t, "CNPJ_REVA", request["serviceType"])
	assert.Equal(t, "CAPTCHA_REQUIRED", request["status"])
	assert.Equal(t, "12345678000195", request["taxId"])
	assert.Equal(t, "PENDING", challenge["status"])
	assert.Equal(t, "HCAPTCHA", challenge["provider"])
	assert.Equal(t, request["id"], challenge["serviceRequestId"])

	assert.Len(t, app.ledger.eventsOfType(domain.AuditServiceRequestCreated), 1)
	assert.Len(t, app.ledger.eventsOfType(domain.AuditServiceRequested), 1)
	assert.Len(t, app.ledger.eventsOfType(domain.AuditChallengeCreated), 1)
}

func TestIntegration_RequestOwnership(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	app.createUser(t, "bob@example.com", "StrongPass123!", "USER")
	anaToken := app.login(t, "ana@example.com", "StrongPass123!")
	bobToken := app.login(t, "bob@example.com", "StrongPass123!")

	resp := app.postJSON(t, "/api/v1/services/cnd", anaToken, map[string]string{
		"taxId": "12345678000195",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requestID := decodeJSON(t, resp)["id"].(string)

	// Owner sees it.
	resp = app.get(t, "/api/v1/service-requests/"+requestID, anaToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Someone else's id answers exactly like a missing one.
	resp = app.get(t, "/api/v1/service-requests/"+requestID, bobToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestIntegration_ListScopes(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createUser(t, "ana@example.com", "StrongPass123!", "USER")
	app.createUser(t, "admin@example.com", "StrongPass123!", "ADMIN,USER")
	anaToken := app.login(t, "ana@example.com", "StrongPass123!")
	adminToken := app.login(t, "admin@example.com", "StrongPass123!")

	for i := 0; i < 2; i++ {
		resp := app.postJSON(t, "/api/v1/services/cnd", anaToken, map[string]string{
			"taxId": fmt.Sprintf("1234567800019%d", i),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// ME scope only sees own requests.
	resp := app.get(t, "/api/v1/service-requests?scope=ME", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var mine []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mine))
	resp.Body.Close()
	assert.Empty(t, mine)

	// ALL scope is admin-only.
	resp = app.get(t, "/api/v1/service-requests?scope=ALL", anaToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = app.get(t, "/api/v1/service-requests?scope=ALL", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var all []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	assert.Len(t, all, 2)
}

func TestIntegration_LoginRateLimit(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	var lastStatus int
	for i := 0; i < 11; i++ {
		resp := app.postJSON(t, "/api/v1/auth/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "StrongPass123!",
		})
		lastStatus = resp.StatusCode
		resp.Body.Close()
	}
	assert.Equal(t, http.StatusTooManyRequests, lastStatus)

	// The fixed window resets after a minute.
	app.redis.FastForward(61 * time.Second)
	resp := app.postJSON(t, "/api/v1/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "StrongPass123!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
