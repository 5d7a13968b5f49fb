package handler

import (
	"net/http"

	"taxhub/internal/adapter/http/dto"
	"taxhub/internal/adapter/http/middleware"
	"taxhub/internal/core/ports"
	"taxhub/pkg/apperror"
	"taxhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChallengeHandler handles captcha challenge endpoints.
type ChallengeHandler struct {
	coordinator ports.CaptchaCoordinator
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(coordinator ports.CaptchaCoordinator) *ChallengeHandler {
	return &ChallengeHandler{coordinator: coordinator}
}

// Create handles POST /api/v1/challenges.
func (h *ChallengeHandler) Create(c *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	requestID, err := uuid.Parse(req.ServiceRequestID)
	if err != nil {
		response.Error(c, apperror.Validation("serviceRequestId must be a UUID"))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	challenge, err := h.coordinator.Create(c.Request.Context(), ports.CreateChallengeCommand{
		ServiceRequestID: requestID,
		ServiceType:      req.ServiceType,
		TaxID:            req.TaxID,
		Provider:         req.Provider,
		SiteKey:          req.SiteKey,
		PageURL:          req.PageURL,
		ContextKey:       req.ContextKey,
		Actor:            principal,
		HTTP:             httpContextFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromChallenge(challenge))
}

// Get handles GET /api/v1/challenges/:id. Solver UIs poll this.
func (h *ChallengeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("challenge id must be a UUID"))
		return
	}

	challenge, err := h.coordinator.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromChallenge(challenge))
}

// Solve handles POST /api/v1/challenges/:id/solution. A successful or
// idempotently repeated solve answers 204.
func (h *ChallengeHandler) Solve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("challenge id must be a UUID"))
		return
	}

	var req dto.SolveChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	if err := h.coordinator.Solve(c.Request.Context(), ports.SolveChallengeCommand{
		ChallengeID:   id,
		SolutionToken: req.SolutionToken,
		Actor:         principal,
		HTTP:          httpContextFrom(c),
	}); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
