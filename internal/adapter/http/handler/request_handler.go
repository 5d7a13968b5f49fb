package handler

import (
	"net/http"
	"strconv"

	"taxhub/internal/adapter/http/dto"
	"taxhub/internal/adapter/http/middleware"
	"taxhub/internal/core/ports"
	"taxhub/pkg/apperror"
	"taxhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultListLimit = 20

// RequestHandler handles service-request read endpoints.
type RequestHandler struct {
	registry ports.RequestRegistry
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(registry ports.RequestRegistry) *RequestHandler {
	return &RequestHandler{registry: registry}
}

// Get handles GET /api/v1/service-requests/:id.
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("service request id must be a UUID"))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	req, err := h.registry.GetByID(c.Request.Context(), id, principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromServiceRequest(req))
}

// List handles GET /api/v1/service-requests.
// Query params: scope (ME|ALL, default ME), serviceType, status, limit.
func (h *RequestHandler) List(c *gin.Context) {
	query := ports.ListRequestsQuery{
		Scope: ports.ScopeMe,
		Limit: defaultListLimit,
	}

	if scope := c.Query("scope"); scope != "" {
		query.Scope = ports.ListScope(scope)
	}
	if serviceType := c.Query("serviceType"); serviceType != "" {
		query.ServiceType = &serviceType
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if rawLimit := c.Query("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			response.Error(c, apperror.Validation("limit must be an integer"))
			return
		}
		query.Limit = limit
	}

	principal, _ := middleware.PrincipalFrom(c)
	requests, err := h.registry.List(c.Request.Context(), query, principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.FromServiceRequest(&requests[i]))
	}
	c.JSON(http.StatusOK, items)
}
