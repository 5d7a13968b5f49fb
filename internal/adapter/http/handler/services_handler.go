package handler

import (
	"net/http"

	"taxhub/internal/adapter/http/dto"
	"taxhub/internal/adapter/http/middleware"
	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/pkg/apperror"
	"taxhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// ServicesHandler handles the orchestrated lookup endpoints.
type ServicesHandler struct {
	lookupSvc ports.LookupService
}

// NewServicesHandler creates a new ServicesHandler.
func NewServicesHandler(lookupSvc ports.LookupService) *ServicesHandler {
	return &ServicesHandler{lookupSvc: lookupSvc}
}

// Cnd handles POST /api/v1/services/cnd.
func (h *ServicesHandler) Cnd(c *gin.Context) {
	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	result, err := h.lookupSvc.RequestCnd(c.Request.Context(), ports.LookupCommand{
		TaxID: req.TaxID,
		Actor: principal,
		HTTP:  httpContextFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromServiceRequest(result))
}

// DteFederal handles POST /api/v1/services/dte/federal.
func (h *ServicesHandler) DteFederal(c *gin.Context) {
	h.dte(c, domain.ServiceTypeDTEFederal)
}

// DteEstadual handles POST /api/v1/services/dte/estadual.
func (h *ServicesHandler) DteEstadual(c *gin.Context) {
	h.dte(c, domain.ServiceTypeDTEEstadual)
}

func (h *ServicesHandler) dte(c *gin.Context, serviceType domain.ServiceType) {
	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	result, err := h.lookupSvc.RequestDte(c.Request.Context(), serviceType, ports.LookupCommand{
		TaxID: req.TaxID,
		Actor: principal,
		HTTP:  httpContextFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InteractiveLookupResponse{
		Request:   dto.FromServiceRequest(result.Request),
		Challenge: dto.FromChallenge(result.Challenge),
	})
}

// Cnpj handles POST /api/v1/services/cnpj.
func (h *ServicesHandler) Cnpj(c *gin.Context) {
	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	result, err := h.lookupSvc.RequestCnpj(c.Request.Context(), ports.LookupCommand{
		TaxID: req.TaxID,
		Actor: principal,
		HTTP:  httpContextFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InteractiveLookupResponse{
		Request:   dto.FromServiceRequest(result.Request),
		Challenge: dto.FromChallenge(result.Challenge),
	})
}
