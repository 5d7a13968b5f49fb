package dto

import (
	"time"

	"taxhub/internal/core/domain"
)

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresAt   string `json:"expiresAt"` // RFC 3339
}

// MeResponse echoes the claims of the presented token.
type MeResponse struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

// LookupRequest is the request body for starting a portal lookup.
type LookupRequest struct {
	TaxID string `json:"taxId" binding:"required,max=32"`
}

// CreateChallengeRequest registers a captcha wall hit by an automation.
type CreateChallengeRequest struct {
	ServiceRequestID string `json:"serviceRequestId" binding:"required,uuid"`
	ServiceType      string `json:"serviceType" binding:"required,max=50"`
	TaxID            string `json:"taxId" binding:"required,max=32"`
	Provider         string `json:"provider" binding:"required,max=50"`
	SiteKey          string `json:"siteKey" binding:"required,max=200"`
	PageURL          string `json:"pageUrl" binding:"required,safe_url,max=500"`
	ContextKey       string `json:"contextKey" binding:"required,max=200"`
}

// SolveChallengeRequest carries a human-provided solution token.
type SolveChallengeRequest struct {
	SolutionToken string `json:"solutionToken" binding:"required,max=4096"`
}

// ChallengeResponse is the wire shape of a captcha challenge.
type ChallengeResponse struct {
	ID               string  `json:"id"`
	ServiceRequestID string  `json:"serviceRequestId"`
	TaxID            string  `json:"taxId"`
	Provider         string  `json:"provider"`
	SiteKey          string  `json:"siteKey"`
	PageURL          string  `json:"pageUrl"`
	ContextKey       string  `json:"contextKey"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
	SolvedAt         *string `json:"solvedAt,omitempty"`
	SolutionToken    *string `json:"solutionToken,omitempty"`
}

// ServiceRequestResponse is the wire shape of a service request.
type ServiceRequestResponse struct {
	ID            string  `json:"id"`
	ServiceType   string  `json:"serviceType"`
	Status        string  `json:"status"`
	TaxID         string  `json:"taxId"`
	RequestedBy   string  `json:"requestedBy"`
	RequestedAt   string  `json:"requestedAt"`
	CompletedAt   *string `json:"completedAt,omitempty"`
	ResultCode    *string `json:"resultCode,omitempty"`
	ResultMessage *string `json:"resultMessage,omitempty"`
	ResultPayload *string `json:"resultPayload,omitempty"`
}

// InteractiveLookupResponse pairs the parked request with its blocking
// challenge.
type InteractiveLookupResponse struct {
	Request   ServiceRequestResponse `json:"request"`
	Challenge ChallengeResponse      `json:"challenge"`
}

// FromServiceRequest maps a domain request to its wire shape.
func FromServiceRequest(req *domain.ServiceRequest) ServiceRequestResponse {
	resp := ServiceRequestResponse{
		ID:            req.ID.String(),
		ServiceType:   string(req.ServiceType),
		Status:        string(req.Status),
		TaxID:         req.TaxID,
		RequestedBy:   req.RequestedByEmail,
		RequestedAt:   req.RequestedAt.UTC().Format(time.RFC3339),
		ResultCode:    req.ResultCode,
		ResultMessage: req.ResultMessage,
		ResultPayload: req.ResultPayload,
	}
	if req.CompletedAt != nil {
		completedAt := req.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}

// FromChallenge maps a domain challenge to its wire shape. The solution
// token rides along once solved: the consuming automation needs it.
func FromChallenge(ch *domain.CaptchaChallenge) ChallengeResponse {
	resp := ChallengeResponse{
		ID:               ch.ID.String(),
		ServiceRequestID: ch.ServiceRequestID.String(),
		TaxID:            ch.TaxID,
		Provider:         ch.Provider,
		SiteKey:          ch.SiteKey,
		PageURL:          ch.PageURL,
		ContextKey:       ch.ContextKey,
		Status:           string(ch.Status),
		CreatedAt:        ch.CreatedAt.UTC().Format(time.RFC3339),
		SolutionToken:    ch.SolutionToken,
	}
	if ch.SolvedAt != nil {
		solvedAt := ch.SolvedAt.UTC().Format(time.RFC3339)
		resp.SolvedAt = &solvedAt
	}
	return resp
}
