package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType identifies a government/tax lookup service.
type ServiceType string

const (
	ServiceTypeCND         ServiceType = "CND"
	ServiceTypeDTEFederal  ServiceType = "DTE_CAIXA_POSTAL_FEDERAL"
	ServiceTypeDTEEstadual ServiceType = "DTE_CAIXA_POSTAL_ESTADUAL"
	ServiceTypeCNPJReva    ServiceType = "CNPJ_REVA"
)

type serviceTypeInfo struct {
	category string
	// interactive marks portals known to demand human verification
	// before they can be queried.
	interactive bool
}

// serviceTypes is the closed catalog. Behavior lives in this table, not on
// the variants.
var serviceTypes = map[ServiceType]serviceTypeInfo{
	ServiceTypeCND:         {category: "TAX_CLEARANCE", interactive: false},
	ServiceTypeDTEFederal:  {category: "MAILBOX", interactive: true},
	ServiceTypeDTEEstadual: {category: "MAILBOX", interactive: true},
	ServiceTypeCNPJReva:    {category: "REGISTRY", interactive: true},
}

// ParseServiceType maps a raw string onto the catalog.
func ParseServiceType(s string) (ServiceType, bool) {
	t := ServiceType(s)
	_, ok := serviceTypes[t]
	return t, ok
}

// Valid reports whether t belongs to the catalog.
func (t ServiceType) Valid() bool {
	_, ok := serviceTypes[t]
	return ok
}

// Category returns the business grouping for reporting and authorization.
func (t ServiceType) Category() string {
	return serviceTypes[t].category
}

// InteractiveLikely reports whether the portal behind t usually demands a
// human-solved challenge.
func (t ServiceType) InteractiveLikely() bool {
	return serviceTypes[t].interactive
}

// InitialStatus returns the status a fresh request of this type starts in.
func (t ServiceType) InitialStatus() RequestStatus {
	if t.InteractiveLikely() {
		return RequestStatusCaptchaRequired
	}
	return RequestStatusPending
}

// RequestStatus is the lifecycle state of a ServiceRequest.
type RequestStatus string

const (
	RequestStatusPending         RequestStatus = "PENDING"
	RequestStatusCaptchaRequired RequestStatus = "CAPTCHA_REQUIRED"
	RequestStatusSuccess         RequestStatus = "SUCCESS"
	RequestStatusFailure         RequestStatus = "FAILURE"
)

// ParseRequestStatus maps a raw string onto the status set.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch st := RequestStatus(s); st {
	case RequestStatusPending, RequestStatusCaptchaRequired, RequestStatusSuccess, RequestStatusFailure:
		return st, true
	}
	return "", false
}

// Terminal reports whether the status ends the lifecycle.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusSuccess || s == RequestStatusFailure
}

// ServiceRequest represents one taxpayer-lookup attempt.
// A completion never mutates the stored value in place: Complete returns a
// new copy sharing the identity.
type ServiceRequest struct {
	ID                uuid.UUID     `json:"id"`
	ServiceType       ServiceType   `json:"service_type"`
	Status            RequestStatus `json:"status"`
	TaxID             string        `json:"tax_id"` // normalized, exactly 14 digits
	RequestedByUserID uuid.UUID     `json:"requested_by_user_id"`
	RequestedByEmail  string        `json:"requested_by_email"`
	RequestedAt       time.Time     `json:"requested_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
	ResultCode        *string       `json:"result_code,omitempty"`
	ResultMessage     *string       `json:"result_message,omitempty"`
	ResultPayload     *string       `json:"result_payload,omitempty"`
}

// NewServiceRequest builds a request in its initial state.
func NewServiceRequest(
	serviceType ServiceType,
	normalizedTaxID string,
	status RequestStatus,
	actorUserID uuid.UUID,
	actorEmail string,
	requestedAt time.Time,
) *ServiceRequest {
	return &ServiceRequest{
		ID:                uuid.New(),
		ServiceType:       serviceType,
		Status:            status,
		TaxID:             normalizedTaxID,
		RequestedByUserID: actorUserID,
		RequestedByEmail:  actorEmail,
		RequestedAt:       requestedAt,
	}
}

// Complete returns a completed copy of the request. The receiver is left
// untouched.
func (r ServiceRequest) Complete(
	status RequestStatus,
	completedAt time.Time,
	resultCode string,
	resultMessage string,
	resultPayload *string,
) ServiceRequest {
	r.Status = status
	r.CompletedAt = &completedAt
	r.ResultCode = &resultCode
	r.ResultMessage = &resultMessage
	r.ResultPayload = resultPayload
	return r
}

// TaxIDLength is the normalized taxpayer identifier length.
const TaxIDLength = 14

// NormalizeTaxID strips every non-digit character from raw. ok is false
// unless exactly 14 digits remain.
func NormalizeTaxID(raw string) (string, bool) {
	digits := make([]byte, 0, TaxIDLength)
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) != TaxIDLength {
		return "", false
	}
	return string(digits), true
}
