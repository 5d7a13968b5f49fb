package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeStatus is the lifecycle state of a CaptchaChallenge.
// PENDING -> SOLVED is the only transition. EXPIRED exists so an unexpected
// status fails loudly instead of being treated as solvable; no code path
// sets it.
type ChallengeStatus string

const (
	ChallengeStatusPending ChallengeStatus = "PENDING"
	ChallengeStatusSolved  ChallengeStatus = "SOLVED"
	ChallengeStatusExpired ChallengeStatus = "EXPIRED"
)

// CaptchaChallenge is a human-verification wall hit while processing a
// ServiceRequest. The automation records it and returns immediately; a
// human delivers the solution through an independent request later.
type CaptchaChallenge struct {
	ID               uuid.UUID       `json:"id"`
	ServiceRequestID uuid.UUID       `json:"service_request_id"`
	TaxID            string          `json:"tax_id"`
	Provider         string          `json:"provider"`
	SiteKey          string          `json:"site_key"`
	PageURL          string          `json:"page_url"`
	ContextKey       string          `json:"context_key"`
	Status           ChallengeStatus `json:"status"`
	CreatedByUserID  uuid.UUID       `json:"created_by_user_id"`
	CreatedByEmail   string          `json:"created_by_email"`
	CreatedAt        time.Time       `json:"created_at"`
	SolvedAt         *time.Time      `json:"solved_at,omitempty"`
	SolutionToken    *string         `json:"solution_token,omitempty"`
}
