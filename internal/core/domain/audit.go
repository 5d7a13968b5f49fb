package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEventType identifies the occurrence an audit event documents.
type AuditEventType string

const (
	AuditUserCreated           AuditEventType = "USER_CREATED"
	AuditLoginSuccess          AuditEventType = "AUTH_LOGIN_SUCCESS"
	AuditLoginFailure          AuditEventType = "AUTH_LOGIN_FAILURE"
	AuditServiceRequested      AuditEventType = "SERVICE_REQUESTED"
	AuditServiceRequestCreated AuditEventType = "SERVICE_REQUEST_CREATED"
	AuditServiceRequestSuccess AuditEventType = "SERVICE_REQUEST_SUCCESS"
	AuditServiceRequestFailure AuditEventType = "SERVICE_REQUEST_FAILURE"
	AuditChallengeCreated      AuditEventType = "CAPTCHA_CHALLENGE_CREATED"
	AuditChallengeSolved       AuditEventType = "CAPTCHA_CHALLENGE_SOLVED"
)

// Audit target types.
const (
	TargetServiceRequest   = "SERVICE_REQUEST"
	TargetCaptchaChallenge = "CAPTCHA_CHALLENGE"
	TargetUser             = "USER"
)

// AuditEvent is one append-only ledger entry. No update or delete
// operation exists for it anywhere in the system.
type AuditEvent struct {
	ID            uuid.UUID      `json:"id"`
	EventType     AuditEventType `json:"event_type"`
	OccurredAt    time.Time      `json:"occurred_at"`
	ActorUserID   *uuid.UUID     `json:"actor_user_id,omitempty"`
	ActorEmail    *string        `json:"actor_email,omitempty"`
	RequestIP     *string        `json:"request_ip,omitempty"`
	RequestMethod *string        `json:"request_method,omitempty"`
	RequestPath   *string        `json:"request_path,omitempty"`
	UserAgent     *string        `json:"user_agent,omitempty"`
	Success       bool           `json:"success"`
	TargetType    *string        `json:"target_type,omitempty"`
	TargetID      *uuid.UUID     `json:"target_id,omitempty"`
	DetailsJSON   *string        `json:"details_json,omitempty"`
}

// MergeDetails merges override into base: keys from override win. The
// result is a fresh map; both inputs are left untouched. Call sites state
// the merge order so any audit detail is reproducible from its inputs.
func MergeDetails(base, override map[string]any) map[string]any {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
