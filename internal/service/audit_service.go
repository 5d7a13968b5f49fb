package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/internal/metrics"
	"taxhub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type auditService struct {
	repo    ports.AuditEventRepository
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewAuditService creates the ledger writer. Record is synchronous: the
// caller only proceeds once the event row exists, so audit order follows
// business order. metrics may be nil.
func NewAuditService(repo ports.AuditEventRepository, m *metrics.Metrics, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, metrics: m, log: log}
}

// Record appends one event to the ledger.
func (s *auditService) Record(ctx context.Context, cmd ports.RecordAuditCommand) error {
	event := &domain.AuditEvent{
		ID:         uuid.New(),
		EventType:  cmd.EventType,
		OccurredAt: time.Now().UTC(),
		Success:    cmd.Success,
	}

	if cmd.Actor != nil {
		actorID := cmd.Actor.UserID
		actorEmail := cmd.Actor.Email
		event.ActorUserID = &actorID
		event.ActorEmail = &actorEmail
	}
	if cmd.HTTP.ClientIP != "" {
		event.RequestIP = &cmd.HTTP.ClientIP
	}
	if cmd.HTTP.Method != "" {
		event.RequestMethod = &cmd.HTTP.Method
	}
	if cmd.HTTP.Path != "" {
		event.RequestPath = &cmd.HTTP.Path
	}
	if cmd.HTTP.UserAgent != "" {
		event.UserAgent = &cmd.HTTP.UserAgent
	}
	if cmd.TargetType != "" {
		targetType := cmd.TargetType
		event.TargetType = &targetType
	}
	if cmd.TargetID != nil {
		targetID := *cmd.TargetID
		event.TargetID = &targetID
	}

	// Extra keys win over Details; empty merges store SQL NULL, never "{}".
	merged := domain.MergeDetails(cmd.Details, cmd.Extra)
	if merged != nil {
		raw, err := json.Marshal(merged)
		if err != nil {
			return apperror.ErrAuditSerialization(err)
		}
		detailsJSON := string(raw)
		event.DetailsJSON = &detailsJSON
	}

	if err := s.repo.Append(ctx, event); err != nil {
		s.metrics.IncrementAuditAppendFailures()
		return apperror.InternalError(fmt.Errorf("append audit event: %w", err))
	}

	s.log.Info().
		Str("event_type", string(event.EventType)).
		Bool("success", event.Success).
		Msg("audit")

	return nil
}
