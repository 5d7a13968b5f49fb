package postgres

import (
	"context"
	"fmt"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditEventRepo creates a PostgreSQL-backed AuditEventRepository.
// The table carries no UPDATE or DELETE path; rows only accumulate.
func NewAuditEventRepo(pool Pool) ports.AuditEventRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Append(ctx context.Context, event *domain.AuditEvent) error {
	query := `INSERT INTO audit_events (id, event_type, occurred_at, actor_user_id, actor_email, request_ip, request_method, request_path, user_agent, success, target_type, target_id, details_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		event.ID, event.EventType, event.OccurredAt,
		event.ActorUserID, event.ActorEmail,
		event.RequestIP, event.RequestMethod, event.RequestPath, event.UserAgent,
		event.Success, event.TargetType, event.TargetID, event.DetailsJSON,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}
