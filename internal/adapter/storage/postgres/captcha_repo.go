package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxhub/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CaptchaChallengeRepo implements ports.CaptchaChallengeRepository.
type CaptchaChallengeRepo struct {
	pool Pool
}

// NewCaptchaChallengeRepo creates a new CaptchaChallengeRepo.
func NewCaptchaChallengeRepo(pool Pool) *CaptchaChallengeRepo {
	return &CaptchaChallengeRepo{pool: pool}
}

// Create inserts a new captcha challenge.
func (r *CaptchaChallengeRepo) Create(ctx context.Context, ch *domain.CaptchaChallenge) error {
	query := `INSERT INTO captcha_challenges (id, service_request_id, tax_id, provider, site_key, page_url, context_key, status, created_by_user_id, created_by_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		ch.ID, ch.ServiceRequestID, ch.TaxID, ch.Provider, ch.SiteKey,
		ch.PageURL, ch.ContextKey, ch.Status,
		ch.CreatedByUserID, ch.CreatedByEmail, ch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert captcha challenge: %w", err)
	}
	return nil
}

// GetByID fetches a challenge by its UUID.
func (r *CaptchaChallengeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CaptchaChallenge, error) {
	query := `SELECT id, service_request_id, tax_id, provider, site_key, page_url, context_key, status, created_by_user_id, created_by_email, created_at, solved_at, solution_token
		FROM captcha_challenges WHERE id = $1`

	ch := &domain.CaptchaChallenge{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ch.ID, &ch.ServiceRequestID, &ch.TaxID, &ch.Provider, &ch.SiteKey,
		&ch.PageURL, &ch.ContextKey, &ch.Status,
		&ch.CreatedByUserID, &ch.CreatedByEmail, &ch.CreatedAt,
		&ch.SolvedAt, &ch.SolutionToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get captcha challenge by id: %w", err)
	}
	return ch, nil
}

// MarkSolved transitions a PENDING challenge to SOLVED. The status guard in
// the WHERE clause makes the transition atomic: of two racing solvers,
// exactly one sees rows affected.
func (r *CaptchaChallengeRepo) MarkSolved(ctx context.Context, id uuid.UUID, solutionToken string, solvedAt time.Time) (bool, error) {
	query := `UPDATE captcha_challenges
		SET status=$1, solution_token=$2, solved_at=$3
		WHERE id=$4 AND status=$5`

	tag, err := r.pool.Exec(ctx, query,
		domain.ChallengeStatusSolved, solutionToken, solvedAt,
		id, domain.ChallengeStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("mark challenge solved: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
