package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ServiceRequestRepo implements ports.ServiceRequestRepository.
type ServiceRequestRepo struct {
	pool Pool
}

// NewServiceRequestRepo creates a new ServiceRequestRepo.
func NewServiceRequestRepo(pool Pool) *ServiceRequestRepo {
	return &ServiceRequestRepo{pool: pool}
}

const requestColumns = `id, service_type, status, tax_id, requested_by_user_id, requested_by_email,
		requested_at, completed_at, result_code, result_message, result_payload`

// Create inserts a new service request.
func (r *ServiceRequestRepo) Create(ctx context.Context, req *domain.ServiceRequest) error {
	query := `INSERT INTO service_requests (id, service_type, status, tax_id, requested_by_user_id, requested_by_email, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.ServiceType, req.Status, req.TaxID,
		req.RequestedByUserID, req.RequestedByEmail, req.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service request: %w", err)
	}
	return nil
}

// GetByID fetches a service request by its UUID.
func (r *ServiceRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service request by id: %w", err)
	}
	return req, nil
}

// Complete persists the terminal snapshot of a request.
func (r *ServiceRequestRepo) Complete(ctx context.Context, req *domain.ServiceRequest) error {
	query := `UPDATE service_requests
		SET status=$1, completed_at=$2, result_code=$3, result_message=$4, result_payload=$5
		WHERE id=$6`

	_, err := r.pool.Exec(ctx, query,
		req.Status, req.CompletedAt, req.ResultCode, req.ResultMessage, req.ResultPayload, req.ID,
	)
	if err != nil {
		return fmt.Errorf("complete service request: %w", err)
	}
	return nil
}

// FindLatest returns up to params.Limit requests, newest first.
func (r *ServiceRequestRepo) FindLatest(ctx context.Context, params ports.RequestListParams) ([]domain.ServiceRequest, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + requestColumns + ` FROM service_requests`)

	var conds []string
	var args []any
	if params.RequesterID != nil {
		args = append(args, *params.RequesterID)
		conds = append(conds, "requested_by_user_id = $"+strconv.Itoa(len(args)))
	}
	if params.ServiceType != nil {
		args = append(args, *params.ServiceType)
		conds = append(conds, "service_type = $"+strconv.Itoa(len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	args = append(args, params.Limit)
	sb.WriteString(" ORDER BY requested_at DESC LIMIT $" + strconv.Itoa(len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.ServiceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service requests: %w", err)
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*domain.ServiceRequest, error) {
	req := &domain.ServiceRequest{}
	err := row.Scan(
		&req.ID, &req.ServiceType, &req.Status, &req.TaxID,
		&req.RequestedByUserID, &req.RequestedByEmail, &req.RequestedAt,
		&req.CompletedAt, &req.ResultCode, &req.ResultMessage, &req.ResultPayload,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}
