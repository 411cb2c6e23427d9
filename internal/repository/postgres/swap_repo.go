package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/skillswap/internal/domain"
)

type SwapRepo struct {
	pool *pgxpool.Pool
}

func NewSwapRepo(pool *pgxpool.Pool) *SwapRepo {
	return &SwapRepo{pool: pool}
}

const swapColumns = `id, from_user_id, to_user_id, from_user_name, to_user_name, from_user_avatar, to_user_avatar, skill_offered, skill_requested, message, status, created_at, completed_at`

func (r *SwapRepo) Create(ctx context.Context, req *domain.SwapRequest) error {
	query := `
		INSERT INTO swap_requests (` + swapColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.FromUserID, req.ToUserID,
		req.FromUserName, req.ToUserName, req.FromUserAvatar, req.ToUserAvatar,
		req.SkillOffered, req.SkillRequested, req.Message,
		req.Status, req.CreatedAt, req.CompletedAt,
	)
	return err
}

func (r *SwapRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE id = $1`

	var req domain.SwapRequest
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.FromUserID, &req.ToUserID,
		&req.FromUserName, &req.ToUserName, &req.FromUserAvatar, &req.ToUserAvatar,
		&req.SkillOffered, &req.SkillRequested, &req.Message,
		&req.Status, &req.CreatedAt, &req.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &req, err
}

func (r *SwapRepo) Update(ctx context.Context, req *domain.SwapRequest) error {
	query := `
		UPDATE swap_requests
		SET status = $2, completed_at = $3
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, req.ID, req.Status, req.CompletedAt)
	return err
}

func (r *SwapRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM swap_requests WHERE id = $1`, id)
	return err
}

// Per-user listings follow ledger insertion order, so they sort by the
// insert sequence rather than by status or timestamp.
func (r *SwapRepo) ListBySender(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequest, error) {
	return r.list(ctx, `from_user_id`, userID)
}

func (r *SwapRepo) ListByReceiver(ctx context.Context, userID uuid.UUID) ([]domain.SwapRequest, error) {
	return r.list(ctx, `to_user_id`, userID)
}

func (r *SwapRepo) list(ctx context.Context, column string, userID uuid.UUID) ([]domain.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE ` + column + ` = $1 ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.SwapRequest
	for rows.Next() {
		var req domain.SwapRequest
		if err := rows.Scan(
			&req.ID, &req.FromUserID, &req.ToUserID,
			&req.FromUserName, &req.ToUserName, &req.FromUserAvatar, &req.ToUserAvatar,
			&req.SkillOffered, &req.SkillRequested, &req.Message,
			&req.Status, &req.CreatedAt, &req.CompletedAt,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
