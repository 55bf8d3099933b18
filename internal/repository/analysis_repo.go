package repository

import (
	"context"
	"fmt"

	"meowscope/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisRepository appends to and reads the analysis history.
type AnalysisRepository interface {
	// CreateEntry inserts e and fills in its id and creation time.
	CreateEntry(ctx context.Context, e *model.AnalysisHistoryEntry) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.AnalysisHistoryEntry, error)
}

type analysisRepo struct {
	pool *pgxpool.Pool
}

// NewAnalysisRepo creates a new AnalysisRepository.
func NewAnalysisRepo(pool *pgxpool.Pool) AnalysisRepository {
	return &analysisRepo{pool: pool}
}

func (r *analysisRepo) CreateEntry(ctx context.Context, e *model.AnalysisHistoryEntry) error {
	const q = `
        INSERT INTO analysis_history (user_id, category, confidence, fgc_code)
        VALUES ($1, $2, $3, $4)
        RETURNING id::text, created_at
    `
	if err := r.pool.QueryRow(ctx, q, e.UserID, e.Category, e.Confidence, e.FGCCode).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("insert analysis history for user %s: %w", e.UserID, err)
	}
	return nil
}

func (r *analysisRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.AnalysisHistoryEntry, error) {
	const q = `
        SELECT id::text AS id, user_id::text AS user_id, category, confidence, fgc_code, created_at
        FROM analysis_history
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.pool.Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list analysis history for user %s: %w", userID, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.AnalysisHistoryEntry])
	if err != nil {
		return nil, fmt.Errorf("scan analysis history for user %s: %w", userID, err)
	}
	return entries, nil
}
