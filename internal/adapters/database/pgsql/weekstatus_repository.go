package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

type WeekStatusRepository struct {
	db *pgxpool.Pool
}

func NewWeekStatusRepository(db *pgxpool.Pool) *WeekStatusRepository {
	return &WeekStatusRepository{db: db}
}

var _ portsrepo.WeekStatusRepositoryFacade = (*WeekStatusRepository)(nil)

func (r *WeekStatusRepository) UpsertWeekStatus(ctx context.Context, status domain.WeekStatus) error {
	query := `
        INSERT INTO week_statuses (week_start, status, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (week_start) DO UPDATE SET
            status = EXCLUDED.status,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		status.WeekStart,
		status.Status,
		status.CreatedAt,
		status.CreatedBy,
		status.LastUpdatedAt,
		status.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert week status: %w", err)
	}
	return nil
}

func (r *WeekStatusRepository) FindWeekStatus(ctx context.Context, weekStart string) (*domain.WeekStatus, error) {
	query := `
        SELECT week_start, status, created_at, created_by, last_updated_at, last_updated_by
        FROM week_statuses
        WHERE week_start = $1;
    `
	var ws domain.WeekStatus
	err := r.db.QueryRow(ctx, query, weekStart).Scan(
		&ws.WeekStart,
		&ws.Status,
		&ws.CreatedAt,
		&ws.CreatedBy,
		&ws.LastUpdatedAt,
		&ws.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // implicitly draft
		}
		return nil, fmt.Errorf("failed to find week status: %w", err)
	}
	return &ws, nil
}

func (r *WeekStatusRepository) FindWeekStatuses(ctx context.Context) ([]domain.WeekStatus, error) {
	query := `
        SELECT week_start, status, created_at, created_by, last_updated_at, last_updated_by
        FROM week_statuses
        ORDER BY week_start;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query week statuses: %w", err)
	}
	defer rows.Close()

	statuses := []domain.WeekStatus{}
	for rows.Next() {
		var ws domain.WeekStatus
		if err := rows.Scan(
			&ws.WeekStart,
			&ws.Status,
			&ws.CreatedAt,
			&ws.CreatedBy,
			&ws.LastUpdatedAt,
			&ws.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan week status row: %w", err)
		}
		statuses = append(statuses, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating week status rows: %w", err)
	}
	return statuses, nil
}
