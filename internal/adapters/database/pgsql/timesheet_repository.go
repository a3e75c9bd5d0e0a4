package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// TimeEntryRepository stores time entries in Postgres. An entry_seq serial
// keeps insertion order stable for the report grouping.
type TimeEntryRepository struct {
	db *pgxpool.Pool
}

func NewTimeEntryRepository(db *pgxpool.Pool) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

var _ portsrepo.TimeEntryRepositoryFacade = (*TimeEntryRepository)(nil)

const entryColumns = `entry_id, user_id, entry_date, customer_id, project_id, hours, description, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.UserID,
		&entry.Date,
		&entry.CustomerID,
		&entry.ProjectID,
		&entry.Hours,
		&entry.Description,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	entry.Date = domain.NormalizeDate(entry.Date)
	return &entry, nil
}

func (r *TimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	query := `
        INSERT INTO time_entries (` + entryColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.UserID,
		entry.Date,
		entry.CustomerID,
		entry.ProjectID,
		entry.Hours,
		entry.Description,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	query := `
        UPDATE time_entries
        SET user_id = $2, entry_date = $3, customer_id = $4, project_id = $5, hours = $6, description = $7, last_updated_at = $8, last_updated_by = $9
        WHERE entry_id = $1;
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.UserID,
		entry.Date,
		entry.CustomerID,
		entry.ProjectID,
		entry.Hours,
		entry.Description,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM time_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find time entry by ID: %w", err)
	}
	return entry, nil
}

func (r *TimeEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.TimeEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", err)
	}
	return entries, nil
}

func (r *TimeEntryRepository) FindEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM time_entries ORDER BY entry_seq;`)
}

func (r *TimeEntryRepository) FindEntriesByDate(ctx context.Context, date time.Time) ([]domain.TimeEntry, error) {
	return r.queryEntries(ctx,
		`SELECT `+entryColumns+` FROM time_entries WHERE entry_date = $1 ORDER BY entry_seq;`,
		domain.NormalizeDate(date))
}

func (r *TimeEntryRepository) FindEntriesInRange(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	return r.queryEntries(ctx,
		`SELECT `+entryColumns+` FROM time_entries WHERE entry_date BETWEEN $1 AND $2 ORDER BY entry_seq;`,
		domain.NormalizeDate(from), domain.NormalizeDate(to))
}

func (r *TimeEntryRepository) FindEntriesByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error) {
	return r.queryEntries(ctx,
		`SELECT `+entryColumns+` FROM time_entries WHERE project_id = $1 ORDER BY entry_seq;`,
		projectID)
}
