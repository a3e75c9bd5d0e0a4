package repositories

import (
	"context"
	"time"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// TimeEntryReader defines read operations for time entries. Implementations
// must preserve insertion order; report grouping depends on it.
type TimeEntryReader interface {
	// FindEntryByID retrieves an entry by ID. Returns (nil, nil) when absent.
	FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// FindEntries retrieves all entries in insertion order.
	FindEntries(ctx context.Context) ([]domain.TimeEntry, error)

	// FindEntriesByDate retrieves entries logged on a single calendar date.
	FindEntriesByDate(ctx context.Context, date time.Time) ([]domain.TimeEntry, error)

	// FindEntriesInRange retrieves entries with from <= date <= to.
	FindEntriesInRange(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)

	// FindEntriesByProject retrieves all entries logged against a project.
	FindEntriesByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error)
}

// TimeEntryWriter defines write operations for time entries.
type TimeEntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.TimeEntry) error
	UpdateEntry(ctx context.Context, entry domain.TimeEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

// TimeEntryRepositoryFacade combines all time-entry repository interfaces.
type TimeEntryRepositoryFacade interface {
	TimeEntryReader
	TimeEntryWriter
}
