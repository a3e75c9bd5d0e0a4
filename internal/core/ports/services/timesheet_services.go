package services

import (
	"context"
	"time"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// TimesheetReaderSvc defines read operations over time entries.
type TimesheetReaderSvc interface {
	// GetEntryByID retrieves a single entry.
	GetEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// EntriesForDate retrieves the entries logged on one calendar date.
	EntriesForDate(ctx context.Context, date time.Time) ([]domain.TimeEntry, error)

	// EntriesForWeek retrieves the entries of [weekStart, weekStart+6].
	EntriesForWeek(ctx context.Context, weekStart time.Time) ([]domain.TimeEntry, error)
}

// TimesheetWriterSvc defines the week-lock-gated entry mutations.
type TimesheetWriterSvc interface {
	// AddTimeEntry validates and appends a new entry, creating the owning
	// week's draft status record when none exists yet.
	AddTimeEntry(ctx context.Context, actor domain.User, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error)

	// UpdateTimeEntry replaces an entry by ID, re-checking the week lock for
	// both the stored and the requested date.
	UpdateTimeEntry(ctx context.Context, actor domain.User, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error)

	// DeleteTimeEntry removes an entry, subject to the same week lock.
	DeleteTimeEntry(ctx context.Context, actor domain.User, entryID string) error
}

// TimesheetSvcFacade combines the timesheet service interfaces.
type TimesheetSvcFacade interface {
	TimesheetReaderSvc
	TimesheetWriterSvc
}
