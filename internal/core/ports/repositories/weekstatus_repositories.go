package repositories

import (
	"context"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// WeekStatusReader defines read operations for week status records.
type WeekStatusReader interface {
	// FindWeekStatus retrieves the status record for a week key.
	// Returns (nil, nil) when the week has no record (implicitly draft).
	FindWeekStatus(ctx context.Context, weekStart string) (*domain.WeekStatus, error)

	// FindWeekStatuses retrieves all explicit status records.
	FindWeekStatuses(ctx context.Context) ([]domain.WeekStatus, error)
}

// WeekStatusWriter defines write operations for week status records.
type WeekStatusWriter interface {
	// UpsertWeekStatus creates or overwrites the record for a week.
	// Records are never deleted.
	UpsertWeekStatus(ctx context.Context, status domain.WeekStatus) error
}

// WeekStatusRepositoryFacade combines the week status repository interfaces.
type WeekStatusRepositoryFacade interface {
	WeekStatusReader
	WeekStatusWriter
}
