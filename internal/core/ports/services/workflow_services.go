package services

import (
	"context"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// WorkflowSvcFacade is the week status state machine.
//
// UpdateWeekStatus upserts unconditionally; the transition table in the domain
// package gates the transport layer only, mirroring the original application
// where the UI performed that check.
type WorkflowSvcFacade interface {
	// GetWeekStatus returns the explicit record for a week, or nil when the
	// week is implicitly draft.
	GetWeekStatus(ctx context.Context, weekStart string) (*domain.WeekStatus, error)

	// EffectiveStatus resolves the status of a week, treating a missing
	// record as draft.
	EffectiveStatus(ctx context.Context, weekStart string) (domain.WeekStatusValue, error)

	// ListWeekStatuses returns every explicit status record.
	ListWeekStatuses(ctx context.Context) ([]domain.WeekStatus, error)

	// UpdateWeekStatus creates or overwrites the week's status. Idempotent.
	UpdateWeekStatus(ctx context.Context, actor domain.User, weekStart string, status domain.WeekStatusValue) (*domain.WeekStatus, error)

	// EnsureWeek creates the implicit draft record for a week that has none.
	EnsureWeek(ctx context.Context, actor domain.User, weekStart string) (*domain.WeekStatus, error)

	// CanEditTimesheet is the single editability gate consulted by every time
	// entry mutation: admins always, others only while draft or reopened.
	CanEditTimesheet(ctx context.Context, weekStart string, actor domain.User) (bool, error)
}
