package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// ReportingSvcFacade computes aggregations over stored entries. The math lives
// in pure functions in the domain package; this facade binds them to the store.
type ReportingSvcFacade interface {
	// DailyTotal sums the hours logged on one calendar date.
	DailyTotal(ctx context.Context, date time.Time) (decimal.Decimal, error)

	// WeeklyTotal sums the hours of the seven days starting at weekStart.
	WeeklyTotal(ctx context.Context, weekStart time.Time) (decimal.Decimal, error)

	// WeekReport groups a week's entries by customer then project.
	WeekReport(ctx context.Context, weekStart time.Time) (*domain.WeekReport, error)
}

// BudgetSvcFacade converts logged hours into day-equivalents and cost against
// a project's budget.
type BudgetSvcFacade interface {
	// ProjectActuals returns the days and cost logged against a project.
	ProjectActuals(ctx context.Context, projectID string) (*domain.ProjectActuals, error)

	// ProjectBudget returns actuals alongside remaining budget and
	// clamped utilization percentages.
	ProjectBudget(ctx context.Context, projectID string) (*domain.ProjectBudgetReport, error)
}
