package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
)

// reportingService binds the pure aggregation functions in the domain package
// to the stores. It never mutates anything.
type reportingService struct {
	BaseService
	entryRepo    portsrepo.TimeEntryReader
	customerRepo portsrepo.CustomerReader
	projectRepo  portsrepo.ProjectReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(entryRepo portsrepo.TimeEntryReader, customerRepo portsrepo.CustomerReader, projectRepo portsrepo.ProjectReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DailyTotal(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	entries, err := s.entryRepo.FindEntriesByDate(ctx, domain.NormalizeDate(date))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load entries for %s: %w", domain.FormatDate(date), err)
	}
	return domain.DailyTotal(entries, date), nil
}

func (s *reportingService) WeeklyTotal(ctx context.Context, weekStart time.Time) (decimal.Decimal, error) {
	from, to := domain.WeekRange(weekStart)
	entries, err := s.entryRepo.FindEntriesInRange(ctx, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load entries for week %s: %w", domain.FormatDate(from), err)
	}
	return domain.WeeklyTotal(entries, weekStart), nil
}

// nameMaps loads the id->name lookups the grouping needs. Dangling references
// resolve to "Unknown" downstream, so load errors are the only failure mode.
func (s *reportingService) nameMaps(ctx context.Context) (map[string]string, map[string]string, error) {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load customers: %w", err)
	}
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load projects: %w", err)
	}

	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.CustomerID] = c.Name
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ProjectID] = p.Name
	}
	return customerNames, projectNames, nil
}

func (s *reportingService) WeekReport(ctx context.Context, weekStart time.Time) (*domain.WeekReport, error) {
	from, to := domain.WeekRange(weekStart)
	entries, err := s.entryRepo.FindEntriesInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for week %s: %w", domain.FormatDate(from), err)
	}

	customerNames, projectNames, err := s.nameMaps(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.WeekReport{
		WeekStart:  domain.FormatDate(from),
		From:       from,
		To:         to,
		TotalHours: domain.TotalHours(entries),
		Customers:  domain.GroupByCustomerProject(entries, customerNames, projectNames),
	}

	s.LogDebug(ctx, "Week report generated",
		slog.String("week_start", report.WeekStart),
		slog.Int("entry_count", len(entries)))
	return report, nil
}
