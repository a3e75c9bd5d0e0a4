package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
)

// budgetService converts logged hours into day-equivalents and cost against
// project budgets. Cost attribution follows each entry's owner rate.
type budgetService struct {
	BaseService
	entryRepo   portsrepo.TimeEntryReader
	projectRepo portsrepo.ProjectReader
	userRepo    portsrepo.UserReader
}

// NewBudgetService creates a new budget actuals service.
func NewBudgetService(entryRepo portsrepo.TimeEntryReader, projectRepo portsrepo.ProjectReader, userRepo portsrepo.UserReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	rates := make(map[string]decimal.Decimal, len(users))
	for _, u := range users {
		if u.DailyRate != nil {
			rates[u.UserID] = *u.DailyRate
		}
	}
	return rates, nil
}

func (s *budgetService) ProjectActuals(ctx context.Context, projectID string) (*domain.ProjectActuals, error) {
	entries, err := s.entryRepo.FindEntriesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for project %s: %w", projectID, err)
	}
	rates, err := s.rates(ctx)
	if err != nil {
		return nil, err
	}
	actuals := domain.ComputeActuals(entries, rates)
	return &actuals, nil
}

func (s *budgetService) ProjectBudget(ctx context.Context, projectID string) (*domain.ProjectBudgetReport, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}

	actuals, err := s.ProjectActuals(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectBudgetReport{
		Project:                *project,
		Actuals:                *actuals,
		DaysRemaining:          domain.Remaining(actuals.Days, project.BudgetDays),
		CostRemaining:          domain.Remaining(actuals.Cost, project.BudgetCost),
		DaysUtilizationPercent: domain.UtilizationPercent(actuals.Days, project.BudgetDays),
		CostUtilizationPercent: domain.UtilizationPercent(actuals.Cost, project.BudgetCost),
	}, nil
}
