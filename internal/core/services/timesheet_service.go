package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// timesheetService holds the time entry store. Every mutation goes through the
// week status lock; adding an entry to a week with no status record creates
// that record as draft.
type timesheetService struct {
	BaseService
	entryRepo    portsrepo.TimeEntryRepositoryFacade
	customerRepo portsrepo.CustomerReader
	projectRepo  portsrepo.ProjectReader
	workflow     portssvc.WorkflowSvcFacade
}

// NewTimesheetService creates a new timesheet service.
func NewTimesheetService(
	entryRepo portsrepo.TimeEntryRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	projectRepo portsrepo.ProjectReader,
	workflow portssvc.WorkflowSvcFacade,
) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
		workflow:     workflow,
	}
}

var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// validateReferences checks the customer/project pair of an entry.
func (s *timesheetService) validateReferences(ctx context.Context, customerID, projectID string) error {
	if customerID == "" {
		return fmt.Errorf("%w: customer is required", apperrors.ErrValidation)
	}
	if projectID == "" {
		return fmt.Errorf("%w: project is required", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	if customer == nil {
		return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, customerID)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project == nil {
		return fmt.Errorf("%w: project %s does not exist", apperrors.ErrValidation, projectID)
	}
	if project.CustomerID != customerID {
		return fmt.Errorf("%w: project %s does not belong to customer %s", apperrors.ErrValidation, projectID, customerID)
	}
	return nil
}

func validateHours(hours decimal.Decimal) error {
	if hours.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: hours must be greater than zero", apperrors.ErrValidation)
	}
	return nil
}

// checkWeekEditable resolves the week of date and enforces the lock.
func (s *timesheetService) checkWeekEditable(ctx context.Context, date time.Time, actor domain.User) (string, error) {
	weekStart := domain.WeekStartOf(date)
	editable, err := s.workflow.CanEditTimesheet(ctx, weekStart, actor)
	if err != nil {
		return "", err
	}
	if !editable {
		return "", fmt.Errorf("%w: week %s is not editable for %s", apperrors.ErrLockedWeek, weekStart, actor.UserID)
	}
	return weekStart, nil
}

func (s *timesheetService) AddTimeEntry(ctx context.Context, actor domain.User, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	if err := validateHours(req.Hours); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, req.CustomerID, req.ProjectID); err != nil {
		return nil, err
	}

	ownerID := actor.UserID
	if req.UserID != "" && req.UserID != actor.UserID {
		if !actor.CanManageTimesheets() {
			return nil, fmt.Errorf("%w: only admins may log time for another user", apperrors.ErrForbidden)
		}
		ownerID = req.UserID
	}

	weekStart, err := s.checkWeekEditable(ctx, date, actor)
	if err != nil {
		return nil, err
	}
	// The week record is created as draft before the entry lands, so a week
	// that has ever held an entry always has an explicit status.
	if _, err := s.workflow.EnsureWeek(ctx, actor, weekStart); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.TimeEntry{
		EntryID:     uuid.NewString(),
		UserID:      ownerID,
		Date:        domain.NormalizeDate(date),
		CustomerID:  req.CustomerID,
		ProjectID:   req.ProjectID,
		Hours:       req.Hours,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save time entry", slog.String("week_start", weekStart))
		return nil, fmt.Errorf("failed to add time entry: %w", err)
	}

	s.LogInfo(ctx, "Time entry added",
		slog.String("entry_id", entry.EntryID),
		slog.String("week_start", weekStart),
		slog.String("project_id", entry.ProjectID))
	return &entry, nil
}

func (s *timesheetService) UpdateTimeEntry(ctx context.Context, actor domain.User, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: time entry %s", apperrors.ErrNotFound, entryID)
	}

	// The stored week must be editable before anything moves out of it.
	if _, err := s.checkWeekEditable(ctx, entry.Date, actor); err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		entry.Date = domain.NormalizeDate(date)
	}
	if req.CustomerID != nil {
		entry.CustomerID = *req.CustomerID
	}
	if req.ProjectID != nil {
		entry.ProjectID = *req.ProjectID
	}
	if req.Hours != nil {
		if err := validateHours(*req.Hours); err != nil {
			return nil, err
		}
		entry.Hours = *req.Hours
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if err := s.validateReferences(ctx, entry.CustomerID, entry.ProjectID); err != nil {
		return nil, err
	}

	// Re-resolve the week from the (possibly changed) date; the target week
	// must be editable too, and gains an implicit draft record if new.
	weekStart, err := s.checkWeekEditable(ctx, entry.Date, actor)
	if err != nil {
		return nil, err
	}
	if _, err := s.workflow.EnsureWeek(ctx, actor, weekStart); err != nil {
		return nil, err
	}

	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = actor.UserID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update time entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}
	return entry, nil
}

func (s *timesheetService) DeleteTimeEntry(ctx context.Context, actor domain.User, entryID string) error {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry == nil {
		return fmt.Errorf("%w: time entry %s", apperrors.ErrNotFound, entryID)
	}

	if _, err := s.checkWeekEditable(ctx, entry.Date, actor); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete time entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	s.LogInfo(ctx, "Time entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", actor.UserID))
	return nil
}

func (s *timesheetService) GetEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: time entry %s", apperrors.ErrNotFound, entryID)
	}
	return entry, nil
}

func (s *timesheetService) EntriesForDate(ctx context.Context, date time.Time) ([]domain.TimeEntry, error) {
	entries, err := s.entryRepo.FindEntriesByDate(ctx, domain.NormalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to find entries for %s: %w", domain.FormatDate(date), err)
	}
	return entries, nil
}

func (s *timesheetService) EntriesForWeek(ctx context.Context, weekStart time.Time) ([]domain.TimeEntry, error) {
	from, to := domain.WeekRange(weekStart)
	entries, err := s.entryRepo.FindEntriesInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries for week %s: %w", domain.FormatDate(from), err)
	}
	return entries, nil
}
