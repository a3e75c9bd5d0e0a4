package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
)

// workflowService is the week status state machine. It deliberately does not
// enforce the transition table: UpdateWeekStatus is a plain upsert and the
// table gates only the transport layer, matching where the original
// application performed that check.
type workflowService struct {
	BaseService
	weekRepo portsrepo.WeekStatusRepositoryFacade
}

// NewWorkflowService creates a new week status service.
func NewWorkflowService(weekRepo portsrepo.WeekStatusRepositoryFacade) portssvc.WorkflowSvcFacade {
	return &workflowService{weekRepo: weekRepo}
}

var _ portssvc.WorkflowSvcFacade = (*workflowService)(nil)

func validWeekStart(weekStart string) error {
	t, err := domain.ParseDate(weekStart)
	if err != nil {
		return fmt.Errorf("%w: invalid week start %q", apperrors.ErrValidation, weekStart)
	}
	if domain.WeekStartOf(t) != weekStart {
		return fmt.Errorf("%w: %s is not a Monday", apperrors.ErrValidation, weekStart)
	}
	return nil
}

func (s *workflowService) GetWeekStatus(ctx context.Context, weekStart string) (*domain.WeekStatus, error) {
	if err := validWeekStart(weekStart); err != nil {
		return nil, err
	}
	ws, err := s.weekRepo.FindWeekStatus(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to find week status %s: %w", weekStart, err)
	}
	return ws, nil
}

func (s *workflowService) EffectiveStatus(ctx context.Context, weekStart string) (domain.WeekStatusValue, error) {
	ws, err := s.GetWeekStatus(ctx, weekStart)
	if err != nil {
		return "", err
	}
	if ws == nil {
		return domain.StatusDraft, nil
	}
	return ws.Status, nil
}

func (s *workflowService) ListWeekStatuses(ctx context.Context) ([]domain.WeekStatus, error) {
	statuses, err := s.weekRepo.FindWeekStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list week statuses: %w", err)
	}
	return statuses, nil
}

func (s *workflowService) UpdateWeekStatus(ctx context.Context, actor domain.User, weekStart string, status domain.WeekStatusValue) (*domain.WeekStatus, error) {
	if err := validWeekStart(weekStart); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	existing, err := s.weekRepo.FindWeekStatus(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to find week status %s: %w", weekStart, err)
	}

	now := time.Now()
	ws := domain.WeekStatus{WeekStart: weekStart, Status: status}
	if existing != nil {
		ws.AuditFields = existing.AuditFields
	} else {
		ws.CreatedAt = now
		ws.CreatedBy = actor.UserID
	}
	ws.LastUpdatedAt = now
	ws.LastUpdatedBy = actor.UserID

	if err := s.weekRepo.UpsertWeekStatus(ctx, ws); err != nil {
		s.LogError(ctx, err, "Failed to upsert week status", slog.String("week_start", weekStart))
		return nil, fmt.Errorf("failed to update week status: %w", err)
	}

	s.LogInfo(ctx, "Week status updated",
		slog.String("week_start", weekStart),
		slog.String("status", string(status)),
		slog.String("updated_by", actor.UserID))
	return &ws, nil
}

func (s *workflowService) EnsureWeek(ctx context.Context, actor domain.User, weekStart string) (*domain.WeekStatus, error) {
	existing, err := s.GetWeekStatus(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.UpdateWeekStatus(ctx, actor, weekStart, domain.StatusDraft)
}

func (s *workflowService) CanEditTimesheet(ctx context.Context, weekStart string, actor domain.User) (bool, error) {
	if actor.CanManageTimesheets() {
		return true, nil
	}
	status, err := s.EffectiveStatus(ctx, weekStart)
	if err != nil {
		return false, err
	}
	return status.Editable(), nil
}
