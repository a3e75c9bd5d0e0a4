package memory

import (
	"context"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// WeekStatusRepository stores week status records in memory. Records are
// upserted, never deleted.
type WeekStatusRepository struct {
	store *Store
}

var _ portsrepo.WeekStatusRepositoryFacade = (*WeekStatusRepository)(nil)

func (r *WeekStatusRepository) UpsertWeekStatus(_ context.Context, status domain.WeekStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.weekStatuses[status.WeekStart]; !exists {
		r.store.weekOrder = append(r.store.weekOrder, status.WeekStart)
	}
	r.store.weekStatuses[status.WeekStart] = status
	return nil
}

func (r *WeekStatusRepository) FindWeekStatus(_ context.Context, weekStart string) (*domain.WeekStatus, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	ws, ok := r.store.weekStatuses[weekStart]
	if !ok {
		return nil, nil
	}
	return &ws, nil
}

func (r *WeekStatusRepository) FindWeekStatuses(_ context.Context) ([]domain.WeekStatus, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	statuses := make([]domain.WeekStatus, 0, len(r.store.weekOrder))
	for _, key := range r.store.weekOrder {
		statuses = append(statuses, r.store.weekStatuses[key])
	}
	return statuses, nil
}
