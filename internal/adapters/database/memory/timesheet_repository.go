package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// TimeEntryRepository stores time entries in memory, preserving insertion
// order for the report grouping.
type TimeEntryRepository struct {
	store *Store
}

var _ portsrepo.TimeEntryRepositoryFacade = (*TimeEntryRepository)(nil)

func (r *TimeEntryRepository) SaveEntry(_ context.Context, entry domain.TimeEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.entries {
		if e.EntryID == entry.EntryID {
			return fmt.Errorf("%w: time entry %s", apperrors.ErrDuplicate, entry.EntryID)
		}
	}
	r.store.entries = append(r.store.entries, entry)
	return nil
}

func (r *TimeEntryRepository) UpdateEntry(_ context.Context, entry domain.TimeEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.entries {
		if r.store.entries[i].EntryID == entry.EntryID {
			r.store.entries[i] = entry
			return nil
		}
	}
	return fmt.Errorf("%w: time entry %s", apperrors.ErrNotFound, entry.EntryID)
}

func (r *TimeEntryRepository) DeleteEntry(_ context.Context, entryID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.entries {
		if r.store.entries[i].EntryID == entryID {
			r.store.entries = append(r.store.entries[:i], r.store.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: time entry %s", apperrors.ErrNotFound, entryID)
}

func (r *TimeEntryRepository) FindEntryByID(_ context.Context, entryID string) (*domain.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, e := range r.store.entries {
		if e.EntryID == entryID {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *TimeEntryRepository) FindEntries(_ context.Context) ([]domain.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	entries := make([]domain.TimeEntry, len(r.store.entries))
	copy(entries, r.store.entries)
	return entries, nil
}

func (r *TimeEntryRepository) FindEntriesByDate(_ context.Context, date time.Time) ([]domain.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	date = domain.NormalizeDate(date)
	var entries []domain.TimeEntry
	for _, e := range r.store.entries {
		if domain.NormalizeDate(e.Date).Equal(date) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *TimeEntryRepository) FindEntriesInRange(_ context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	from = domain.NormalizeDate(from)
	to = domain.NormalizeDate(to)
	var entries []domain.TimeEntry
	for _, e := range r.store.entries {
		d := domain.NormalizeDate(e.Date)
		if !d.Before(from) && !d.After(to) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *TimeEntryRepository) FindEntriesByProject(_ context.Context, projectID string) ([]domain.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var entries []domain.TimeEntry
	for _, e := range r.store.entries {
		if e.ProjectID == projectID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
