// Package memory provides the reference in-memory store. Every operation is a
// single atomic read-modify-write under one lock, so time entry mutations and
// week status transitions for the same week never interleave.
package memory

import (
	"sync"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// Store holds all collections behind one mutex. Slices preserve insertion
// order; report grouping depends on it.
type Store struct {
	mu           sync.RWMutex
	users        []domain.User
	customers    []domain.Customer
	projects     []domain.Project
	entries      []domain.TimeEntry
	weekStatuses map[string]domain.WeekStatus
	weekOrder    []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{weekStatuses: make(map[string]domain.WeekStatus)}
}

// NewRepositoryProvider wraps a store in the repository facades the service
// container expects.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       &UserRepository{store: s},
		CustomerRepo:   &CustomerRepository{store: s},
		ProjectRepo:    &ProjectRepository{store: s},
		TimeEntryRepo:  &TimeEntryRepository{store: s},
		WeekStatusRepo: &WeekStatusRepository{store: s},
	}
}
