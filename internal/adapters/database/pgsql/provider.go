package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all Postgres repositories over one pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       NewUserRepository(db),
		CustomerRepo:   NewCustomerRepository(db),
		ProjectRepo:    NewProjectRepository(db),
		TimeEntryRepo:  NewTimeEntryRepository(db),
		WeekStatusRepo: NewWeekStatusRepository(db),
	}
}
