package memory

import (
	"context"
	"fmt"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

// CustomerRepository stores customers in memory.
type CustomerRepository struct {
	store *Store
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

func (r *CustomerRepository) SaveCustomer(_ context.Context, customer domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.CustomerID == customer.CustomerID {
			return fmt.Errorf("%w: customer %s", apperrors.ErrDuplicate, customer.CustomerID)
		}
	}
	r.store.customers = append(r.store.customers, customer)
	return nil
}

func (r *CustomerRepository) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.customers {
		if r.store.customers[i].CustomerID == customer.CustomerID {
			r.store.customers[i] = customer
			return nil
		}
	}
	return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customer.CustomerID)
}

func (r *CustomerRepository) DeleteCustomer(_ context.Context, customerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.customers {
		if r.store.customers[i].CustomerID == customerID {
			r.store.customers = append(r.store.customers[:i], r.store.customers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
}

func (r *CustomerRepository) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.customers {
		if c.CustomerID == customerID {
			customer := c
			return &customer, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) FindCustomers(_ context.Context) ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	customers := make([]domain.Customer, len(r.store.customers))
	copy(customers, r.store.customers)
	return customers, nil
}

// ProjectRepository stores projects in memory.
type ProjectRepository struct {
	store *Store
}

var _ portsrepo.ProjectRepositoryFacade = (*ProjectRepository)(nil)

func (r *ProjectRepository) SaveProject(_ context.Context, project domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.projects {
		if p.ProjectID == project.ProjectID {
			return fmt.Errorf("%w: project %s", apperrors.ErrDuplicate, project.ProjectID)
		}
	}
	r.store.projects = append(r.store.projects, project)
	return nil
}

func (r *ProjectRepository) UpdateProject(_ context.Context, project domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.projects {
		if r.store.projects[i].ProjectID == project.ProjectID {
			r.store.projects[i] = project
			return nil
		}
	}
	return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, project.ProjectID)
}

func (r *ProjectRepository) DeleteProject(_ context.Context, projectID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.projects {
		if r.store.projects[i].ProjectID == projectID {
			r.store.projects = append(r.store.projects[:i], r.store.projects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
}

func (r *ProjectRepository) FindProjectByID(_ context.Context, projectID string) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.projects {
		if p.ProjectID == projectID {
			project := p
			return &project, nil
		}
	}
	return nil, nil
}

func (r *ProjectRepository) FindProjects(_ context.Context) ([]domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	projects := make([]domain.Project, len(r.store.projects))
	copy(projects, r.store.projects)
	return projects, nil
}

func (r *ProjectRepository) FindProjectsByCustomer(_ context.Context, customerID string) ([]domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var projects []domain.Project
	for _, p := range r.store.projects {
		if p.CustomerID == customerID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}
