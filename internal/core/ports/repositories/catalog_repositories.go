package repositories

import (
	"context"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by ID. Returns (nil, nil) when absent.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves all customers in creation order.
	FindCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer unconditionally; dependent projects and
	// entries are left dangling and resolve to "Unknown" in reports.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by ID. Returns (nil, nil) when absent.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjects retrieves all projects in creation order.
	FindProjects(ctx context.Context) ([]domain.Project, error)

	// FindProjectsByCustomer retrieves every project of a customer,
	// active or not. Active-only filtering is a service concern.
	FindProjectsByCustomer(ctx context.Context, customerID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
