package services

import (
	"context"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// CustomerSvcFacade defines operations on the customer catalog.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, actor domain.User, req dto.CreateCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, actor domain.User, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer without cascading to projects or
	// entries; reports resolve the resulting dangling references to "Unknown".
	DeleteCustomer(ctx context.Context, actor domain.User, customerID string) error

	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// ProjectSvcFacade defines operations on the project catalog.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, actor domain.User, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, actor domain.User, projectID string) error

	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// ProjectsByCustomer returns the active projects of a customer, for
	// populating entry forms. Inactive projects stay valid for history only.
	ProjectsByCustomer(ctx context.Context, customerID string) ([]domain.Project, error)
}
