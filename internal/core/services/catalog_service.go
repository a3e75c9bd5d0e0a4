package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// customerService manages the customer half of the catalog.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer catalog service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, actor domain.User, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		IsActive:      active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, actor domain.User, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
		}
		customer.Name = *req.Name
	}
	if req.ContactPerson != nil {
		customer.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Active != nil {
		customer.IsActive = *req.Active
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = actor.UserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, actor domain.User, customerID string) error {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	if customer == nil {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}

	// No cascade: projects and entries referencing this customer are left in
	// place and show up under "Unknown" in reports.
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID), slog.String("deleted_by", actor.UserID))
	return nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// projectService manages the project half of the catalog.
type projectService struct {
	BaseService
	projectRepo  portsrepo.ProjectRepositoryFacade
	customerRepo portsrepo.CustomerReader
	entryRepo    portsrepo.TimeEntryReader
}

// NewProjectService creates a new project catalog service. The entry reader is
// consulted to freeze a project's customer reference once time has been logged
// against it.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, customerRepo portsrepo.CustomerReader, entryRepo portsrepo.TimeEntryReader) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		entryRepo:    entryRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, actor domain.User, req dto.CreateProjectRequest) (*domain.Project, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", req.CustomerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		CustomerID:  req.CustomerID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    active,
		BudgetDays:  req.BudgetDays,
		BudgetCost:  req.BudgetCost,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, actor domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}

	if req.CustomerID != nil && *req.CustomerID != project.CustomerID {
		entries, err := s.entryRepo.FindEntriesByProject(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check entries for project %s: %w", projectID, err)
		}
		if len(entries) > 0 {
			return nil, fmt.Errorf("%w: customer reference is immutable once time has been logged", apperrors.ErrValidation)
		}
		customer, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to find customer %s: %w", *req.CustomerID, err)
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, *req.CustomerID)
		}
		project.CustomerID = *req.CustomerID
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
		}
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Active != nil {
		project.IsActive = *req.Active
	}
	if req.BudgetDays != nil {
		project.BudgetDays = req.BudgetDays
	}
	if req.BudgetCost != nil {
		project.BudgetCost = req.BudgetCost
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = actor.UserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, actor domain.User, projectID string) error {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project == nil {
		return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID), slog.String("deleted_by", actor.UserID))
	return nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) ProjectsByCustomer(ctx context.Context, customerID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.FindProjectsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for customer %s: %w", customerID, err)
	}
	active := projects[:0]
	for _, p := range projects {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}
