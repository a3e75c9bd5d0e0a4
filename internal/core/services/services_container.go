package services

import (
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workflow first: the timesheet service consults it for the week lock.
	container.Workflow = NewWorkflowService(repos.WeekStatusRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.CustomerRepo, repos.TimeEntryRepo)
	container.Timesheet = NewTimesheetService(repos.TimeEntryRepo, repos.CustomerRepo, repos.ProjectRepo, container.Workflow)
	container.Reporting = NewReportingService(repos.TimeEntryRepo, repos.CustomerRepo, repos.ProjectRepo)
	container.Budget = NewBudgetService(repos.TimeEntryRepo, repos.ProjectRepo, repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
