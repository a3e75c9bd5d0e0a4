package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
// A nil Active defaults to true.
type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
	Active        *bool  `json:"active"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Active        *bool   `json:"active"`
}

// CustomerResponse is the transport representation of a customer.
type CustomerResponse struct {
	CustomerID    string `json:"customerID"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Active        bool   `json:"active"`
}

// ToCustomerResponse converts a domain.Customer to its transport representation.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Active:        c.IsActive,
	}
}

// ToListCustomersResponse converts customers for list endpoints.
func ToListCustomersResponse(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name        string           `json:"name" binding:"required"`
	CustomerID  string           `json:"customerID" binding:"required"`
	Description string           `json:"description"`
	Active      *bool            `json:"active"`
	BudgetDays  *decimal.Decimal `json:"budgetDays"`
	BudgetCost  *decimal.Decimal `json:"budgetCost"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
// CustomerID changes are rejected once entries exist against the project.
type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	CustomerID  *string          `json:"customerID"`
	Description *string          `json:"description"`
	Active      *bool            `json:"active"`
	BudgetDays  *decimal.Decimal `json:"budgetDays"`
	BudgetCost  *decimal.Decimal `json:"budgetCost"`
}

// ProjectResponse is the transport representation of a project.
type ProjectResponse struct {
	ProjectID   string           `json:"projectID"`
	CustomerID  string           `json:"customerID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Active      bool             `json:"active"`
	BudgetDays  *decimal.Decimal `json:"budgetDays,omitempty"`
	BudgetCost  *decimal.Decimal `json:"budgetCost,omitempty"`
}

// ToProjectResponse converts a domain.Project to its transport representation.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		CustomerID:  p.CustomerID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.IsActive,
		BudgetDays:  p.BudgetDays,
		BudgetCost:  p.BudgetCost,
	}
}

// ToListProjectsResponse converts projects for list endpoints.
func ToListProjectsResponse(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return out
}
