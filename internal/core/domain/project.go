package domain

import "github.com/shopspring/decimal"

// Project belongs to exactly one customer. Budgets are optional; a nil budget
// means "no budget set" rather than zero.
type Project struct {
	ProjectID   string           `json:"projectID"`  // Primary Key (UUID)
	CustomerID  string           `json:"customerID"` // FK -> customers.customer_id
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IsActive    bool             `json:"isActive"`
	BudgetDays  *decimal.Decimal `json:"budgetDays,omitempty"`
	BudgetCost  *decimal.Decimal `json:"budgetCost,omitempty"`
	AuditFields
}
