package domain

// Customer is a billing target for projects. Inactive customers are excluded
// from selection in new entries but remain valid for historical ones.
type Customer struct {
	CustomerID    string `json:"customerID"` // Primary Key (UUID)
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
