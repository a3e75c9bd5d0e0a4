package domain

import "github.com/shopspring/decimal"

// Role defines the two application roles. There is no hierarchy beyond these
// and no per-resource ACLs; every authorization predicate composes
// CanManageTimesheets.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a person who logs time.
type User struct {
	UserID    string           `json:"userID"` // Primary Key (UUID)
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	DailyRate *decimal.Decimal `json:"dailyRate,omitempty"` // currency per day, >= 0
	AuditFields
}

// CanManageTimesheets reports whether the user may administer timesheets:
// approve/reject/reopen weeks and edit locked ones.
func (u User) CanManageTimesheets() bool {
	return u.Role == RoleAdmin
}
