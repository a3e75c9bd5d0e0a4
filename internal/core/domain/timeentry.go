package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is a single day's worth of logged hours against a project.
// Date carries no time component; it is normalized to midnight UTC.
// Hours must be strictly positive, an entry with hours <= 0 is never persisted.
type TimeEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`  // FK -> users.user_id, the entry's owner
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customerID"` // FK -> customers.customer_id
	ProjectID   string          `json:"projectID"`  // FK -> projects.project_id, must belong to CustomerID
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
	AuditFields
}

// WeekStart returns the key of the ISO week the entry falls in.
func (e TimeEntry) WeekStart() string {
	return WeekStartOf(e.Date)
}
