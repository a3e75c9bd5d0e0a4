package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// CreateTimeEntryRequest defines the data needed to log time.
// UserID may only be set by admins logging on another user's behalf;
// it defaults to the acting principal.
type CreateTimeEntryRequest struct {
	Date        string          `json:"date" binding:"required,isodate"`
	CustomerID  string          `json:"customerID" binding:"required"`
	ProjectID   string          `json:"projectID" binding:"required"`
	Hours       decimal.Decimal `json:"hours" binding:"required"`
	Description string          `json:"description"`
	UserID      string          `json:"userID"`
}

// UpdateTimeEntryRequest defines the data allowed for updating an entry.
// The entry keeps its identity; every other field is mutable while the
// owning week is editable.
type UpdateTimeEntryRequest struct {
	Date        *string          `json:"date" binding:"omitempty,isodate"`
	CustomerID  *string          `json:"customerID"`
	ProjectID   *string          `json:"projectID"`
	Hours       *decimal.Decimal `json:"hours"`
	Description *string          `json:"description"`
}

// TimeEntryResponse is the transport representation of a time entry.
type TimeEntryResponse struct {
	EntryID     string          `json:"entryID"`
	UserID      string          `json:"userID"`
	Date        string          `json:"date"`
	CustomerID  string          `json:"customerID"`
	ProjectID   string          `json:"projectID"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
	WeekStart   string          `json:"weekStart"`
}

// ToTimeEntryResponse converts a domain.TimeEntry to its transport representation.
func ToTimeEntryResponse(e *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		EntryID:     e.EntryID,
		UserID:      e.UserID,
		Date:        domain.FormatDate(e.Date),
		CustomerID:  e.CustomerID,
		ProjectID:   e.ProjectID,
		Hours:       e.Hours,
		Description: e.Description,
		WeekStart:   e.WeekStart(),
	}
}

// ToListTimeEntriesResponse converts entries for list endpoints.
func ToListTimeEntriesResponse(entries []domain.TimeEntry) []TimeEntryResponse {
	out := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToTimeEntryResponse(&entries[i])
	}
	return out
}

// DailyTotalResponse is one day's hour sum in the week view.
type DailyTotalResponse struct {
	Date  string          `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

// WeekViewResponse is the full payload backing the weekly timesheet screen:
// the seven dates, entries, per-day totals, the weekly total and the week's
// effective status.
type WeekViewResponse struct {
	WeekStart   string                 `json:"weekStart"`
	Status      domain.WeekStatusValue `json:"status"`
	Dates       []string               `json:"dates"`
	Entries     []TimeEntryResponse    `json:"entries"`
	DailyTotals []DailyTotalResponse   `json:"dailyTotals"`
	WeeklyTotal decimal.Decimal        `json:"weeklyTotal"`
}
