package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownLabel is the report label for entries whose customer or project
// reference no longer resolves. Aggregation never fails on dangling ids.
const UnknownLabel = "Unknown"

// ProjectHours is one project row of a report group.
type ProjectHours struct {
	ProjectID   string          `json:"projectID"`
	ProjectName string          `json:"projectName"`
	Hours       decimal.Decimal `json:"hours"`
}

// CustomerGroup is one customer section of a report, with its project rows.
type CustomerGroup struct {
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	Hours        decimal.Decimal `json:"hours"`
	Projects     []ProjectHours  `json:"projects"`
}

// WeekReport summarizes one week's entries grouped by customer then project.
type WeekReport struct {
	WeekStart  string          `json:"weekStart"`
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	TotalHours decimal.Decimal `json:"totalHours"`
	Customers  []CustomerGroup `json:"customers"`
}

// DailyTotal sums the hours of entries logged on the given calendar date.
func DailyTotal(entries []TimeEntry, date time.Time) decimal.Decimal {
	date = NormalizeDate(date)
	total := decimal.Zero
	for _, e := range entries {
		if NormalizeDate(e.Date).Equal(date) {
			total = total.Add(e.Hours)
		}
	}
	return total
}

// WeeklyTotal sums DailyTotal over the seven dates starting at weekStart.
func WeeklyTotal(entries []TimeEntry, weekStart time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, date := range WeekDates(weekStart) {
		total = total.Add(DailyTotal(entries, date))
	}
	return total
}

// TotalHours sums the hours of all given entries.
func TotalHours(entries []TimeEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Hours)
	}
	return total
}

// GroupByCustomerProject aggregates entries into customer sections with
// per-project hour sums. Group order is insertion order of first occurrence.
// Ids missing from the name maps label as UnknownLabel instead of failing.
func GroupByCustomerProject(entries []TimeEntry, customerNames, projectNames map[string]string) []CustomerGroup {
	var groups []CustomerGroup
	groupIdx := map[string]int{}

	for _, e := range entries {
		gi, ok := groupIdx[e.CustomerID]
		if !ok {
			name, found := customerNames[e.CustomerID]
			if !found {
				name = UnknownLabel
			}
			gi = len(groups)
			groupIdx[e.CustomerID] = gi
			groups = append(groups, CustomerGroup{
				CustomerID:   e.CustomerID,
				CustomerName: name,
				Hours:        decimal.Zero,
			})
		}

		g := &groups[gi]
		g.Hours = g.Hours.Add(e.Hours)

		found := false
		for i := range g.Projects {
			if g.Projects[i].ProjectID == e.ProjectID {
				g.Projects[i].Hours = g.Projects[i].Hours.Add(e.Hours)
				found = true
				break
			}
		}
		if !found {
			name, ok := projectNames[e.ProjectID]
			if !ok {
				name = UnknownLabel
			}
			g.Projects = append(g.Projects, ProjectHours{
				ProjectID:   e.ProjectID,
				ProjectName: name,
				Hours:       e.Hours,
			})
		}
	}

	return groups
}
