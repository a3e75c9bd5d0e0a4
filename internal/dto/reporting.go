package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

// ProjectHoursResponse is one project row of the weekly summary, including its
// share of the week's total.
type ProjectHoursResponse struct {
	ProjectID   string          `json:"projectID"`
	ProjectName string          `json:"projectName"`
	Hours       decimal.Decimal `json:"hours"`
	Percent     int             `json:"percent"`
}

// CustomerGroupResponse is one customer section of the weekly summary.
type CustomerGroupResponse struct {
	CustomerID   string                 `json:"customerID"`
	CustomerName string                 `json:"customerName"`
	Hours        decimal.Decimal        `json:"hours"`
	Projects     []ProjectHoursResponse `json:"projects"`
}

// WeekReportResponse is the weekly summary grouped by customer then project.
type WeekReportResponse struct {
	WeekStart  string                  `json:"weekStart"`
	From       string                  `json:"from"`
	To         string                  `json:"to"`
	TotalHours decimal.Decimal         `json:"totalHours"`
	Customers  []CustomerGroupResponse `json:"customers"`
}

// ToWeekReportResponse converts a domain.WeekReport, attaching each project
// row's rounded percentage of the week total.
func ToWeekReportResponse(r *domain.WeekReport) WeekReportResponse {
	hundred := decimal.NewFromInt(100)
	out := WeekReportResponse{
		WeekStart:  r.WeekStart,
		From:       domain.FormatDate(r.From),
		To:         domain.FormatDate(r.To),
		TotalHours: r.TotalHours,
		Customers:  make([]CustomerGroupResponse, len(r.Customers)),
	}
	for i, g := range r.Customers {
		group := CustomerGroupResponse{
			CustomerID:   g.CustomerID,
			CustomerName: g.CustomerName,
			Hours:        g.Hours,
			Projects:     make([]ProjectHoursResponse, len(g.Projects)),
		}
		for j, p := range g.Projects {
			percent := 0
			if r.TotalHours.IsPositive() {
				percent = int(p.Hours.Div(r.TotalHours).Mul(hundred).Round(0).IntPart())
			}
			group.Projects[j] = ProjectHoursResponse{
				ProjectID:   p.ProjectID,
				ProjectName: p.ProjectName,
				Hours:       p.Hours,
				Percent:     percent,
			}
		}
		out.Customers[i] = group
	}
	return out
}

// ProjectBudgetResponse is the budget view of one project.
type ProjectBudgetResponse struct {
	Project                ProjectResponse  `json:"project"`
	ActualDays             decimal.Decimal  `json:"actualDays"`
	ActualCost             decimal.Decimal  `json:"actualCost"`
	DaysRemaining          *decimal.Decimal `json:"daysRemaining,omitempty"`
	CostRemaining          *decimal.Decimal `json:"costRemaining,omitempty"`
	DaysUtilizationPercent *int             `json:"daysUtilizationPercent,omitempty"`
	CostUtilizationPercent *int             `json:"costUtilizationPercent,omitempty"`
}

// ToProjectBudgetResponse converts a domain.ProjectBudgetReport.
func ToProjectBudgetResponse(r *domain.ProjectBudgetReport) ProjectBudgetResponse {
	return ProjectBudgetResponse{
		Project:                ToProjectResponse(&r.Project),
		ActualDays:             r.Actuals.Days,
		ActualCost:             r.Actuals.Cost,
		DaysRemaining:          r.DaysRemaining,
		CostRemaining:          r.CostRemaining,
		DaysUtilizationPercent: r.DaysUtilizationPercent,
		CostUtilizationPercent: r.CostUtilizationPercent,
	}
}
