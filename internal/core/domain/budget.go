package domain

import "github.com/shopspring/decimal"

// hoursPerDay is the fixed day-equivalent divisor: budgets are expressed in
// 8-hour days.
var hoursPerDay = decimal.NewFromInt(8)

// ProjectActuals is the time and money actually logged against a project.
type ProjectActuals struct {
	Days decimal.Decimal `json:"days"` // day-equivalents, one decimal place
	Cost decimal.Decimal `json:"cost"` // whole currency units
}

// ComputeActuals converts entries into day-equivalents and cost. Each entry is
// costed at its owner's daily rate; entries whose user is missing from rates
// contribute hours but no cost.
func ComputeActuals(entries []TimeEntry, rates map[string]decimal.Decimal) ProjectActuals {
	days := decimal.Zero
	cost := decimal.Zero
	for _, e := range entries {
		entryDays := e.Hours.Div(hoursPerDay)
		days = days.Add(entryDays)
		if rate, ok := rates[e.UserID]; ok {
			cost = cost.Add(entryDays.Mul(rate))
		}
	}
	return ProjectActuals{
		Days: days.Round(1),
		Cost: cost.Round(0),
	}
}

// UtilizationPercent returns min(100, round(actual/budget*100)), or nil when
// no budget is set. The percentage is clamped, never reported above 100.
func UtilizationPercent(actual decimal.Decimal, budget *decimal.Decimal) *int {
	if budget == nil || budget.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	pct := int(actual.Div(*budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	if pct > 100 {
		pct = 100
	}
	return &pct
}

// Remaining returns max(0, budget-actual), or nil when no budget is set.
func Remaining(actual decimal.Decimal, budget *decimal.Decimal) *decimal.Decimal {
	if budget == nil {
		return nil
	}
	rem := budget.Sub(actual)
	if rem.IsNegative() {
		rem = decimal.Zero
	}
	return &rem
}

// ProjectBudgetReport is the budget view of one project.
type ProjectBudgetReport struct {
	Project                Project          `json:"project"`
	Actuals                ProjectActuals   `json:"actuals"`
	DaysRemaining          *decimal.Decimal `json:"daysRemaining,omitempty"`
	CostRemaining          *decimal.Decimal `json:"costRemaining,omitempty"`
	DaysUtilizationPercent *int             `json:"daysUtilizationPercent,omitempty"`
	CostUtilizationPercent *int             `json:"costUtilizationPercent,omitempty"`
}
