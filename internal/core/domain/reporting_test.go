package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func entry(t *testing.T, date, customerID, projectID string, hours float64) domain.TimeEntry {
	t.Helper()
	return domain.TimeEntry{
		Date:       mustDate(t, date),
		CustomerID: customerID,
		ProjectID:  projectID,
		Hours:      decimal.NewFromFloat(hours),
	}
}

func TestDailyTotal(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(t, "2024-04-15", "c1", "p1", 4),
		entry(t, "2024-04-15", "c1", "p2", 3.5),
		entry(t, "2024-04-16", "c1", "p1", 8),
	}

	assert.True(t, domain.DailyTotal(entries, mustDate(t, "2024-04-15")).Equal(decimal.NewFromFloat(7.5)))
	assert.True(t, domain.DailyTotal(entries, mustDate(t, "2024-04-16")).Equal(decimal.NewFromInt(8)))
	assert.True(t, domain.DailyTotal(entries, mustDate(t, "2024-04-17")).IsZero())
}

func TestWeeklyTotal_EqualsSumOfDailyTotals(t *testing.T) {
	weekStart := mustDate(t, "2024-04-15")
	entries := []domain.TimeEntry{
		entry(t, "2024-04-15", "c1", "p1", 8),
		entry(t, "2024-04-17", "c1", "p1", 6.5),
		entry(t, "2024-04-21", "c2", "p3", 2), // Sunday, still in week
		entry(t, "2024-04-22", "c1", "p1", 8), // next week, excluded
	}

	daily := decimal.Zero
	for _, d := range domain.WeekDates(weekStart) {
		daily = daily.Add(domain.DailyTotal(entries, d))
	}

	weekly := domain.WeeklyTotal(entries, weekStart)
	assert.True(t, weekly.Equal(daily), "weekly total %s != summed daily totals %s", weekly, daily)
	assert.True(t, weekly.Equal(decimal.NewFromFloat(16.5)))
}

func TestGroupByCustomerProject(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(t, "2024-04-15", "c1", "p1", 4),
		entry(t, "2024-04-15", "c2", "p3", 2),
		entry(t, "2024-04-16", "c1", "p2", 3),
		entry(t, "2024-04-17", "c1", "p1", 1),
	}
	customers := map[string]string{"c1": "Acme Corp", "c2": "Beta Co"}
	projects := map[string]string{"p1": "Alpha", "p2": "Bravo", "p3": "Charlie"}

	groups := domain.GroupByCustomerProject(entries, customers, projects)
	require.Len(t, groups, 2)

	// insertion order of first occurrence
	assert.Equal(t, "Acme Corp", groups[0].CustomerName)
	assert.Equal(t, "Beta Co", groups[1].CustomerName)

	require.Len(t, groups[0].Projects, 2)
	assert.Equal(t, "Alpha", groups[0].Projects[0].ProjectName)
	assert.True(t, groups[0].Projects[0].Hours.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "Bravo", groups[0].Projects[1].ProjectName)
	assert.True(t, groups[0].Hours.Equal(decimal.NewFromInt(8)))
}

func TestGroupByCustomerProject_DanglingReferences(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(t, "2024-04-15", "deleted-customer", "deleted-project", 4),
	}

	groups := domain.GroupByCustomerProject(entries, map[string]string{}, map[string]string{})
	require.Len(t, groups, 1)
	assert.Equal(t, domain.UnknownLabel, groups[0].CustomerName)
	require.Len(t, groups[0].Projects, 1)
	assert.Equal(t, domain.UnknownLabel, groups[0].Projects[0].ProjectName)
	assert.True(t, groups[0].Hours.Equal(decimal.NewFromInt(4)))
}

func TestTotalHours_EmptyIsZero(t *testing.T) {
	assert.True(t, domain.TotalHours(nil).IsZero())
}
