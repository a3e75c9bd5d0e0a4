package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "monday maps to itself", date: "2024-04-15", want: "2024-04-15"},
		{name: "midweek wednesday", date: "2024-04-17", want: "2024-04-15"},
		{name: "sunday belongs to previous monday", date: "2024-04-21", want: "2024-04-15"},
		{name: "week spanning month boundary", date: "2024-05-01", want: "2024-04-29"},
		{name: "week spanning year boundary", date: "2025-01-01", want: "2024-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := domain.ParseDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.WeekStartOf(date))
		})
	}
}

func TestWeekDates(t *testing.T) {
	start, err := domain.ParseDate("2024-04-15")
	require.NoError(t, err)

	dates := domain.WeekDates(start)
	require.Len(t, dates, 7)
	assert.Equal(t, "2024-04-15", domain.FormatDate(dates[0]))
	assert.Equal(t, "2024-04-21", domain.FormatDate(dates[6]))
	for _, d := range dates {
		assert.Equal(t, "2024-04-15", domain.WeekStartOf(d))
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	noon := time.Date(2024, 4, 17, 12, 30, 45, 0, loc)

	got := domain.NormalizeDate(noon)
	assert.Equal(t, time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC), got)
}

func TestWeekRange(t *testing.T) {
	start, err := domain.ParseDate("2024-12-30")
	require.NoError(t, err)

	from, to := domain.WeekRange(start)
	assert.Equal(t, "2024-12-30", domain.FormatDate(from))
	assert.Equal(t, "2025-01-05", domain.FormatDate(to))
}
