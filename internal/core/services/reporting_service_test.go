package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.ctx = context.Background()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) log(date, customerID, projectID, hours string) {
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, dto.CreateTimeEntryRequest{
		Date:       date,
		CustomerID: customerID,
		ProjectID:  projectID,
		Hours:      dec(hours),
	})
	require.NoError(s.T(), err)
}

func (s *ReportingServiceTestSuite) TestWeeklyTotalIsSumOfDailyTotals() {
	s.log("2024-04-15", "c-acme", "p-alpha", "8")
	s.log("2024-04-16", "c-acme", "p-bravo", "6")
	s.log("2024-04-16", "c-beta", "p-charlie", "2")
	// Outside the week, must not count.
	s.log("2024-04-22", "c-acme", "p-alpha", "8")

	weekly, err := s.env.svc.Reporting.WeeklyTotal(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)
	assert.True(s.T(), weekly.Equal(dec("16")), "weekly = %s", weekly)

	sum := dec("0")
	for _, d := range domain.WeekDates(day("2024-04-15")) {
		daily, err := s.env.svc.Reporting.DailyTotal(s.ctx, d)
		require.NoError(s.T(), err)
		sum = sum.Add(daily)
	}
	assert.True(s.T(), weekly.Equal(sum))
}

func (s *ReportingServiceTestSuite) TestWeekReportGroupsInFirstLoggedOrder() {
	s.log("2024-04-16", "c-beta", "p-charlie", "2")
	s.log("2024-04-15", "c-acme", "p-alpha", "8")
	s.log("2024-04-17", "c-acme", "p-bravo", "4")

	report, err := s.env.svc.Reporting.WeekReport(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "2024-04-15", report.WeekStart)
	assert.True(s.T(), report.TotalHours.Equal(dec("14")))

	// Beta was logged first, so it leads regardless of dates or size.
	require.Len(s.T(), report.Customers, 2)
	assert.Equal(s.T(), "Beta Ltd", report.Customers[0].CustomerName)
	assert.Equal(s.T(), "Acme Corp", report.Customers[1].CustomerName)

	acme := report.Customers[1]
	assert.True(s.T(), acme.Hours.Equal(dec("12")))
	require.Len(s.T(), acme.Projects, 2)
	assert.Equal(s.T(), "Alpha", acme.Projects[0].ProjectName)
	assert.Equal(s.T(), "Bravo", acme.Projects[1].ProjectName)
}

func (s *ReportingServiceTestSuite) TestDeletedCatalogRefsReportAsUnknown() {
	s.log("2024-04-15", "c-acme", "p-alpha", "8")

	require.NoError(s.T(), s.env.svc.Customer.DeleteCustomer(s.ctx, s.env.admin, "c-acme"))
	require.NoError(s.T(), s.env.svc.Project.DeleteProject(s.ctx, s.env.admin, "p-alpha"))

	report, err := s.env.svc.Reporting.WeekReport(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)

	require.Len(s.T(), report.Customers, 1)
	assert.Equal(s.T(), domain.UnknownLabel, report.Customers[0].CustomerName)
	require.Len(s.T(), report.Customers[0].Projects, 1)
	assert.Equal(s.T(), domain.UnknownLabel, report.Customers[0].Projects[0].ProjectName)
	assert.True(s.T(), report.TotalHours.Equal(dec("8")))
}

func (s *ReportingServiceTestSuite) TestEmptyWeekReport() {
	report, err := s.env.svc.Reporting.WeekReport(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)

	assert.True(s.T(), report.TotalHours.IsZero())
	assert.Empty(s.T(), report.Customers)
}
