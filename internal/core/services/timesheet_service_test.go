package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

type TimesheetServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (s *TimesheetServiceTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.ctx = context.Background()
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}

func (s *TimesheetServiceTestSuite) entryReq(date, hours string) dto.CreateTimeEntryRequest {
	return dto.CreateTimeEntryRequest{
		Date:       date,
		CustomerID: "c-acme",
		ProjectID:  "p-alpha",
		Hours:      dec(hours),
	}
}

func (s *TimesheetServiceTestSuite) TestAddEntryCreatesDraftWeek() {
	entry, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-17", "7.5"))
	require.NoError(s.T(), err)
	require.NotNil(s.T(), entry)

	assert.NotEmpty(s.T(), entry.EntryID)
	assert.Equal(s.T(), s.env.member.UserID, entry.UserID)
	assert.Equal(s.T(), "2024-04-15", entry.WeekStart())

	ws, err := s.env.svc.Workflow.GetWeekStatus(s.ctx, "2024-04-15")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), ws)
	assert.Equal(s.T(), domain.StatusDraft, ws.Status)
}

func (s *TimesheetServiceTestSuite) TestSubmitApproveLocksWeekForMembers() {
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-15", "8"))
	require.NoError(s.T(), err)

	_, err = s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.member, "2024-04-15", domain.StatusPending)
	require.NoError(s.T(), err)
	_, err = s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.admin, "2024-04-15", domain.StatusApproved)
	require.NoError(s.T(), err)

	_, err = s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-16", "4"))
	assert.ErrorIs(s.T(), err, apperrors.ErrLockedWeek)

	// Admins bypass the lock.
	adminEntry, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.admin, s.entryReq("2024-04-16", "4"))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.env.admin.UserID, adminEntry.UserID)

	entries, err := s.env.svc.Timesheet.EntriesForWeek(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)
	assert.Len(s.T(), entries, 2)
}

func (s *TimesheetServiceTestSuite) TestAddEntryRejectsNonPositiveHours() {
	for _, hours := range []string{"0", "-1"} {
		_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-17", hours))
		assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	}

	// Rejected entries leave no trace, not even a week record.
	entries, err := s.env.svc.Timesheet.EntriesForWeek(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)
	assert.Empty(s.T(), entries)

	ws, err := s.env.svc.Workflow.GetWeekStatus(s.ctx, "2024-04-15")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), ws)
}

func (s *TimesheetServiceTestSuite) TestAddEntryValidatesCatalogReferences() {
	req := s.entryReq("2024-04-17", "8")
	req.CustomerID = "c-nope"
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, req)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)

	// Project belongs to another customer.
	req = s.entryReq("2024-04-17", "8")
	req.ProjectID = "p-charlie"
	_, err = s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, req)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TimesheetServiceTestSuite) TestLoggingOnBehalfRequiresAdmin() {
	req := s.entryReq("2024-04-17", "8")
	req.UserID = s.env.admin.UserID
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, req)
	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)

	req = s.entryReq("2024-04-17", "8")
	req.UserID = s.env.member.UserID
	entry, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.admin, req)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.env.member.UserID, entry.UserID)
	assert.Equal(s.T(), s.env.admin.UserID, entry.CreatedBy)
}

func (s *TimesheetServiceTestSuite) TestUpdateEntryKeepsIdentity() {
	entry, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-17", "8"))
	require.NoError(s.T(), err)

	newDate := "2024-04-18"
	newHours := dec("6.5")
	updated, err := s.env.svc.Timesheet.UpdateTimeEntry(s.ctx, s.env.member, entry.EntryID, dto.UpdateTimeEntryRequest{
		Date:  &newDate,
		Hours: &newHours,
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), entry.EntryID, updated.EntryID)
	assert.Equal(s.T(), newDate, domain.FormatDate(updated.Date))
	assert.True(s.T(), newHours.Equal(updated.Hours))
}

func (s *TimesheetServiceTestSuite) TestUpdateEntryChecksBothWeeks() {
	entry, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-17", "8"))
	require.NoError(s.T(), err)

	// Lock the week after the entry landed.
	_, err = s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.admin, "2024-04-15", domain.StatusApproved)
	require.NoError(s.T(), err)

	newDate := "2024-04-24"
	_, err = s.env.svc.Timesheet.UpdateTimeEntry(s.ctx, s.env.member, entry.EntryID, dto.UpdateTimeEntryRequest{Date: &newDate})
	assert.ErrorIs(s.T(), err, apperrors.ErrLockedWeek)

	// Moving into a locked week is refused as well.
	entry2, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-24", "8"))
	require.NoError(s.T(), err)
	backDate := "2024-04-17"
	_, err = s.env.svc.Timesheet.UpdateTimeEntry(s.ctx, s.env.member, entry2.EntryID, dto.UpdateTimeEntryRequest{Date: &backDate})
	assert.ErrorIs(s.T(), err, apperrors.ErrLockedWeek)

	// Admins may edit locked weeks.
	_, err = s.env.svc.Timesheet.UpdateTimeEntry(s.ctx, s.env.admin, entry.EntryID, dto.UpdateTimeEntryRequest{Date: &newDate})
	require.NoError(s.T(), err)
}

func (s *TimesheetServiceTestSuite) TestDeleteEntryHonoursWeekLock() {
	entry, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, s.entryReq("2024-04-17", "8"))
	require.NoError(s.T(), err)

	_, err = s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.admin, "2024-04-15", domain.StatusApproved)
	require.NoError(s.T(), err)

	err = s.env.svc.Timesheet.DeleteTimeEntry(s.ctx, s.env.member, entry.EntryID)
	assert.ErrorIs(s.T(), err, apperrors.ErrLockedWeek)

	err = s.env.svc.Timesheet.DeleteTimeEntry(s.ctx, s.env.admin, entry.EntryID)
	require.NoError(s.T(), err)

	_, err = s.env.svc.Timesheet.GetEntryByID(s.ctx, entry.EntryID)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
