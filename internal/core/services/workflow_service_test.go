package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

type WorkflowServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (s *WorkflowServiceTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.ctx = context.Background()
}

func TestWorkflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowServiceTestSuite))
}

func (s *WorkflowServiceTestSuite) TestUntouchedWeekIsImplicitlyDraft() {
	ws, err := s.env.svc.Workflow.GetWeekStatus(s.ctx, "2024-04-15")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), ws)

	status, err := s.env.svc.Workflow.EffectiveStatus(s.ctx, "2024-04-15")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.StatusDraft, status)

	statuses, err := s.env.svc.Workflow.ListWeekStatuses(s.ctx)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), statuses)
}

func (s *WorkflowServiceTestSuite) TestUpdateWeekStatusRejectsNonMonday() {
	_, err := s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.member, "2024-04-16", domain.StatusPending)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)

	_, err = s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.member, "not-a-date", domain.StatusPending)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *WorkflowServiceTestSuite) TestUpdateWeekStatusIsIdempotent() {
	first, err := s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.member, "2024-04-15", domain.StatusPending)
	require.NoError(s.T(), err)

	again, err := s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.admin, "2024-04-15", domain.StatusPending)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), domain.StatusPending, again.Status)
	// The record keeps its creation audit, only the update audit moves.
	assert.Equal(s.T(), first.CreatedAt, again.CreatedAt)
	assert.Equal(s.T(), s.env.member.UserID, again.CreatedBy)
	assert.Equal(s.T(), s.env.admin.UserID, again.LastUpdatedBy)

	statuses, err := s.env.svc.Workflow.ListWeekStatuses(s.ctx)
	require.NoError(s.T(), err)
	assert.Len(s.T(), statuses, 1)
}

func (s *WorkflowServiceTestSuite) TestEnsureWeekDoesNotOverwrite() {
	_, err := s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.admin, "2024-04-15", domain.StatusApproved)
	require.NoError(s.T(), err)

	ws, err := s.env.svc.Workflow.EnsureWeek(s.ctx, s.env.member, "2024-04-15")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.StatusApproved, ws.Status)
}

func (s *WorkflowServiceTestSuite) TestCanEditTimesheet() {
	cases := []struct {
		status   domain.WeekStatusValue
		editable bool
	}{
		{domain.StatusDraft, true},
		{domain.StatusReopened, true},
		{domain.StatusPending, false},
		{domain.StatusApproved, false},
		{domain.StatusRejected, false},
	}
	for _, tc := range cases {
		_, err := s.env.svc.Workflow.UpdateWeekStatus(s.ctx, s.env.admin, "2024-04-15", tc.status)
		require.NoError(s.T(), err)

		editable, err := s.env.svc.Workflow.CanEditTimesheet(s.ctx, "2024-04-15", s.env.member)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), tc.editable, editable, "status %s", tc.status)

		// Admins edit regardless of status.
		editable, err = s.env.svc.Workflow.CanEditTimesheet(s.ctx, "2024-04-15", s.env.admin)
		require.NoError(s.T(), err)
		assert.True(s.T(), editable)
	}
}
