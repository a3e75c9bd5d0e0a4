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

type UserServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUserRequiresAdmin() {
	req := dto.CreateUserRequest{Name: "New Person", Email: "new@example.com"}

	_, err := s.env.svc.User.CreateUser(s.ctx, s.env.member, req)
	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)

	created, err := s.env.svc.User.CreateUser(s.ctx, s.env.admin, req)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RoleUser, created.Role)
	assert.Nil(s.T(), created.DailyRate)
}

func (s *UserServiceTestSuite) TestCreateUserRejectsNegativeRate() {
	_, err := s.env.svc.User.CreateUser(s.ctx, s.env.admin, dto.CreateUserRequest{
		Name:      "Bad Rate",
		Email:     "bad@example.com",
		DailyRate: decPtr("-1"),
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestUpdateUserRoleAndRate() {
	newRole := domain.RoleAdmin
	updated, err := s.env.svc.User.UpdateUser(s.ctx, s.env.admin, s.env.member.UserID, dto.UpdateUserRequest{
		Role:      &newRole,
		DailyRate: decPtr("450"),
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RoleAdmin, updated.Role)
	assert.True(s.T(), updated.DailyRate.Equal(dec("450")))

	_, err = s.env.svc.User.UpdateUser(s.ctx, s.env.member, s.env.admin.UserID, dto.UpdateUserRequest{Role: &newRole})
	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestDeleteUserKeepsEntries() {
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, dto.CreateTimeEntryRequest{
		Date:       "2024-04-17",
		CustomerID: "c-acme",
		ProjectID:  "p-alpha",
		Hours:      dec("8"),
	})
	require.NoError(s.T(), err)

	err = s.env.svc.User.DeleteUser(s.ctx, s.env.admin, s.env.member.UserID)
	require.NoError(s.T(), err)

	entries, err := s.env.svc.Timesheet.EntriesForWeek(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 1)
	assert.Equal(s.T(), s.env.member.UserID, entries[0].UserID)
}

func (s *UserServiceTestSuite) TestGetMissingUser() {
	_, err := s.env.svc.User.GetUserByID(s.ctx, "u-nope")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
