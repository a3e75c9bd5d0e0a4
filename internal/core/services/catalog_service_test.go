package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.ctx = context.Background()
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) TestCreateCustomerDefaultsToActive() {
	customer, err := s.env.svc.Customer.CreateCustomer(s.ctx, s.env.member, dto.CreateCustomerRequest{
		Name: "Gamma GmbH",
	})
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), customer.CustomerID)
	assert.True(s.T(), customer.IsActive)
}

func (s *CatalogServiceTestSuite) TestCreateProjectRequiresExistingCustomer() {
	_, err := s.env.svc.Project.CreateProject(s.ctx, s.env.member, dto.CreateProjectRequest{
		Name:       "Orphan",
		CustomerID: "c-nope",
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *CatalogServiceTestSuite) TestCustomerReferenceImmutableOnceLogged() {
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, dto.CreateTimeEntryRequest{
		Date:       "2024-04-17",
		CustomerID: "c-acme",
		ProjectID:  "p-alpha",
		Hours:      dec("8"),
	})
	require.NoError(s.T(), err)

	newCustomer := "c-beta"
	_, err = s.env.svc.Project.UpdateProject(s.ctx, s.env.admin, "p-alpha", dto.UpdateProjectRequest{
		CustomerID: &newCustomer,
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)

	// A project without entries may still move.
	updated, err := s.env.svc.Project.UpdateProject(s.ctx, s.env.admin, "p-bravo", dto.UpdateProjectRequest{
		CustomerID: &newCustomer,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "c-beta", updated.CustomerID)
}

func (s *CatalogServiceTestSuite) TestProjectsByCustomerFiltersInactive() {
	inactive := false
	_, err := s.env.svc.Project.UpdateProject(s.ctx, s.env.admin, "p-bravo", dto.UpdateProjectRequest{
		Active: &inactive,
	})
	require.NoError(s.T(), err)

	projects, err := s.env.svc.Project.ProjectsByCustomer(s.ctx, "c-acme")
	require.NoError(s.T(), err)
	require.Len(s.T(), projects, 1)
	assert.Equal(s.T(), "p-alpha", projects[0].ProjectID)
}

func (s *CatalogServiceTestSuite) TestDeleteCustomerDoesNotCascade() {
	_, err := s.env.svc.Timesheet.AddTimeEntry(s.ctx, s.env.member, dto.CreateTimeEntryRequest{
		Date:       "2024-04-17",
		CustomerID: "c-acme",
		ProjectID:  "p-alpha",
		Hours:      dec("8"),
	})
	require.NoError(s.T(), err)

	err = s.env.svc.Customer.DeleteCustomer(s.ctx, s.env.admin, "c-acme")
	require.NoError(s.T(), err)

	_, err = s.env.svc.Customer.GetCustomerByID(s.ctx, "c-acme")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)

	// Projects and entries survive the customer.
	project, err := s.env.svc.Project.GetProjectByID(s.ctx, "p-alpha")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "c-acme", project.CustomerID)

	entries, err := s.env.svc.Timesheet.EntriesForWeek(s.ctx, day("2024-04-15"))
	require.NoError(s.T(), err)
	assert.Len(s.T(), entries, 1)
}

func (s *CatalogServiceTestSuite) TestUpdateMissingCustomer() {
	name := "Renamed"
	_, err := s.env.svc.Customer.UpdateCustomer(s.ctx, s.env.admin, "c-nope", dto.UpdateCustomerRequest{Name: &name})
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
