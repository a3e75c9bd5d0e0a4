package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tempora-hq/timesheet-backend/internal/adapters/database/memory"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/core/services"
	"github.com/tempora-hq/timesheet-backend/internal/handlers"
	"github.com/tempora-hq/timesheet-backend/internal/platform/config"
)

// WorkflowHandlerTestSuite runs the full router over the memory store and
// checks the transition gate and week lock at the HTTP surface.
type WorkflowHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	svc         *portssvc.ServiceContainer
	adminToken  string
	memberToken string
}

func (s *WorkflowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:              "8080",
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "timesheet-backend-test",
		RateLimit:         "1000-M",
	}

	store := memory.NewStore()
	store.SeedDemoData()
	s.svc = services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	require.NoError(s.T(), err)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, s.svc, limiter.New(limitermem.NewStore(), rate))

	ctx := context.Background()
	s.adminToken, _, err = s.svc.Token.MintToken(ctx, "u-john")
	require.NoError(s.T(), err)
	s.memberToken, _, err = s.svc.Token.MintToken(ctx, "u-jane")
	require.NoError(s.T(), err)
}

func TestWorkflowHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowHandlerTestSuite))
}

func (s *WorkflowHandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WorkflowHandlerTestSuite) TestRequiresToken() {
	w := s.do(http.MethodGet, "/api/v1/timesheets/weeks/2024-04-15/status", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *WorkflowHandlerTestSuite) TestMemberMaySubmitButNotApprove() {
	w := s.do(http.MethodPut, "/api/v1/timesheets/weeks/2024-04-29/status", s.memberToken,
		gin.H{"status": "pending"})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	// Approving is an admin transition.
	w = s.do(http.MethodPut, "/api/v1/timesheets/weeks/2024-04-29/status", s.memberToken,
		gin.H{"status": "approved"})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.do(http.MethodPut, "/api/v1/timesheets/weeks/2024-04-29/status", s.adminToken,
		gin.H{"status": "approved"})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status   domain.WeekStatusValue `json:"status"`
		Editable bool                   `json:"editable"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), domain.StatusApproved, resp.Status)
	assert.True(s.T(), resp.Editable) // admin view
}

func (s *WorkflowHandlerTestSuite) TestApprovedWeekLocksEntries() {
	// Week 2024-04-08 is seeded as approved.
	w := s.do(http.MethodPost, "/api/v1/timesheets/entries", s.memberToken, gin.H{
		"date":       "2024-04-10",
		"customerID": "c-acme",
		"projectID":  "p-alpha",
		"hours":      decimal.NewFromInt(8),
	})
	assert.Equal(s.T(), http.StatusLocked, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/timesheets/entries", s.adminToken, gin.H{
		"date":       "2024-04-10",
		"customerID": "c-acme",
		"projectID":  "p-alpha",
		"hours":      decimal.NewFromInt(8),
	})
	assert.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
}

func (s *WorkflowHandlerTestSuite) TestGetWeekStatusReportsTransitions() {
	w := s.do(http.MethodGet, "/api/v1/timesheets/weeks/2024-04-15/status", s.memberToken, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var resp struct {
		Status      domain.WeekStatusValue   `json:"status"`
		Transitions []domain.WeekStatusValue `json:"transitions"`
		Editable    bool                     `json:"editable"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	// Week 2024-04-15 is seeded as pending: a member may neither edit nor
	// move it anywhere.
	assert.Equal(s.T(), domain.StatusPending, resp.Status)
	assert.False(s.T(), resp.Editable)
	assert.Empty(s.T(), resp.Transitions)
}

func (s *WorkflowHandlerTestSuite) TestRejectsNonMondayWeekStart() {
	w := s.do(http.MethodGet, "/api/v1/timesheets/weeks/2024-04-16/status", s.memberToken, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}
