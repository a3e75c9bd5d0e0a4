package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
	"github.com/tempora-hq/timesheet-backend/internal/middleware"
)

// workflowHandler handles week status reads and transitions.
type workflowHandler struct {
	workflowService portssvc.WorkflowSvcFacade
	userService     portssvc.UserSvcFacade
}

func newWorkflowHandler(ws portssvc.WorkflowSvcFacade, us portssvc.UserSvcFacade) *workflowHandler {
	return &workflowHandler{workflowService: ws, userService: us}
}

// registerWorkflowRoutes registers week status routes.
func registerWorkflowRoutes(rg *gin.RouterGroup, ws portssvc.WorkflowSvcFacade, us portssvc.UserSvcFacade) {
	h := newWorkflowHandler(ws, us)

	weeks := rg.Group("/timesheets/weeks")
	{
		weeks.GET("", h.listWeekStatuses)
		weeks.GET("/:weekStart/status", h.getWeekStatus)
		weeks.PUT("/:weekStart/status", h.updateWeekStatus)
	}
}

func (h *workflowHandler) weekStatusResponse(c *gin.Context, weekStart string, status domain.WeekStatusValue, actor domain.User) (dto.WeekStatusResponse, error) {
	editable, err := h.workflowService.CanEditTimesheet(c.Request.Context(), weekStart, actor)
	if err != nil {
		return dto.WeekStatusResponse{}, err
	}
	return dto.WeekStatusResponse{
		WeekStart:   weekStart,
		Status:      status,
		Transitions: domain.AllowedTransitions(status, actor.Role),
		Editable:    editable,
	}, nil
}

// listWeekStatuses godoc
// @Summary List all explicit week status records
// @Description Weeks without a record are implicitly draft and do not appear here.
// @Tags workflow
// @Produce  json
// @Success 200 {array} dto.WeekStatusResponse
// @Security BearerAuth
// @Router /timesheets/weeks [get]
func (h *workflowHandler) listWeekStatuses(c *gin.Context) {
	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	statuses, err := h.workflowService.ListWeekStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.WeekStatusResponse, 0, len(statuses))
	for _, ws := range statuses {
		resp, err := h.weekStatusResponse(c, ws.WeekStart, ws.Status, *actor)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

// getWeekStatus godoc
// @Summary Get a week's status
// @Description Returns the effective status of the week (draft when no record exists), the transitions open to the acting user, and whether entries are editable.
// @Tags workflow
// @Produce  json
// @Param   weekStart path string true "Week start date (a Monday, YYYY-MM-DD)"
// @Success 200 {object} dto.WeekStatusResponse
// @Failure 400 {object} map[string]string "Invalid or non-Monday date"
// @Security BearerAuth
// @Router /timesheets/weeks/{weekStart}/status [get]
func (h *workflowHandler) getWeekStatus(c *gin.Context) {
	weekStart, ok := parseWeekStartParam(c, c.Param("weekStart"))
	if !ok {
		return
	}

	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	status, err := h.workflowService.EffectiveStatus(c.Request.Context(), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.weekStatusResponse(c, weekStart, status, *actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateWeekStatus godoc
// @Summary Move a week to a new status
// @Description Applies a workflow transition. Users may submit their weeks; approving, rejecting and reopening require the admin role. Re-asserting the current status is an allowed no-op.
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   weekStart path string true "Week start date (a Monday, YYYY-MM-DD)"
// @Param   request body dto.UpdateWeekStatusRequest true "Target status"
// @Success 200 {object} dto.WeekStatusResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Transition not allowed for role"
// @Security BearerAuth
// @Router /timesheets/weeks/{weekStart}/status [put]
func (h *workflowHandler) updateWeekStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	weekStart, ok := parseWeekStartParam(c, c.Param("weekStart"))
	if !ok {
		return
	}

	var req dto.UpdateWeekStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	current, err := h.workflowService.EffectiveStatus(c.Request.Context(), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}

	if !domain.CanTransition(current, req.Status, actor.Role) {
		logger.Warn("Week status transition rejected",
			slog.String("week_start", weekStart),
			slog.String("from", string(current)),
			slog.String("to", string(req.Status)),
			slog.String("role", string(actor.Role)))
		c.JSON(http.StatusForbidden, gin.H{"error": "transition not allowed"})
		return
	}

	updated, err := h.workflowService.UpdateWeekStatus(c.Request.Context(), *actor, weekStart, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Week status updated",
		slog.String("week_start", weekStart),
		slog.String("status", string(updated.Status)))

	resp, err := h.weekStatusResponse(c, weekStart, updated.Status, *actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
