package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// timesheetHandler handles time entry CRUD and the weekly timesheet view.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
	workflowService  portssvc.WorkflowSvcFacade
	userService      portssvc.UserSvcFacade
}

func newTimesheetHandler(ts portssvc.TimesheetSvcFacade, ws portssvc.WorkflowSvcFacade, us portssvc.UserSvcFacade) *timesheetHandler {
	return &timesheetHandler{timesheetService: ts, workflowService: ws, userService: us}
}

// registerTimesheetRoutes registers time entry and week view routes.
func registerTimesheetRoutes(rg *gin.RouterGroup, ts portssvc.TimesheetSvcFacade, ws portssvc.WorkflowSvcFacade, us portssvc.UserSvcFacade) {
	h := newTimesheetHandler(ts, ws, us)

	timesheets := rg.Group("/timesheets")
	{
		timesheets.POST("/entries", h.createEntry)
		timesheets.GET("/entries/:id", h.getEntry)
		timesheets.PUT("/entries/:id", h.updateEntry)
		timesheets.DELETE("/entries/:id", h.deleteEntry)
		timesheets.GET("/week", h.weekView)
	}
}

// createEntry godoc
// @Summary Log a time entry
// @Description Logs hours against a customer and project. Creates the owning week's draft record when it is the week's first entry. Admins may log on another user's behalf via userID.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateTimeEntryRequest true "Entry details"
// @Success 201 {object} dto.TimeEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Customer or project not found"
// @Failure 423 {object} map[string]string "Week is locked"
// @Security BearerAuth
// @Router /timesheets/entries [post]
func (h *timesheetHandler) createEntry(c *gin.Context) {
	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	created, err := h.timesheetService.AddTimeEntry(c.Request.Context(), *actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTimeEntryResponse(created))
}

// getEntry godoc
// @Summary Get a time entry by ID
// @Tags timesheets
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /timesheets/entries/{id} [get]
func (h *timesheetHandler) getEntry(c *gin.Context) {
	entry, err := h.timesheetService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a time entry
// @Description Updates an entry in place. Both the stored week and, when the date moves, the target week must be editable for the acting user.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateTimeEntryRequest true "Fields to update"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 423 {object} map[string]string "Week is locked"
// @Security BearerAuth
// @Router /timesheets/entries/{id} [put]
func (h *timesheetHandler) updateEntry(c *gin.Context) {
	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	updated, err := h.timesheetService.UpdateTimeEntry(c.Request.Context(), *actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(updated))
}

// deleteEntry godoc
// @Summary Delete a time entry
// @Tags timesheets
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 423 {object} map[string]string "Week is locked"
// @Security BearerAuth
// @Router /timesheets/entries/{id} [delete]
func (h *timesheetHandler) deleteEntry(c *gin.Context) {
	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	if err := h.timesheetService.DeleteTimeEntry(c.Request.Context(), *actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// weekView godoc
// @Summary Get the weekly timesheet view
// @Description Returns the seven dates of the week, its entries, per-day totals, the weekly total and the week's effective status.
// @Tags timesheets
// @Produce  json
// @Param   start query string true "Week start date (a Monday, YYYY-MM-DD)"
// @Success 200 {object} dto.WeekViewResponse
// @Failure 400 {object} map[string]string "Invalid or non-Monday date"
// @Security BearerAuth
// @Router /timesheets/week [get]
func (h *timesheetHandler) weekView(c *gin.Context) {
	weekStart, ok := parseWeekStartParam(c, c.Query("start"))
	if !ok {
		return
	}
	startDate, _ := domain.ParseDate(weekStart)

	entries, err := h.timesheetService.EntriesForWeek(c.Request.Context(), startDate)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := h.workflowService.EffectiveStatus(c.Request.Context(), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}

	byDate := make(map[string]decimal.Decimal, 7)
	weeklyTotal := decimal.Zero
	for _, e := range entries {
		key := domain.FormatDate(e.Date)
		byDate[key] = byDate[key].Add(e.Hours)
		weeklyTotal = weeklyTotal.Add(e.Hours)
	}

	days := domain.WeekDates(startDate)
	dates := make([]string, len(days))
	dailyTotals := make([]dto.DailyTotalResponse, len(days))
	for i, day := range days {
		key := domain.FormatDate(day)
		dates[i] = key
		dailyTotals[i] = dto.DailyTotalResponse{Date: key, Hours: byDate[key]}
	}

	c.JSON(http.StatusOK, dto.WeekViewResponse{
		WeekStart:   weekStart,
		Status:      status,
		Dates:       dates,
		Entries:     dto.ToListTimeEntriesResponse(entries),
		DailyTotals: dailyTotals,
		WeeklyTotal: weeklyTotal,
	})
}
