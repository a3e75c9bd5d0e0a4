package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// reportingHandler serves the weekly summary report.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/week", h.weekReport)
	}
}

// weekReport godoc
// @Summary Get the weekly summary report
// @Description Groups the week's hours by customer then project, in first-logged order, with each project's share of the weekly total. Deleted catalog references appear as "Unknown".
// @Tags reports
// @Produce  json
// @Param   start query string true "Week start date (a Monday, YYYY-MM-DD)"
// @Success 200 {object} dto.WeekReportResponse
// @Failure 400 {object} map[string]string "Invalid or non-Monday date"
// @Security BearerAuth
// @Router /reports/week [get]
func (h *reportingHandler) weekReport(c *gin.Context) {
	weekStart, ok := parseWeekStartParam(c, c.Query("start"))
	if !ok {
		return
	}
	startDate, _ := domain.ParseDate(weekStart)

	report, err := h.reportingService.WeekReport(c.Request.Context(), startDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWeekReportResponse(report))
}
