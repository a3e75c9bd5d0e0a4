package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
)

// projectHandler handles HTTP requests for the project catalog and the
// per-project budget view.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
	budgetService  portssvc.BudgetSvcFacade
	userService    portssvc.UserSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade, bs portssvc.BudgetSvcFacade, us portssvc.UserSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps, budgetService: bs, userService: us}
}

// registerProjectRoutes registers all project catalog routes.
func registerProjectRoutes(rg *gin.RouterGroup, ps portssvc.ProjectSvcFacade, bs portssvc.BudgetSvcFacade, us portssvc.UserSvcFacade) {
	h := newProjectHandler(ps, bs, us)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.GET("/:id/budget", h.getProjectBudget)
		projects.POST("", h.createProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project under an existing customer, optionally with day and cost budgets.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	created, err := h.projectService.CreateProject(c.Request.Context(), *actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(created))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List all projects
// @Tags projects
// @Produce  json
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// getProjectBudget godoc
// @Summary Get a project's budget report
// @Description Returns actual days and cost logged against the project, with remaining budget and clamped utilization where budgets are set.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectBudgetResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/budget [get]
func (h *projectHandler) getProjectBudget(c *gin.Context) {
	report, err := h.budgetService.ProjectBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectBudgetResponse(report))
}

// updateProject godoc
// @Summary Update a project
// @Description Updates project details. The owning customer cannot change once time has been logged.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	updated, err := h.projectService.UpdateProject(c.Request.Context(), *actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(updated))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes a project without cascading to its entries.
// @Tags projects
// @Param   id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	actor, ok := resolveActor(c, h.userService)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), *actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
