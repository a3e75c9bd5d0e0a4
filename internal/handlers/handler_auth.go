package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tempora-hq/timesheet-backend/internal/apperrors"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/dto"
	"github.com/tempora-hq/timesheet-backend/internal/middleware"
)

// authHandler issues principal tokens for the user switcher.
type authHandler struct {
	tokenService portssvc.TokenSvcFacade
	userService  portssvc.UserSvcFacade
}

func newAuthHandler(ts portssvc.TokenSvcFacade, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{tokenService: ts, userService: us}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Token, services.User)

	auth := r.Group("/auth")
	{
		auth.POST("/switch", h.switchUser)
	}
}

// switchUser godoc
// @Summary Switch the acting user
// @Description Mints a principal token for the given user. There is no password; this mirrors the in-app user switcher.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.SwitchUserRequest true "Target user"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/switch [post]
func (h *authHandler) switchUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SwitchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.MintToken(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to mint token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mint token"})
		return
	}

	logger.Info("Acting user switched", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      dto.ToUserResponse(user),
	})
}
