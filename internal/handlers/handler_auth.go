package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles administrator authentication.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public login route behind the login rate limit.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, limit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
	}
}

// registerSessionRoutes sets up the authenticated auth routes.
func registerSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.GET("/auth/me", h.me)
}

// login godoc
// @Summary Administrator login
// @Description Authenticates an active administrator and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Administrator logged in", slog.Int64("employee_id", resp.Admin.EmployeeID))
	c.JSON(http.StatusOK, resp)
}

// me godoc
// @Summary Current administrator
// @Description Returns the administrator behind the bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AdminProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	profile, err := h.authService.CurrentAdmin(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "resolve current administrator")
		return
	}
	c.JSON(http.StatusOK, profile)
}
