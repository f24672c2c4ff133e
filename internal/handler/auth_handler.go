package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// AuthHandler handles signup/login HTTP requests
type AuthHandler struct {
	authService service.AuthService
	resolver    service.ProfileResolver
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, resolver service.ProfileResolver) *AuthHandler {
	return &AuthHandler{authService: authService, resolver: resolver}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "name, email and password are required", err)
		return
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "email and password are required", err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "refresh token is required", err)
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, profile.ToResponse(), nil)
}
