package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	resolver service.ProfileResolver
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(resolver service.ProfileResolver) *ProfileHandler {
	return &ProfileHandler{resolver: resolver}
}

// GetProfile handles GET /user/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, profile.ToResponse(), nil)
}

// UpdateProfile handles PUT /user/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "name is required", err)
		return
	}

	updated, err := h.resolver.UpdateDisplayName(profile.ID, req.DisplayName)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, updated.ToResponse(), nil)
}
