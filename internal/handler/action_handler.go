package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// ActionHandler handles like/wishlist toggle HTTP requests.
// The HTTP verb carries the desired state: POST sets, DELETE clears.
type ActionHandler struct {
	actionService service.ActionService
	resolver      service.ProfileResolver
}

// NewActionHandler creates a new ActionHandler
func NewActionHandler(actionService service.ActionService, resolver service.ProfileResolver) *ActionHandler {
	return &ActionHandler{actionService: actionService, resolver: resolver}
}

// Like handles POST /blogs/:id/like
func (h *ActionHandler) Like(c *gin.Context) {
	h.setLike(c, true)
}

// Unlike handles DELETE /blogs/:id/like
func (h *ActionHandler) Unlike(c *gin.Context) {
	h.setLike(c, false)
}

// AddWishlist handles POST /blogs/:id/wishlist
func (h *ActionHandler) AddWishlist(c *gin.Context) {
	h.setWishlist(c, true)
}

// RemoveWishlist handles DELETE /blogs/:id/wishlist
func (h *ActionHandler) RemoveWishlist(c *gin.Context) {
	h.setWishlist(c, false)
}

func (h *ActionHandler) setLike(c *gin.Context, desired bool) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	result, err := h.actionService.SetLike(profile.ID, c.Param("id"), desired)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

func (h *ActionHandler) setWishlist(c *gin.Context, desired bool) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	result, err := h.actionService.SetWishlist(profile.ID, c.Param("id"), desired)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}
