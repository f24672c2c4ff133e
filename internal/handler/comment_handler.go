package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentService service.CommentService
	resolver       service.ProfileResolver
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService, resolver service.ProfileResolver) *CommentHandler {
	return &CommentHandler{commentService: commentService, resolver: resolver}
}

// ListComments handles GET /blogs/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	comments, meta, err := h.commentService.ListComments(c.Param("id"), page, limit)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, comments, meta)
}

// AddComment handles POST /blogs/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "content is required", err)
		return
	}

	comment, err := h.commentService.AddComment(profile.ID, c.Param("id"), &req)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.CreatedResponse(c, comment)
}
