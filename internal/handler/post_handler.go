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

// PostHandler handles feed reads and post authoring
type PostHandler struct {
	feedService service.FeedService
	postService service.PostService
	resolver    service.ProfileResolver
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(feedService service.FeedService, postService service.PostService, resolver service.ProfileResolver) *PostHandler {
	return &PostHandler{
		feedService: feedService,
		postService: postService,
		resolver:    resolver,
	}
}

// viewerID resolves the optional viewer; "" for anonymous requests
func (h *PostHandler) viewerID(c *gin.Context) (string, error) {
	cred := middleware.GetCredential(c)
	if cred.Email == "" {
		return "", nil
	}
	profile, err := h.resolver.Resolve(cred)
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	return page, limit
}

// ListFeed handles GET /blogs
func (h *PostHandler) ListFeed(c *gin.Context) {
	viewerID, err := h.viewerID(c)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	page, limit := pageParams(c)
	items, meta, err := h.feedService.ListFeed(viewerID, page, limit)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, items, meta)
}

// GetPost handles GET /blogs/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	viewerID, err := h.viewerID(c)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	item, err := h.feedService.GetPost(c.Param("id"), viewerID)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, item, nil)
}

// ListWishlist handles GET /wishlist
func (h *PostHandler) ListWishlist(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	page, limit := pageParams(c)
	items, meta, err := h.feedService.ListWishlist(profile.ID, page, limit)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, items, meta)
}

// CreatePost handles POST /blogs
func (h *PostHandler) CreatePost(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "title and content are required", err)
		return
	}

	post, err := h.postService.CreatePost(&req, profile.ID)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.CreatedResponse(c, post)
}

// UpdatePost handles PUT /blogs/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "title and content are required", err)
		return
	}

	post, err := h.postService.UpdatePost(c.Param("id"), &req, profile.ID)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// DeletePost handles DELETE /blogs/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	profile, err := h.resolver.Resolve(middleware.GetCredential(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	if err := h.postService.DeletePost(c.Param("id"), profile.ID); err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "post deleted"}, nil)
}
