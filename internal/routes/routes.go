package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/handler"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
	"github.com/redis/go-redis/v9"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	actionHandler *handler.ActionHandler,
	commentHandler *handler.CommentHandler,
	profileHandler *handler.ProfileHandler,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
) {
	api := router.Group("/api")

	// Authentication endpoints (no auth required, tighter rate limit)
	authLimit := middleware.RateLimitConfig{
		RequestsPerMinute: 20,
		KeyPrefix:         "api:ratelimit:auth:",
		Message:           "Too many authentication attempts, please try again later",
	}
	auth := api.Group("/auth", middleware.RateLimit(redisClient, authLimit))
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.JWTAuth(jwtManager), authHandler.Me)

	// Feed and post authoring
	blogs := api.Group("/blogs")
	blogs.GET("", middleware.OptionalJWTAuth(jwtManager), postHandler.ListFeed)
	blogs.GET("/:id", middleware.OptionalJWTAuth(jwtManager), postHandler.GetPost)
	blogs.POST("", middleware.JWTAuth(jwtManager), postHandler.CreatePost)
	blogs.PUT("/:id", middleware.JWTAuth(jwtManager), postHandler.UpdatePost)
	blogs.DELETE("/:id", middleware.JWTAuth(jwtManager), postHandler.DeletePost)

	// Social toggles (auth required, rate limited)
	toggleLimit := middleware.DefaultRateLimitConfig()
	toggleLimit.KeyPrefix = "api:ratelimit:toggle:"
	toggles := blogs.Group("/:id", middleware.JWTAuth(jwtManager), middleware.RateLimit(redisClient, toggleLimit))
	toggles.POST("/like", actionHandler.Like)
	toggles.DELETE("/like", actionHandler.Unlike)
	toggles.POST("/wishlist", actionHandler.AddWishlist)
	toggles.DELETE("/wishlist", actionHandler.RemoveWishlist)

	// Comments
	blogs.GET("/:id/comments", commentHandler.ListComments)
	blogs.POST("/:id/comments", middleware.JWTAuth(jwtManager), commentHandler.AddComment)

	// Viewer wishlist
	api.GET("/wishlist", middleware.JWTAuth(jwtManager), postHandler.ListWishlist)

	// Profile
	user := api.Group("/user", middleware.JWTAuth(jwtManager))
	user.GET("/profile", profileHandler.GetProfile)
	user.PUT("/profile", profileHandler.UpdateProfile)
}
