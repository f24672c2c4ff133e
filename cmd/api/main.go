package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell-backend/internal/config"
	"github.com/inkwell/inkwell-backend/internal/handler"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/migration"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/internal/routes"
	"github.com/inkwell/inkwell-backend/internal/service"
	pkgjwt "github.com/inkwell/inkwell-backend/pkg/jwt"
	pkglogger "github.com/inkwell/inkwell-backend/pkg/logger"
	pkgredis "github.com/inkwell/inkwell-backend/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Get().Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("starting")

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL connection. TranslateError is required: the resolver and ledger
	// depend on gorm.ErrDuplicatedKey to absorb uniqueness races.
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Get().Info().Str("host", cfg.Database.Host).Msg("connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional; rate limiting degrades to a no-op without it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = pkgredis.NewClient(
			cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		if err != nil {
			pkglogger.Get().Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
			redisClient = nil
		}
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration)

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	accountRepo := repository.NewAuthAccountRepository(db)
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewActionRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	resolver := service.NewProfileResolver(profileRepo)
	authService := service.NewAuthService(accountRepo, resolver, jwtManager)
	postService := service.NewPostService(postRepo)
	actionService := service.NewActionService(actionRepo)
	feedService := service.NewFeedService(feedRepo, cfg.Feed.DefaultPageSize, cfg.Feed.MaxPageSize)
	commentService := service.NewCommentService(commentRepo, postRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, resolver)
	postHandler := handler.NewPostHandler(feedService, postService, resolver)
	actionHandler := handler.NewActionHandler(actionService, resolver)
	commentHandler := handler.NewCommentHandler(commentService, resolver)
	profileHandler := handler.NewProfileHandler(resolver)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.Setup(router, authHandler, postHandler, actionHandler, commentHandler, profileHandler, jwtManager, redisClient)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Get().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
