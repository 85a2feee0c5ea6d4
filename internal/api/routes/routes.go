package routes

import (
	"net/http"
	"time"

	"onboarding-backend/internal/api/handlers"
	"onboarding-backend/internal/api/middleware"
	"onboarding-backend/internal/auth"
	"onboarding-backend/internal/cache"
	"onboarding-backend/internal/config"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/plansource"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// AuthConfigPath is where the OAuth provider settings are read from
var AuthConfigPath = "config/auth.yaml"

// newRepositories returns the Postgres repositories, or in-memory ones when db is nil
func newRepositories(db *gorm.DB) service.Repositories {
	if db == nil {
		return service.NewMemoryRepositories()
	}
	return service.Repositories{
		Users:     repository.NewUserRepository(db),
		NewHires:  repository.NewNewHireRepository(db),
		Plans:     repository.NewPlanRepository(db),
		Comments:  repository.NewCommentRepository(db),
		Feedback:  repository.NewFeedbackRepository(db),
		Documents: repository.NewDocumentRepository(db),
	}
}

// newPlanSource builds the configured plan source. The remote generator
// shares the cache with refresh tokens under its own key prefix.
func newPlanSource(cfg *config.Config, infra *Infrastructure) plansource.PlanSource {
	template := plansource.NewDeterministicTemplateGenerator(onboarding.NewGenerator(infra.Catalog))

	var remote plansource.PlanSource
	if cfg.RemoteGeneratorEnabled() {
		completer := plansource.NewYandexGPTCompleter(
			cfg.YandexGPTIAMToken,
			cfg.YandexGPTCatalogID,
			cfg.YandexGPTTemperature,
			cfg.YandexGPTMaxTokens,
		)
		remote = plansource.NewRemoteGenerator(completer, infra.Cache, infra.Catalog, plansource.RemoteOptions{
			Timeout:  time.Duration(cfg.YandexGPTTimeoutSec) * time.Second,
			CacheTTL: cfg.CompletionCacheTTL(),
		})
	}

	return plansource.New(cfg.PlanSource, template, remote)
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, infra *Infrastructure) *gin.Engine {
	log := logger.New().Component("routes")

	router := gin.New()
	// services receive the *gin.Context as their context.Context
	router.ContextWithFallback = true

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := service.NewValidator()
	repos := newRepositories(db)
	source := newPlanSource(cfg, infra)
	notifier := service.NewNotificationService(infra.Mailer)

	userService := service.NewUserService(repos.Users, validator)
	newHireService := service.NewNewHireService(repos, infra.Store, source, infra.Publisher, notifier, infra.Clock, validator)
	planService := service.NewPlanService(repos, source, infra.Publisher, notifier, infra.Clock, validator)
	commentService := service.NewCommentService(repos, validator)
	feedbackService := service.NewFeedbackService(repos, infra.Publisher, validator)
	documentService := service.NewDocumentService(repos, infra.Store, cfg.MaxUploadBytes())
	exportService := service.NewExportService(planService)
	directoryService := service.NewDirectoryService(cfg)

	// Auth is optional outside production: without a provider config the API is
	// served unauthenticated. Production refuses API traffic instead.
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authConfig, err := auth.LoadAuthConfig(AuthConfigPath)
	if err != nil {
		log.WithError(err).Warn("Failed to load auth config, API routes are not protected")
	} else {
		authService, err := auth.NewAuthService(authConfig, cache.NewTokenStore(infra.Cache), repos.Users)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize auth service, API routes are not protected")
		} else {
			authHandler = auth.NewAuthHandler(authService, cfg.IsProduction())
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	healthHandler := handlers.NewHealthHandler(db, infra.HealthChecks...)
	userHandler := handlers.NewUserHandler(userService)
	newHireHandler := handlers.NewNewHireHandler(newHireService)
	planHandler := handlers.NewPlanHandler(planService)
	exportHandler := handlers.NewExportHandler(exportService)
	commentHandler := handlers.NewCommentHandler(commentService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
			}
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	v1 := router.Group("/api/v1")
	switch {
	case authMiddleware != nil:
		v1.Use(authMiddleware.RequireAuth())
	case cfg.IsProduction():
		log.Error("Authentication is not configured, API routes are disabled in production")
		v1.Use(authUnavailable())
	}

	{
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
		}

		newHires := v1.Group("/new-hires")
		{
			newHires.GET("", newHireHandler.ListNewHires)
			newHires.POST("", newHireHandler.CreateNewHire)
			newHires.GET("/:id", newHireHandler.GetNewHire)
			newHires.PUT("/:id", newHireHandler.UpdateNewHire)
			newHires.DELETE("/:id", newHireHandler.DeleteNewHire)

			newHires.GET("/:id/plan", planHandler.GetPlan)
			newHires.GET("/:id/progress", planHandler.GetProgress)
			newHires.PATCH("/:id/plan/tasks", planHandler.UpdateTaskStatus)
			newHires.POST("/:id/plan/regenerate", planHandler.RegeneratePlan)
			newHires.GET("/:id/plan/export", exportHandler.ExportPlan)

			newHires.GET("/:id/tasks/:taskId/comments", commentHandler.ListComments)
			newHires.POST("/:id/tasks/:taskId/comments", commentHandler.AddComment)

			newHires.GET("/:id/feedback", feedbackHandler.ListFeedback)
			newHires.POST("/:id/feedback", feedbackHandler.SubmitFeedback)

			newHires.GET("/:id/documents", documentHandler.ListDocuments)
			newHires.POST("/:id/documents", documentHandler.UploadDocument)
		}

		documents := v1.Group("/documents")
		{
			documents.GET("/:docId", documentHandler.DownloadDocument)
			documents.DELETE("/:docId", documentHandler.DeleteDocument)
		}

		v1.GET("/directory/search", directoryHandler.SearchPeople)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, checks ...handlers.HealthCheck) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, checks...)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

// authUnavailable rejects every request while authentication cannot be set up
func authUnavailable() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
	}
}
