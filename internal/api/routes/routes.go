package routes

import (
	"log"
	"time"

	"property-portal-backend/internal/api/handlers"
	"property-portal-backend/internal/api/middleware"
	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/config"
	"property-portal-backend/internal/mailer"
	"property-portal-backend/internal/repository"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	interventionRepo := repository.NewInterventionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	timeSlotRepo := repository.NewTimeSlotRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	userRepo := repository.NewUserRepository(db)
	activityLogRepo := repository.NewActivityLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	// Initialize side-effect collaborators
	effects := service.NewDispatcher()
	notifier := service.NewNotifier(notificationRepo)
	activity := service.NewActivityRecorder(activityLogRepo)
	conversations := service.NewConversationProvisioner(conversationRepo)
	emailer := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	})

	// Initialize services
	interventionService := service.NewInterventionService(
		interventionRepo, assignmentRepo, userRepo, quoteRepo,
		validator, effects, notifier, emailer, activity, conversations)
	scheduleService := service.NewScheduleService(
		timeSlotRepo, interventionRepo, assignmentRepo, userRepo,
		validator, effects, notifier, emailer, activity,
		service.ScheduleServiceOptions{AutoCancelSiblings: cfg.AutoCancelSlotSiblings})
	quoteService := service.NewQuoteService(
		quoteRepo, interventionRepo, assignmentRepo, userRepo,
		validator, effects, notifier, activity)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize auth service and middleware
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		log.Printf("Warning: Failed to initialize auth service: %v", err)
	} else {
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	interventionHandler := handlers.NewInterventionHandler(interventionService)
	timeSlotHandler := handlers.NewTimeSlotHandler(scheduleService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Intervention routes
		interventions := v1.Group("/interventions")
		{
			interventions.GET("", interventionHandler.ListInterventions)
			interventions.POST("", interventionHandler.CreateIntervention)
			interventions.GET("/:id", interventionHandler.GetIntervention)
			interventions.DELETE("/:id", interventionHandler.DeleteIntervention)

			// Lifecycle transitions
			interventions.POST("/:id/approve", interventionHandler.Approve)
			interventions.POST("/:id/reject", interventionHandler.Reject)
			interventions.POST("/:id/plan", interventionHandler.StartPlanning)
			interventions.POST("/:id/start", interventionHandler.Start)
			interventions.POST("/:id/complete", interventionHandler.Complete)
			interventions.POST("/:id/validate", interventionHandler.Validate)
			interventions.POST("/:id/finalize", interventionHandler.Finalize)
			interventions.POST("/:id/cancel", interventionHandler.Cancel)

			// Assignments
			interventions.POST("/:id/assignments", interventionHandler.AssignUser)
			interventions.DELETE("/:id/assignments", interventionHandler.UnassignUser)

			// Scheduling
			interventions.GET("/:id/slots", timeSlotHandler.ListSlots)
			interventions.POST("/:id/slots", timeSlotHandler.ProposeSlots)

			// Quotes
			interventions.GET("/:id/quotes", quoteHandler.ListQuotes)
			interventions.POST("/:id/quotes", quoteHandler.CreateQuote)
			interventions.POST("/:id/request-quote", interventionHandler.RequestQuote)
		}

		// Slot routes
		slots := v1.Group("/slots")
		{
			slots.POST("/:id/respond", timeSlotHandler.RespondToSlot)
			slots.GET("/:id/can-finalize", timeSlotHandler.CanFinalize)
			slots.POST("/:id/confirm", timeSlotHandler.ConfirmSchedule)
		}

		// Quote routes
		quotes := v1.Group("/quotes")
		{
			quotes.POST("/expire", quoteHandler.ExpireQuotes)
			quotes.POST("/:id/send", quoteHandler.SendQuote)
			quotes.POST("/:id/accept", quoteHandler.AcceptQuote)
			quotes.POST("/:id/reject", quoteHandler.RejectQuote)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
