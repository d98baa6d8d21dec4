package router

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shotfolio/shotfolio-api/internal/approval"
	"github.com/shotfolio/shotfolio-api/internal/handlers"
	"github.com/shotfolio/shotfolio-api/internal/middleware"
	"github.com/shotfolio/shotfolio-api/internal/notification"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
	"github.com/shotfolio/shotfolio-api/pkg/config"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo, logger zerolog.Logger) {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.HTTPErrorHandler = errorHandler(e, logger)
}

// errorHandler renders every error in the shared envelope so clients always
// see {"success": false, "error": ...}.
func errorHandler(e *echo.Echo, logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
			if he.Internal != nil {
				logger.Error().Err(he.Internal).Int("status", status).Str("path", c.Path()).Msg("request failed")
			}
		} else {
			logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, echo.Map{"success": false, "error": message})
	}
}

// SetupRoutes wires repositories, services, and handlers onto the Echo
// instance. The firebase client may be nil.
func SetupRoutes(e *echo.Echo, db *mongo.Database, firebaseAuthClient *auth.Client, cfg *config.Config, logger zerolog.Logger) {
	e.GET("/health", handlers.HealthCheck)

	submissionRepo := repositories.NewMongoSubmissionRepository(db)
	notificationRepo := repositories.NewMongoNotificationRepository(db)
	galleryRepo := repositories.NewMongoGalleryRepository(db)
	storyRepo := repositories.NewMongoStoryRepository(db)
	photographerRepo := repositories.NewMongoPhotographerRepository(db)
	studioRepo := repositories.NewMongoStudioRepository(db)
	packageRepo := repositories.NewMongoPackageRepository(db)
	bookingRepo := repositories.NewMongoBookingRepository(db)
	catalogRepo := repositories.NewMongoCatalogRepository(db)

	var notifiers []notification.Notifier
	if mailer := notification.NewSMTPNotifier(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		AdminTo:  cfg.SMTPAdminTo,
	}); mailer != nil {
		notifiers = append(notifiers, mailer)
	}
	notificationService := notification.NewService(notificationRepo, logger, notifiers...)
	approvalService := approval.NewService(submissionRepo, photographerRepo, notificationService, logger)

	authHandler := handlers.NewAuthHandler(studioRepo, photographerRepo, firebaseAuthClient,
		cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash)
	submissionHandler := handlers.NewSubmissionHandler(submissionRepo, approvalService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo, approvalService)
	storyHandler := handlers.NewStoryHandler(storyRepo, approvalService)
	photographerHandler := handlers.NewPhotographerHandler(photographerRepo, approvalService)
	studioHandler := handlers.NewStudioHandler(studioRepo)
	packageHandler := handlers.NewPackageHandler(packageRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, photographerRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	searchHandler := handlers.NewSearchHandler(galleryRepo, photographerRepo)

	// Public surface: browsing, registration, booking inquiries.
	public := e.Group("/api/v1")
	authHandler.RegisterAuthRoutes(public.Group("/auth"))
	galleryHandler.RegisterPublicGalleryRoutes(public.Group("/galleries"))
	storyHandler.RegisterPublicStoryRoutes(public.Group("/stories"))
	photographerHandler.RegisterPublicPhotographerRoutes(public.Group("/photographers"))
	studioHandler.RegisterPublicStudioRoutes(public.Group("/studios"))
	packageHandler.RegisterPublicPackageRoutes(public.Group("/packages"))
	bookingHandler.RegisterPublicBookingRoutes(public.Group("/bookings"))
	catalogHandler.RegisterPublicCatalogRoutes(public)
	searchHandler.RegisterSearchRoutes(public.Group("/search"))

	// Authenticated surface.
	api := e.Group("/api/v1", middleware.JWTAuth(cfg.JWTSecret))
	submissionHandler.RegisterSubmissionRoutes(api.Group("/submissions"))
	notificationHandler.RegisterNotificationRoutes(api.Group("/notifications"))
	galleryHandler.RegisterGalleryRoutes(api.Group("/galleries"))
	storyHandler.RegisterStoryRoutes(api.Group("/stories"))
	photographerHandler.RegisterPhotographerRoutes(api.Group("/photographers"))
	studioHandler.RegisterStudioRoutes(api.Group("/studios"))
	packageHandler.RegisterPackageRoutes(api.Group("/packages"))
	bookingHandler.RegisterBookingRoutes(api.Group("/bookings"))

	// Admin-only lookup management.
	admin := api.Group("", middleware.RequireAdmin())
	catalogHandler.RegisterAdminCatalogRoutes(admin)

	logger.Info().Msg("routes configured")
}
