// File: inkwell/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/config"
	"inkwell/handlers"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/routes"
	"inkwell/services"
	"inkwell/services/calendar"
	"inkwell/services/notification"
	"inkwell/services/sheets"
	"inkwell/services/storage"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}
	hours := models.BusinessHours{
		OpenHour:            config.AppConfig.WorkStartHour,
		CloseHour:           config.AppConfig.WorkEndHour,
		SlotIntervalMinutes: config.AppConfig.SlotIntervalMinutes,
		DurationMinutes:     config.AppConfig.AppointmentDurationMinutes,
		BufferMinutes:       config.AppConfig.CleanupBufferMinutes,
		Location:            location,
	}

	// A missing token does not stop the server: the credential guard on the
	// booking routes answers 500 until the deployment is fixed.
	tokenSource, err := config.GoogleTokenSource(ctx)
	if err != nil {
		logger.Sugar().Errorf("main: google credentials unavailable, all booking routes will answer 500: %v", err)
	}
	utils.StartHealthMonitor(ctx, tokenSource)

	availabilityService := &services.DefaultAvailabilityService{Hours: hours}
	bookingService := &services.DefaultBookingService{
		Hours:          hours,
		PhoneRegion:    config.AppConfig.PhoneRegion,
		WhatsappNumber: config.AppConfig.WhatsappNumber,
	}

	if tokenSource != nil {
		calendarClient, err := calendar.NewGoogleCalendar(ctx, tokenSource, config.AppConfig.CalendarID, location)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
		}
		availabilityService.Calendar = calendarClient
		bookingService.Calendar = calendarClient

		sheetClient, err := sheets.NewGoogleSheet(ctx, tokenSource, config.AppConfig.SpreadsheetID, config.AppConfig.SheetRange)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize sheets client: %v", err)
		}
		bookingService.Sheet = sheetClient

		var storageService storage.StorageService
		switch config.AppConfig.StorageBackend {
		case "cloudinary":
			storageService, err = storage.NewCloudinaryStorage(config.AppConfig.CloudinaryURL, "referencias")
			if err != nil {
				logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
			}
		default:
			storageService, err = storage.NewDriveStorage(ctx, tokenSource, config.AppConfig.DriveFolderID)
			if err != nil {
				logger.Sugar().Fatalf("main: failed to initialize drive storage: %v", err)
			}
		}
		bookingService.Storage = storageService
	}

	if emailService := notification.NewSendGridEmailService(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.ArtistEmail,
		config.AppConfig.SenderEmail,
		config.AppConfig.SenderName,
	); emailService != nil {
		bookingService.Email = emailService
	} else {
		logger.Info("main: no SendGrid API key configured, booking notices disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	routes.RegisterRoutes(router, availabilityHandler, bookingHandler, tokenSource)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
