// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/messaging"
	"medibook/services/suggestion"
	"medibook/upstream/careapi"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitSessionCache()

	careClient := careapi.NewClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Background schedule warming.
	warmQueue := cron.NewWarmQueue()
	cron.InitScheduleWarmWorker(careClient, utils.GetCacheClient())

	// services.
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient())
	bookingService := &booking.DefaultBookingSessionService{
		Upstream:       careClient,
		Store:          sessionStore,
		Warmer:         warmQueue,
		ConfirmBaseURL: config.AppConfig.ConfirmationBaseURL,
		SessionTTL:     time.Duration(config.AppConfig.SessionTTLMin) * time.Minute,
	}

	suggestionService := suggestion.NewService(careClient, suggestion.NewRedisCache(utils.GetCacheClient()))
	messageChannel := messaging.NewChannel()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Doctor:     handlers.NewDoctorHandler(careClient, utils.GetCacheClient()),
		Suggestion: handlers.NewSuggestionHandler(suggestionService),
		Messages:   handlers.NewMessagesHandler(messageChannel, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()}, careClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
