package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweetdots/config"
	"sweetdots/handlers"
	"sweetdots/middleware"
	"sweetdots/routes"
	"sweetdots/services/schedule"
	"sweetdots/services/sheets"
	"sweetdots/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.ValidateSheetsConfig(); err != nil {
		// Surfaced again on every load attempt; starting anyway lets the
		// health endpoint and access gate come up.
		logger.Sugar().Warnf("main: %v", err)
	}

	utils.InitGridCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	sheetsClient := sheets.NewDefaultClient()
	scheduleService := &schedule.DefaultScheduleService{
		Sheets: sheetsClient,
		Logger: logger,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	payrollHandler := handlers.NewPayrollHandler(scheduleService)

	routes.RegisterRoutes(router, scheduleHandler, payrollHandler)

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
