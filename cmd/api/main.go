package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smarttaskai/config"
	_ "smarttaskai/docs" // Swagger docs
	"smarttaskai/internal/httpserver"
	"smarttaskai/pkg/gcalendar"
	"smarttaskai/pkg/gemini"
	"smarttaskai/pkg/gotrue"
	"smarttaskai/pkg/log"
	"smarttaskai/pkg/postgrest"
)

// @title       SmartTaskAI API
// @description AI-powered task management with analytics, daily planning and Gemini suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SmartTaskAI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Store.URL)

	// 3. Hosted collaborators
	storeClient := postgrest.NewClient(cfg.Store.URL, cfg.Store.APIKey)
	authClient := gotrue.NewClient(cfg.Store.URL, cfg.Store.APIKey)
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Store: storeClient,
		Auth:  authClient,
		Gen:   geminiClient,

		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,

		RateLimitPerMin: cfg.Assistant.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
