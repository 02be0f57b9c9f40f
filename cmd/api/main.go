package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// @title       Calendar Assistant API
// @description OAuth-backed Google Calendar assistant backend.
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

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. OAuth service
	authService, err := auth.NewService(logger, cfg.Google, cfg.Auth)
	if err != nil {
		logger.Error(ctx, "Failed to initialize OAuth service: ", err)
		return
	}
	logger.Infof(ctx, "OAuth configured: %d scope(s), redirect %s",
		len(authService.Scopes()), authService.RedirectURI())

	// 4. Google Calendar client
	calendarClient, err := gcalendar.New(logger, authService.OAuthConfig())
	if err != nil {
		logger.Error(ctx, "Failed to initialize calendar client: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		StaticDir:       cfg.Frontend.StaticDir,
		AuthService:     authService,
		CalendarClient:  calendarClient,
		RateLimitPerMin: cfg.Auth.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
