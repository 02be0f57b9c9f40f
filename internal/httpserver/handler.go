package httpserver

import (
	"context"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	// Static frontend. The smoke test probes / for a 200.
	if srv.staticDir != "" {
		srv.gin.StaticFile("/", filepath.Join(srv.staticDir, "index.html"))
		srv.gin.Static("/assets", srv.staticDir)
	}
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.authService, srv.rateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	authHandler := auth.NewHandler(srv.l, srv.authService)
	auth.RegisterRoutes(api.Group("/auth"), authHandler, mw)
	srv.l.Infof(ctx, "Auth routes registered under /api/v1/auth")

	if srv.calendarClient != nil {
		calendarHandler := calendar.NewHandler(srv.l, srv.calendarClient)
		calendar.RegisterRoutes(api.Group("/calendar"), calendarHandler, mw)
		srv.l.Infof(ctx, "Calendar routes registered under /api/v1/calendar")
	} else {
		srv.l.Infof(ctx, "Calendar client not configured, skipping calendar routes")
	}
}
