package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/auth"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	staticDir   string

	authService     *auth.Service
	calendarClient  *gcalendar.Client
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	StaticDir   string

	AuthService     *auth.Service
	CalendarClient  *gcalendar.Client
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		staticDir:       cfg.StaticDir,
		authService:     cfg.AuthService,
		calendarClient:  cfg.CalendarClient,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authService == nil {
		return errors.New("auth service is required")
	}
	return nil
}
