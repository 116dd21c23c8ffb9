package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smarttaskai/internal/assistant"
	"smarttaskai/pkg/gcalendar"
	"smarttaskai/pkg/gotrue"
	"smarttaskai/pkg/log"
	"smarttaskai/pkg/postgrest"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Hosted collaborators
	store *postgrest.Client
	auth  *gotrue.Client
	gen   assistant.Generator

	// Optional calendar sync
	calendar   *gcalendar.Client
	calendarID string

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Store *postgrest.Client
	Auth  *gotrue.Client
	Gen   assistant.Generator

	Calendar   *gcalendar.Client
	CalendarID string

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
		store:           cfg.Store,
		auth:            cfg.Auth,
		gen:             cfg.Gen,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.store == nil {
		return errors.New("store client is required")
	}
	if srv.auth == nil {
		return errors.New("auth client is required")
	}
	if srv.gen == nil {
		return errors.New("model client is required")
	}
	return nil
}
