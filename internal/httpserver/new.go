package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"day-planner/internal/planner"
	"day-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Planner domain
	plannerUC       planner.UseCase
	defaultTimeZone string
	requestsPerMin  int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PlannerUseCase  planner.UseCase
	DefaultTimeZone string
	RequestsPerMin  int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		plannerUC:       cfg.PlannerUseCase,
		defaultTimeZone: cfg.DefaultTimeZone,
		requestsPerMin:  cfg.RequestsPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerUC == nil {
		return errors.New("planner use case is required")
	}
	return nil
}
