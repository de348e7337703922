package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/storage"
	"github.com/GriffinCanCode/storage/internal/config"
	"github.com/GriffinCanCode/storage/internal/logging"
	"github.com/GriffinCanCode/storage/internal/monitoring"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	logger  *logging.Logger
	cfg     *config.Config
	metrics *monitoring.Metrics
	httpSrv *http.Server
}

// New creates a new server instance.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	// Route library diagnostics through the service logger.
	storage.SetLogger(logger.Logger)

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(corsMiddleware(cfg.CORS))

	h := newHandlers(cfg.Storage.Root, logger, metrics)

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	fs := router.Group("/fs")
	{
		fs.POST("/read", h.read)
		fs.POST("/write", h.write)
		fs.POST("/append", h.appendContent)
		fs.POST("/prepend", h.prepend)
		fs.POST("/delete", h.remove)
		fs.POST("/mkdir", h.mkdir)
		fs.POST("/copy", h.copyEntry)
		fs.POST("/move", h.moveEntry)
		fs.POST("/clean", h.clean)
		fs.POST("/rmdir", h.rmdir)
		fs.GET("/list", h.list)
		fs.GET("/walk", h.walk)
		fs.GET("/stat", h.stat)
		fs.GET("/mime", h.mime)
	}

	logger.Info("server initialized",
		zap.String("port", cfg.Server.Port),
		zap.String("root", cfg.Storage.Root),
	)

	return &Server{
		router:  router,
		logger:  logger,
		cfg:     cfg,
		metrics: metrics,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.logger.Info("starting HTTP server", zap.String("addr", addr))

	s.httpSrv = &http.Server{Addr: addr, Handler: s.router}
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
