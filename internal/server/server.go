// Package server is a gin host demonstrating the response envelopes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/config"
	"github.com/stellrent/response/ctxutil"
	"github.com/stellrent/response/logging/logger"
	"github.com/stellrent/response/net/resp"
	"github.com/stellrent/response/validator"
)

const (
	shutdownTimeout = 10 * time.Second

	// maxTraceIDLength bounds client supplied trace ids.
	maxTraceIDLength = 64
)

var installValidator sync.Once

// Server represents the application server.
type Server struct {
	config *config.Config
	logger *logger.Logger
	engine *gin.Engine
	now    func() time.Time
}

// New creates a server and sets up its router.
func New(cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		config: cfg,
		logger: log,
		now:    time.Now,
	}
	s.engine = s.setupRouter()
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Server.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(ctx, "listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

// setupRouter sets up the gin router.
func (s *Server) setupRouter() *gin.Engine {
	switch s.config.RunMode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(s.config.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	installValidator.Do(func() {
		binding.Validator = validator.Binding()
	})

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(s.traceMiddleware(), s.loggerMiddleware(), gin.CustomRecovery(s.recover))

	r.NoRoute(func(c *gin.Context) {
		resp.JSON(c, resp.NotFound(s.withLogger(c)))
	})
	r.NoMethod(func(c *gin.Context) {
		resp.JSON(c, resp.MethodNotAllowed(s.withLogger(c)))
	})

	r.GET("/healthz", s.health)
	r.GET("/version", s.version)

	v1 := r.Group("/v1")
	v1.POST("/echo", s.createEcho)
	v1.DELETE("/echo/:id", s.deleteEcho)
	v1.GET("/status/:code", s.status)

	return r
}

// withLogger routes an intent's diagnostics through the request entry.
func (s *Server) withLogger(c *gin.Context) resp.Option {
	return resp.WithLogger(s.logger.Entry(c.Request.Context()))
}

// traceMiddleware propagates or assigns a trace id and embeds the gin
// context so context lookups see request values.
func (s *Server) traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		if id := c.GetHeader(ctxutil.TraceIDHeader); validTraceID(id) {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(ctxutil.TraceIDHeader, traceID)
		c.Next()
	}
}

// validTraceID accepts non-empty ids of at most maxTraceIDLength letters,
// digits, '-', '_' and '.'. Anything else is replaced by a fresh id.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// loggerMiddleware creates request logging middleware.
func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.Entry(c.Request.Context()).WithFields(logrus.Fields{
			"method":   method,
			"path":     path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("HTTP request")
	}
}

func (s *Server) recover(c *gin.Context, err any) {
	s.logger.Errorf(c.Request.Context(), "panic recovered: %v", err)
	resp.JSON(c, resp.ServerError(s.withLogger(c)))
}
