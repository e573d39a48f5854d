package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/insight"
)

const shutdownTimeout = 5 * time.Second

// Server is the calendar HTTP API
type Server struct {
	builder *calendar.Builder
	fetcher *insight.Fetcher
	logger  *zap.Logger
	router  *gin.Engine
}

// NewServer creates the API server and registers its routes
func NewServer(builder *calendar.Builder, fetcher *insight.Fetcher, logger *zap.Logger) *Server {
	if fetcher == nil {
		fetcher = insight.NewFetcher(nil, 0, logger)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(logger))

	s := &Server{
		builder: builder,
		fetcher: fetcher,
		logger:  logger,
		router:  router,
	}

	api := router.Group("/api")
	{
		api.GET("/month", s.handleMonth)
		api.GET("/year", s.handleYear)
		api.GET("/holidays", s.handleHolidays)
		api.GET("/holidays.ics", s.handleHolidaysICS)
		api.GET("/pattern", s.handlePattern)
		api.GET("/insight", s.handleInsight)
	}

	return s
}

// Handler returns the router as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP API listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
