package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
)

type Server struct {
	httpServer      *http.Server
	log             logger.Logger
	port            string
	timeoutGraceful time.Duration
}

func NewServer(
	log logger.Logger,
	port string,
	readTimeout, writeTimeout, idleTimeout, timeoutGraceful time.Duration,
	handler http.Handler,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		log:             log,
		port:            port,
		timeoutGraceful: timeoutGraceful,
	}
}

func (s *Server) Start() error {
	s.log.Infof("HTTP server is starting on port %s", s.port)

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed to serve: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("HTTP server is stopping gracefully")

	ctx, cancel := context.WithTimeout(ctx, s.timeoutGraceful)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Warnf("HTTP server graceful shutdown timed out, closing connections: %v", err)
		if closeErr := s.httpServer.Close(); closeErr != nil {
			return fmt.Errorf("failed to close HTTP server: %w", closeErr)
		}
		return err
	}
	s.log.Info("HTTP server stopped gracefully")
	return nil
}
