// Package httpapi exposes the bloglist service over HTTP: routing,
// request-identity resolution, and the JSON contracts of the API.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dpavlenko/bloglist/internal/logging"
	"github.com/dpavlenko/bloglist/internal/metrics"
	"github.com/dpavlenko/bloglist/internal/server/blogs"
	"github.com/dpavlenko/bloglist/internal/server/users"
)

type Server struct {
	address  string
	users    *users.Service
	blogs    *blogs.Service
	logger   logging.Logger
	resolver *Resolver
	metrics  *metrics.Collector
}

func NewServer(a string, l logging.Logger, us *users.Service, bs *blogs.Service, secretKey string) (*Server, error) {
	return &Server{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		blogs:    bs,
		resolver: NewResolver(secretKey, us),
		metrics:  metrics.NewCollector(),
	}, nil
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
