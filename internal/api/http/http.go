package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start serves the report API until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context, svc ReportService, health Pinger) error {
	if s.hs != nil {
		return fmt.Errorf("http server already started")
	}

	var mws []func(http.Handler) http.Handler
	if s.c.RateLimit.Max > 0 && s.c.RateLimit.Window > 0 {
		mws = append(mws, ratelimit.Middleware(ratelimit.NewLimiter(ctx, s.c.RateLimit.Window, s.c.RateLimit.Max)))
	}

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           NewRouter(svc, health, s.c.AllowedOrigins, mws...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "analytics api listening",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop shuts the server down, waiting up to five seconds for open requests.
func (s *Server) Stop() {
	if s.hs == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.hs.Shutdown(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't shutdown http server",
			slog.String("err", err.Error()),
		)
	}
}
