package serve

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/logger"
)

// A RunnerOption configures the *Runner under construction by New.
type RunnerOption func(r *Runner) error

// WithAddress sets the host and port the web server listens on, overriding
// the HOST and PORT environment variables. Either can be left empty to keep
// the environment's value.
func WithAddress(host, port string) RunnerOption {
	return func(r *Runner) error {
		r.host = host
		r.port = port

		return nil
	}
}

// WithContext makes ctx the base context of every request and a parent of
// the Runner's own lifetime: canceling it stops Run.
func WithContext(ctx context.Context) RunnerOption {
	return func(r *Runner) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context", junction.ErrBadConfig)
		}
		r.ctx = ctx

		return nil
	}
}

// WithLogger sets the logger the Runner narrates startup and shutdown with.
func WithLogger(ls logger.Logger) RunnerOption {
	return func(r *Runner) error {
		r.ls = ls

		return nil
	}
}

// WithServer swaps in a fully configured *http.Server. The Runner still owns
// its Handler and BaseContext.
func WithServer(srv *http.Server) RunnerOption {
	return func(r *Runner) error {
		if srv == nil {
			return fmt.Errorf("%w: nil server", junction.ErrBadConfig)
		}
		r.srv = srv

		return nil
	}
}

// WithShutdownTimeout sets how long Shutdown waits on in-flight requests.
func WithShutdownTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) error {
		if d <= 0 {
			return fmt.Errorf("%w: shutdown timeout must be positive", junction.ErrBadConfig)
		}
		r.stop = d

		return nil
	}
}
