package serve

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/junction"
	"github.com/xy-planning-network/junction/logger"
)

const (
	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":8080"
	portEnvVar                = "PORT"
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Shutdown defaults
	shutdownTimeoutEnvVar  = "SERVER_SHUTDOWN_TIMEOUT"
	DefaultShutdownTimeout = 5 * time.Second
)

// A Runner drives an http.Handler as a web server, owning its startup,
// configuration and orderly shutdown.
type Runner struct {
	cancel context.CancelFunc
	ctx    context.Context
	host   string
	ls     logger.Logger
	port   string
	srv    *http.Server
	stop   time.Duration
}

// New constructs a *Runner serving h from the provided options.
// Options overwrite the configuration otherwise read from environment
// variables; confer the package doc for those.
func New(h http.Handler, opts ...RunnerOption) (*Runner, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler", junction.ErrBadConfig)
	}

	r := new(Runner)
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.ls == nil {
		r.ls = logger.New()
	}

	if r.stop == 0 {
		r.stop = junction.EnvVarOrDuration(shutdownTimeoutEnvVar, DefaultShutdownTimeout)
	}

	if r.host == "" {
		r.host = junction.EnvVarOrString(hostEnvVar, DefaultHost)
	}
	if r.port == "" {
		r.port = junction.EnvVarOrString(portEnvVar, DefaultPort)
	}
	if r.port[0] != ':' {
		r.port = ":" + r.port
	}

	if r.srv == nil {
		r.srv = defaultServer()
	}
	if r.srv.Addr == "" {
		r.srv.Addr = r.host + r.port
	}
	r.srv.Handler = h
	r.srv.BaseContext = func(_ net.Listener) context.Context { return r.ctx }

	return r, nil
}

func (r *Runner) EmitLogger() logger.Logger { return r.ls }
func (r *Runner) EmitServer() *http.Server  { return r.srv }

// Cancel returns the function stopping a running Runner.
func (r *Runner) Cancel() context.CancelFunc { return r.cancel }

// Run begins the web server and blocks until it stops.
//
// These, and (*Runner).Shutdown, stop Run:
//
// - the function (*Runner).Cancel returns
// - canceling the context supplied through WithContext
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// A server that cannot listen on its address returns that error immediately.
func (r *Runner) Run() error {
	defer r.cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.ls.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errc := make(chan error, 1)
	go func() {
		r.ls.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errc:
		r.ls.Error(err.Error(), nil)
		return err
	case <-r.ctx.Done():
	}

	return r.Shutdown()
}

// Shutdown stops the web server, allowing in-flight requests
// DefaultShutdownTimeout (or the configured override) to complete.
func (r *Runner) Shutdown() error {
	r.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), r.stop)
	defer cancel()

	r.ls.Info("shutting down web server", nil)
	if err := r.srv.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.ls.Info("web server shutdown successfully", nil)
	return nil
}

// defaultServer constructs a default *http.Server.
func defaultServer() *http.Server {
	return &http.Server{
		IdleTimeout:  junction.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  junction.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: junction.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}
