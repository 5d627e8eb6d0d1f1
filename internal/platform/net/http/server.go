package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veritas/internal/platform/config"
	perr "veritas/internal/platform/errors"
	"veritas/internal/platform/logger"
	pnet "veritas/internal/platform/net"
)

// Server owns the root chi mux and the listener
type Server struct {
	mux      *chi.Mux
	srv      *stdhttp.Server
	shutdown time.Duration
}

// NewServer reads PORT (default :4000) and SHUTDOWN_TIMEOUT from cfg. opts
// run against the root mux before any route exists, which is where root
// middleware goes. Unknown routes and methods answer with the JSON envelope.
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	m.NotFound(notFound)
	m.MethodNotAllowed(methodNotAllowed)
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux:      m,
		shutdown: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       time.Minute,
		},
	}
}

func notFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("no route for %s", r.URL.Path))
}

func methodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	err := perr.Validationf("method", "%s is not allowed on %s", r.Method, r.URL.Path)
	_, env := pnet.Error(err, pnet.RequestID(r.Context()))
	env.StatusCode, env.Status = stdhttp.StatusMethodNotAllowed, stdhttp.StatusText(stdhttp.StatusMethodNotAllowed)
	JSON(w, stdhttp.StatusMethodNotAllowed, env)
}

// Router returns the Router facade over the root mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is done or the listener fails, then drains in flight
// requests for up to the shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", s.shutdown).Msg("http draining")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdown)
	defer cancel()
	return errors.Join(s.srv.Shutdown(sctx), ignoreClosed(<-served))
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func ignoreClosed(err error) error {
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}
