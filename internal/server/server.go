package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/studytrack/internal/logger"
)

var errNothingToServe = errors.New("server needs a handler and a listen address")

// Server is the emulator's listener. RunServer blocks until SIGINT, SIGTERM
// or SIGQUIT and then drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates a Server listening on addr. It fails when there is
// nothing to serve.
func NewServer(handler http.Handler, addr string, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", addr).Msg("creating new server...")
	if handler == nil || addr == "" {
		return nil, errNothingToServe
	}

	return &server{
		httpServer: newHTTPServer(handler, addr, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done, then shuts the listener down.
func (s *server) run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
