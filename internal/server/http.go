package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewHTTPServer builds a server for handler on address. Port 0 picks a free
// port; see [Server.Addr].
func NewHTTPServer(address string, handler http.Handler, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errNoAddress
	}
	logger.Info().Str("address", address).Msg("creating new http server...")

	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

func (h *httpServer) RunServer() error {
	h.mu.Lock()
	if h.listener != nil {
		h.mu.Unlock()
		return errAlreadyStarted
	}
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.mu.Unlock()
		return fmt.Errorf("listen on %s: %w", h.server.Addr, err)
	}
	h.listener = ln
	h.mu.Unlock()

	h.logger.Info().Str("func", "httpServer.RunServer").Str("address", ln.Addr().String()).Msg("serving http")
	if err = h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "httpServer.RunServer").Msg("http server stopped")
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServer.Shutdown").Msg("failed to shut down http server")
		return err
	}
	return nil
}

func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}
