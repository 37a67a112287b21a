package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type HTTP struct {
	srv *http.Server
}

func NewHTTP(host string, port int, handler http.Handler) *HTTP {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return &HTTP{srv: &http.Server{Addr: addr, Handler: handler}}
}

func (h *HTTP) Addr() string { return h.srv.Addr }

// Start blocks until the listener fails or Shutdown is called.
func (h *HTTP) Start() error {
	if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (h *HTTP) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.srv.Shutdown(ctx)
}
