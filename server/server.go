// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/pyplayground/frontdoor/logging"
	"github.com/pyplayground/frontdoor/xhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrAlreadyStarted is returned when Start is invoked more than once.
var ErrAlreadyStarted = errors.New("server already started")

// Server is a single named HTTP server whose lifecycle is driven by Start and Stop.
// The listener is bound synchronously in Start, so bind failures surface as startup errors.
type Server struct {
	name    string
	options xhttp.ServerOptions
	logger  *zap.Logger
	gauge   metrics.Gauge
	server  *http.Server

	lock     sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// NewServer creates a Server.  The gauge tracks active connections and may be nil.  When debug is
// set, connection state changes are logged.
func NewServer(name string, o xhttp.ServerOptions, handler http.Handler, logger *zap.Logger, gauge metrics.Gauge, debug bool) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(zap.String(logging.ServerKey, name))
	if gauge == nil {
		gauge = discard.NewGauge()
	}

	return &Server{
		name:    name,
		options: o,
		logger:  logger,
		gauge:   gauge,
		server:  xhttp.NewServer(o, handler, logger, debug),
	}
}

// Name returns the human-readable identifier for this server
func (s *Server) Name() string {
	return s.name
}

// Https tests if this server uses HTTPS
func (s *Server) Https() bool {
	return len(s.options.CertificateFile) > 0 && len(s.options.KeyFile) > 0
}

// Addr returns the bound address, or nil if this server has not been started.  This is
// the way to discover the actual port when the configured address uses port 0.
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return s.listener.Addr()
	}

	return nil
}

// Start binds the configured address and begins serving in a separate goroutine.
func (s *Server) Start(context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return ErrAlreadyStarted
	}

	l, err := net.Listen("tcp", s.options.Address)
	if err != nil {
		return fmt.Errorf("unable to bind %s server to [%s]: %w", s.name, s.options.Address, err)
	}

	s.listener = InstrumentListener(s.logger, s.gauge, l)
	s.done = make(chan struct{})

	starter := xhttp.NewStarter(s.options.StartOptions(s.logger, s.listener), s.server)
	go func() {
		defer close(s.done)
		starter()
	}()

	return nil
}

// Stop gracefully shuts down this server, waiting for in-flight requests until the context is done.
// Stopping a server that was never started does nothing.
func (s *Server) Stop(ctx context.Context) error {
	s.lock.Lock()
	done := s.done
	s.lock.Unlock()

	if done == nil {
		return nil
	}

	err := s.server.Shutdown(ctx)
	select {
	case <-done:
	case <-ctx.Done():
	}

	return err
}

// Hook returns the fx lifecycle hook that starts and stops this server.
func (s *Server) Hook() fx.Hook {
	return fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	}
}
