// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"net/http"
	"net/http/pprof"

	"github.com/go-kit/kit/metrics"
	"github.com/gorilla/mux"
	"github.com/pyplayground/frontdoor/xhttp"
	"github.com/pyplayground/frontdoor/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrNoPrimaryHandler is returned by BuildPrimary when the Builder has no PrimaryHandler.
var ErrNoPrimaryHandler = errors.New("a primary handler is required")

// Builder implements the instantiation logic for each of frontdoor's servers.
// This builder type is the standard way to construct the set of servers to run.
type Builder struct {
	// Configuration is the parsed configuration data.  If nil, defaults are used.
	Configuration *Configuration

	// Logger is the base logger for every server.  If nil, logging is discarded.
	Logger *zap.Logger

	// Registry supplies the active connections gauge and the /metrics endpoint.  Optional.
	Registry xmetrics.Registry

	// PrimaryHandler is the http.Handler used for the primary server.  Required.
	PrimaryHandler http.Handler

	// HealthHandler is the http.Handler for /health on the health server.  If nil,
	// the health server only exposes /metrics.
	HealthHandler http.Handler
}

func (b *Builder) configuration() *Configuration {
	if b.Configuration != nil {
		return b.Configuration
	}

	c, _ := NewConfiguration(nil)
	return c
}

// ServerName returns the configured server name, or DefaultServerName.
func (b *Builder) ServerName() string {
	if c := b.configuration(); len(c.ServerName) > 0 {
		return c.ServerName
	}

	return DefaultServerName
}

func (b *Builder) activeConnections(name string) metrics.Gauge {
	if b.Registry == nil {
		return nil
	}

	return b.Registry.NewGauge(ActiveConnections).With(ServerLabel, name)
}

func (b *Builder) newServer(name string, o xhttp.ServerOptions, handler http.Handler) *Server {
	return NewServer(name, o, handler, b.Logger, b.activeConnections(name), b.configuration().Debug)
}

// BuildPrimary returns the primary server, which is always present.
func (b *Builder) BuildPrimary() (*Server, error) {
	if b.PrimaryHandler == nil {
		return nil, ErrNoPrimaryHandler
	}

	return b.newServer(b.ServerName(), b.configuration().Primary, b.PrimaryHandler), nil
}

// BuildHealth returns the server that exposes health and metrics, or nil if it has no address.
func (b *Builder) BuildHealth() *Server {
	o := b.configuration().Health
	if len(o.Address) == 0 {
		return nil
	}

	return b.newServer(b.ServerName()+healthSuffix, o, NewHealthHandler(b.HealthHandler, b.Registry))
}

// BuildPprof returns the server that exposes net/http/pprof, or nil if it has no address.
func (b *Builder) BuildPprof() *Server {
	o := b.configuration().Pprof
	if len(o.Address) == 0 {
		return nil
	}

	return b.newServer(b.ServerName()+pprofSuffix, o, NewPprofHandler())
}

// BuildAll returns every configured server, primary last so that the supporting servers are
// already accepting when the primary starts.
func (b *Builder) BuildAll() ([]*Server, error) {
	primary, err := b.BuildPrimary()
	if err != nil {
		return nil, err
	}

	var servers []*Server
	for _, s := range []*Server{b.BuildPprof(), b.BuildHealth()} {
		if s != nil {
			servers = append(servers, s)
		}
	}

	return append(servers, primary), nil
}

// Append binds each server's start and stop to an fx lifecycle.
func Append(lc fx.Lifecycle, servers ...*Server) {
	for _, s := range servers {
		lc.Append(s.Hook())
	}
}

// NewHealthHandler routes GET /health to the given handler and GET /metrics to the registry.
// Either may be nil, in which case its route is not registered.
func NewHealthHandler(health http.Handler, r xmetrics.Registry) http.Handler {
	router := mux.NewRouter()
	if health != nil {
		router.Handle("/health", health).Methods(http.MethodGet)
	}

	if r != nil {
		router.Handle("/metrics", xmetrics.Handler(r)).Methods(http.MethodGet)
	}

	return router
}

// NewPprofHandler exposes net/http/pprof under /debug/pprof/ without touching http.DefaultServeMux.
func NewPprofHandler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	router.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
	return router
}
