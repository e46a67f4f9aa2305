// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frontdoor

import (
	"errors"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pyplayground/frontdoor/health"
	"github.com/pyplayground/frontdoor/logging/logginghttp"
	"github.com/pyplayground/frontdoor/server"
	"github.com/pyplayground/frontdoor/xhttp"
	"github.com/pyplayground/frontdoor/xmetrics"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var ErrNoLogger = errors.New("a logger is required")

// CORSOptions controls cross-origin access to the primary routes.  With no AllowedOrigins,
// no CORS headers are written at all.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedHeaders []string
	MaxAge         int
}

func (c CORSOptions) constructor() alice.Constructor {
	if len(c.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.New(cors.Options{
		AllowedOrigins: c.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
		AllowedHeaders: c.AllowedHeaders,
		MaxAge:         c.MaxAge,
	}).Handler
}

// PrimaryOptions holds everything needed to build the primary server's handler.
type PrimaryOptions struct {
	// ServerName names the tracing operation.  Defaults to server.DefaultServerName.
	ServerName string

	// Logger is the base for every request logger.  Required.
	Logger *zap.Logger

	// Registry supplies the request metrics.  Optional.
	Registry xmetrics.Registry

	// Health receives request events.  Optional.
	Health *health.Health

	// Reload parses the page template on every request.
	Reload bool

	Page    PageOptions
	CORS    CORSOptions
	Headers http.Header
}

func (o PrimaryOptions) instrument() []alice.Constructor {
	if o.Registry == nil {
		return nil
	}

	var (
		inFlight = o.Registry.NewGaugeVec(server.InFlightRequests).WithLabelValues()
		counter  = o.Registry.NewCounterVec(server.APIRequestsTotal)
		duration = o.Registry.NewHistogramVec(server.RequestDurationSeconds)
	)

	return []alice.Constructor{
		func(next http.Handler) http.Handler { return promhttp.InstrumentHandlerInFlight(inFlight, next) },
		func(next http.Handler) http.Handler { return promhttp.InstrumentHandlerCounter(counter, next) },
		func(next http.Handler) http.Handler { return promhttp.InstrumentHandlerDuration(duration, next) },
	}
}

// NewPrimaryHandler builds the router and decorates it, outermost first, with tracing, request
// logging, request metrics, health tracking, CORS and the configured static headers.
func NewPrimaryHandler(o PrimaryOptions) (http.Handler, error) {
	if o.Logger == nil {
		return nil, ErrNoLogger
	}

	page, err := NewPage(o.Page, o.Reload)
	if err != nil {
		return nil, err
	}

	run, err := NewRunHandler()
	if err != nil {
		return nil, err
	}

	operation := o.ServerName
	if len(operation) == 0 {
		operation = server.DefaultServerName
	}

	chain := alice.New(
		func(next http.Handler) http.Handler { return otelhttp.NewHandler(next, operation) },
		logginghttp.SetLogger(o.Logger, logginghttp.StandardFields),
	)

	chain = chain.Append(o.instrument()...)
	if o.Health != nil {
		chain = chain.Append(o.Health.RequestTracker)
	}

	chain = chain.Append(
		o.CORS.constructor(),
		xhttp.StaticHeaders(o.Headers),
	)

	return chain.Then(NewRouter(page, run)), nil
}
