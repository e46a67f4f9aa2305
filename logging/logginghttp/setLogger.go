// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logginghttp

import (
	"net/http"

	"github.com/pyplayground/frontdoor/logging"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request identifier both in and out.
	RequestIDHeader = "X-Request-Id"

	// MaxRequestIDLength bounds the size of a client-supplied request identifier.  Longer
	// values are replaced with a generated one.
	MaxRequestIDLength = 128

	RequestMethodKey = "requestMethod"
	RequestURIKey    = "requestURI"
)

// LoggerFunc is a strategy for adding fields (possibly) based on an HTTP request.
// Functions of this type must append fields to the supplied slice and then return
// the new slice.
type LoggerFunc func([]zap.Field, *http.Request) []zap.Field

// StandardFields is a LoggerFunc that adds the request method, the unmodified request URI,
// and the remote address as filled in by the enclosing http.Server.
func StandardFields(f []zap.Field, request *http.Request) []zap.Field {
	return append(f,
		zap.String(RequestMethodKey, request.Method),
		zap.String(RequestURIKey, request.RequestURI),
		zap.String(logging.RemoteAddrKey, request.RemoteAddr),
	)
}

// Header returns a LoggerFunc that adds the value of the given request header under key.
// Multiple header values are joined as a string slice.
func Header(headerName, key string) LoggerFunc {
	return func(f []zap.Field, request *http.Request) []zap.Field {
		values := request.Header.Values(headerName)
		switch len(values) {
		case 0:
			return append(f, zap.String(key, ""))
		case 1:
			return append(f, zap.String(key, values[0]))
		default:
			return append(f, zap.Strings(key, values))
		}
	}
}

// RequestID returns the identifier for the given request.  A client-supplied RequestIDHeader
// is honored when it is nonempty and no longer than MaxRequestIDLength.  Otherwise, a new
// ksuid is generated.
func RequestID(request *http.Request) string {
	if id := request.Header.Get(RequestIDHeader); len(id) > 0 && len(id) <= MaxRequestIDLength {
		return id
	}

	return ksuid.New().String()
}

// SetLogger produces an Alice-style constructor that assigns every request an identifier,
// echoes it in the response, and inserts a logger derived from base into the request context.
// The derived logger always carries the request identifier.  Zero or more LoggerFuncs can be
// provided to add fields.
//
// The base logger must be non-nil.  There is no default applied.
func SetLogger(base *zap.Logger, lf ...LoggerFunc) func(http.Handler) http.Handler {
	if base == nil {
		panic("The base Logger cannot be nil")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			id := RequestID(request)
			response.Header().Set(RequestIDHeader, id)

			fields := []zap.Field{zap.String(logging.RequestIDKey, id)}
			for _, f := range lf {
				fields = f(fields, request)
			}

			next.ServeHTTP(
				response,
				request.WithContext(
					logging.WithLogger(request.Context(), base.With(fields...)),
				),
			)
		})
	}
}
