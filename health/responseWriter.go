// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"bufio"
	"errors"
	"net"
	"net/http"
)

// Wrap returns a *health.ResponseWriter which wraps the given
// http.ResponseWriter
func Wrap(delegate http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: delegate,
	}
}

// ResponseWriter is a wrapper type for an http.ResponseWriter that exposes the status code.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// StatusCode returns the status written so far.  A handler that wrote a body without
// an explicit header, or wrote nothing at all, produced a 200.
func (r *ResponseWriter) StatusCode() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}

	return r.statusCode
}

func (r *ResponseWriter) WriteHeader(statusCode int) {
	if r.statusCode == 0 {
		r.statusCode = statusCode
	}

	r.ResponseWriter.WriteHeader(statusCode)
}

// Hijack delegates to the wrapped ResponseWriter, returning an error if the delegate does
// not implement http.Hijacker.
func (r *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := r.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}

	return nil, nil, errors.New("Wrapped response does not implement http.Hijacker")
}

// Flush delegates to the wrapped ResponseWriter.  If the delegate ResponseWriter does not
// implement http.Flusher, this method does nothing.
func (r *ResponseWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Unwrap exposes the delegate to http.ResponseController.
func (r *ResponseWriter) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
