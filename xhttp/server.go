// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/pyplayground/frontdoor/logging"
	"go.uber.org/zap"
)

// NewServerLogger adapts a zap Logger onto a golang Logger in a way that is appropriate
// for http.Server.ErrorLog.  Everything net/http writes there is logged at the error level.
func NewServerLogger(logger *zap.Logger) *stdlog.Logger {
	if logger == nil {
		logger = logging.Default()
	}

	l, err := zap.NewStdLogAt(logger, zap.ErrorLevel)
	if err != nil {
		// only possible with an invalid level
		return zap.NewStdLog(logger)
	}

	return l
}

// NewServerConnStateLogger adapts a zap Logger onto a connection state handler appropriate
// for http.Server.ConnState.  State changes are logged at the debug level.
func NewServerConnStateLogger(logger *zap.Logger) func(net.Conn, http.ConnState) {
	if logger == nil {
		logger = logging.Default()
	}

	return func(c net.Conn, cs http.ConnState) {
		logger.Debug(
			"connection state change",
			zap.Stringer(logging.RemoteAddrKey, c.RemoteAddr()),
			zap.Stringer(logging.StateKey, cs),
		)
	}
}

// StartOptions represents the subset of server options that have to do with how
// an HTTP server is started.
type StartOptions struct {
	// Logger is the zap Logger to use for server startup and error logging.  If not
	// supplied, logging.Default() is used instead.
	Logger *zap.Logger

	// Listener is the net.Listener the server accepts connections on.  It is required.
	Listener net.Listener

	// DisableKeepAlives indicates whether the server should honor keep alives
	DisableKeepAlives bool

	// CertificateFile is the HTTPS certificate file.  If both this field and KeyFile are set,
	// an HTTPS starter function is created.
	CertificateFile string

	// KeyFile is the HTTPS key file.  If both this field and CertificateFile are set,
	// an HTTPS starter function is created.
	KeyFile string
}

// ErrNoListener is returned by a starter whose StartOptions carried no Listener.
var ErrNoListener = errors.New("a listener is required to start a server")

// NewStarter returns a starter closure for the given HTTP server.  The start options are first
// applied to the server instance, and the server instance must not have already been started prior
// to invoking this method.
//
// The returned closure blocks in either Serve or ServeTLS, based on whether CertificateFile and
// KeyFile are both set.  A return of http.ErrServerClosed is logged as a normal shutdown.
func NewStarter(o StartOptions, s httpServer) func() error {
	if o.Logger == nil {
		o.Logger = logging.Default()
	}

	if o.Listener == nil {
		return func() error {
			return ErrNoListener
		}
	}

	s.SetKeepAlivesEnabled(!o.DisableKeepAlives)

	var starter func() error
	if len(o.CertificateFile) > 0 && len(o.KeyFile) > 0 {
		starter = func() error {
			return s.ServeTLS(o.Listener, o.CertificateFile, o.KeyFile)
		}
	} else {
		starter = func() error {
			return s.Serve(o.Listener)
		}
	}

	return func() error {
		o.Logger.Info("starting server", zap.Stringer(logging.AddressKey, o.Listener.Addr()))
		err := starter()
		if errors.Is(err, http.ErrServerClosed) {
			o.Logger.Info("server closed")
		} else {
			o.Logger.Error("server exited", zap.Error(err))
		}

		return err
	}
}

// httpServer exposes the set of methods expected of an http.Server by this package.
type httpServer interface {
	Serve(net.Listener) error
	ServeTLS(net.Listener, string, string) error
	SetKeepAlivesEnabled(bool)
}

// ServerOptions describes the superset of options for both constructing an http.Server and
// starting it.  This type is unmarshaled from configuration.
type ServerOptions struct {
	// Address is the bind address of the server.  An empty address disables optional servers.
	Address string `json:"address,omitempty"`

	// ReadTimeout is the maximum duration for reading the entire request.  If not supplied, defaults to the
	// internal net/http default.
	ReadTimeout time.Duration `json:"readTimeout,omitempty"`

	// ReadHeaderTimeout is the amount of time allowed to read request headers.  If not supplied, defaults to
	// the internal net/http default.
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout,omitempty"`

	// WriteTimeout is the maximum duration before timing out writes of the response.  If not supplied, defaults
	// to the internal net/http default.
	WriteTimeout time.Duration `json:"writeTimeout,omitempty"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration `json:"idleTimeout,omitempty"`

	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header's
	// keys and values.  If not supplied, defaults to the internal net/http default.
	MaxHeaderBytes int `json:"maxHeaderBytes,omitempty"`

	// DisableKeepAlives indicates whether the server should honor keep alives
	DisableKeepAlives bool `json:"disableKeepAlives,omitempty"`

	// CertificateFile is the HTTPS certificate file.
	CertificateFile string `json:"certificateFile,omitempty"`

	// KeyFile is the HTTPS key file.
	KeyFile string `json:"keyFile,omitempty"`
}

// StartOptions produces a StartOptions with the corresponding values from this ServerOptions
func (so ServerOptions) StartOptions(logger *zap.Logger, l net.Listener) StartOptions {
	if logger == nil {
		logger = logging.Default()
	}

	return StartOptions{
		Logger:            logger,
		Listener:          l,
		DisableKeepAlives: so.DisableKeepAlives,
		CertificateFile:   so.CertificateFile,
		KeyFile:           so.KeyFile,
	}
}

// NewServer creates an http.Server from a supplied set of options.  When logConnState is set,
// every connection state change is logged at the debug level.
func NewServer(o ServerOptions, handler http.Handler, logger *zap.Logger, logConnState bool) *http.Server {
	s := &http.Server{
		Addr:              o.Address,
		Handler:           handler,
		ReadTimeout:       o.ReadTimeout,
		ReadHeaderTimeout: o.ReadHeaderTimeout,
		WriteTimeout:      o.WriteTimeout,
		IdleTimeout:       o.IdleTimeout,
		MaxHeaderBytes:    o.MaxHeaderBytes,
		ErrorLog:          NewServerLogger(logger),
	}

	if logConnState {
		s.ConnState = NewServerConnStateLogger(logger)
	}

	return s
}
