// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"time"
)

const (
	// DefaultServerName is the default value for the server name.  It is also the application name
	// used to locate configuration files and environment variables.
	DefaultServerName = "frontdoor"

	// DefaultPrimaryAddress is the default bind address of the primary server:  all interfaces, port 5000.
	DefaultPrimaryAddress = "0.0.0.0:5000"

	// DefaultDebug is the default for developer diagnostics, which are on unless turned off.
	DefaultDebug = true

	// DefaultHealthInterval is the default interval on which health statistics are dispatched
	DefaultHealthInterval = time.Minute

	// DefaultShutdownTimeout bounds how long servers are given to drain on stop
	DefaultShutdownTimeout = 15 * time.Second

	// healthSuffix is the string appended to server name's to produce the health server name
	healthSuffix = ".health"

	// pprofSuffix is the string appended to server name's to produce the pprof server name
	pprofSuffix = ".pprof"
)
