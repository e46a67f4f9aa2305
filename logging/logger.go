// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Structured field keys shared by the packages in this module.
const (
	ServerKey     = "server"
	AddressKey    = "address"
	RequestIDKey  = "requestID"
	RemoteAddrKey = "remoteAddr"
	StateKey      = "state"
)

// New creates the root zap.Logger.  A nil config yields zap's development logger when debug
// is set and its production logger otherwise.  A non-nil config is built with sallust, with
// debug forcing development mode and, absent an explicit level, the debug level.
func New(c *sallust.Config, debug bool) (*zap.Logger, error) {
	if c == nil {
		if debug {
			return zap.NewDevelopment()
		}

		return zap.NewProduction()
	}

	cfg := *c
	if debug {
		cfg.Development = true
		if len(cfg.Level) == 0 {
			cfg.Level = "debug"
		}
	}

	return cfg.Build()
}

// Default returns the logger used when none has been configured.
func Default() *zap.Logger {
	return sallust.Default()
}
