// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pyplayground/frontdoor/xhttp"
	"github.com/pyplayground/frontdoor/xmetrics"
	"github.com/spf13/viper"
)

// Configuration provides the configuration options common to all of frontdoor's servers.
type Configuration struct {
	// ServerName is the human-readable name for this server.  This will be used as the name of
	// the logger and the prefix of the optional servers' names.
	ServerName string

	// Debug turns on developer diagnostics: debug logging, connection state logging, and template reloading.
	Debug bool

	// Primary configures the server that exposes the front door routes.
	Primary xhttp.ServerOptions

	// Health configures the server that exposes /health and /metrics.  It is disabled when it has no address.
	Health xhttp.ServerOptions

	// Pprof configures the server that exposes net/http/pprof.  It is disabled when it has no address.
	Pprof xhttp.ServerOptions

	// HealthInterval is the interval at which health statistics are dispatched to listeners
	HealthInterval time.Duration

	// ShutdownTimeout bounds how long servers are given to drain on stop
	ShutdownTimeout time.Duration

	// Metrics configures the Prometheus registry
	Metrics xmetrics.Options

	// Headers are written into every primary response
	Headers http.Header
}

// SetDefaults registers the default configuration values with a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("serverName", DefaultServerName)
	v.SetDefault("debug", DefaultDebug)
	v.SetDefault("primary.address", DefaultPrimaryAddress)
	v.SetDefault("health.address", "")
	v.SetDefault("pprof.address", "")
	v.SetDefault("healthInterval", DefaultHealthInterval)
	v.SetDefault("shutdownTimeout", DefaultShutdownTimeout)
}

// DecodeHook is the mapstructure hook used when unmarshaling configuration, allowing durations
// and comma-separated lists to be written as strings.
func DecodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// NewConfiguration unmarshals a Configuration from a Viper instance.  Values missing from
// the Viper instance fall back to the package defaults.
func NewConfiguration(v *viper.Viper) (*Configuration, error) {
	c := &Configuration{
		ServerName:      DefaultServerName,
		Debug:           DefaultDebug,
		Primary:         xhttp.ServerOptions{Address: DefaultPrimaryAddress},
		HealthInterval:  DefaultHealthInterval,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v != nil {
		if err := v.Unmarshal(c, DecodeHook()); err != nil {
			return nil, fmt.Errorf("unable to unmarshal server configuration: %w", err)
		}
	}

	if len(c.ServerName) == 0 {
		c.ServerName = DefaultServerName
	}

	if len(c.Primary.Address) == 0 {
		c.Primary.Address = DefaultPrimaryAddress
	}

	return c, nil
}
