// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pyplayground/frontdoor/frontdoor"
	"github.com/pyplayground/frontdoor/health"
	"github.com/pyplayground/frontdoor/logging"
	"github.com/pyplayground/frontdoor/server"
	"github.com/pyplayground/frontdoor/xmetrics"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	applicationName = "frontdoor"

	pageKey = "page"
	corsKey = "cors"
)

type serversIn struct {
	fx.In

	Configuration *server.Configuration
	Logger        *zap.Logger
	Registry      xmetrics.Registry
	Health        *health.Health
	Page          frontdoor.PageOptions
	CORS          frontdoor.CORSOptions
}

func newRegistry(c *server.Configuration) (xmetrics.Registry, error) {
	o := c.Metrics
	o.Metrics = append(append([]xmetrics.Metric{}, o.Metrics...), server.Metrics()...)
	return xmetrics.NewRegistry(&o)
}

func newHealth(lc fx.Lifecycle, c *server.Configuration, logger *zap.Logger) *health.Health {
	h := health.New(c.HealthInterval, logger)
	h.AddStatsListener(health.LogListener(logger))
	lc.Append(fx.Hook{
		OnStart: h.Start,
		OnStop:  h.Stop,
	})

	return h
}

func newServers(in serversIn) ([]*server.Server, error) {
	primary, err := frontdoor.NewPrimaryHandler(frontdoor.PrimaryOptions{
		ServerName: in.Configuration.ServerName,
		Logger:     in.Logger,
		Registry:   in.Registry,
		Health:     in.Health,
		Reload:     in.Configuration.Debug,
		Page:       in.Page,
		CORS:       in.CORS,
		Headers:    in.Configuration.Headers,
	})

	if err != nil {
		return nil, err
	}

	b := server.Builder{
		Configuration:  in.Configuration,
		Logger:         in.Logger,
		Registry:       in.Registry,
		PrimaryHandler: primary,
		HealthHandler:  in.Health,
	}

	return b.BuildAll()
}

func unmarshalKey[T any](v *viper.Viper, key string) (T, error) {
	var value T
	if err := v.UnmarshalKey(key, &value, server.DecodeHook()); err != nil {
		return value, fmt.Errorf("unable to unmarshal %s configuration: %w", key, err)
	}

	return value, nil
}

// newApp parses the command line and configuration, then assembles the fx application.
// The returned logger is never nil, even when an error is returned.
func newApp(arguments []string, options ...fx.Option) (*fx.App, *zap.Logger, error) {
	var (
		logger = logging.Default()
		v      = server.NewViper(applicationName)
		fs     = server.NewFlagSet(applicationName)
	)

	if err := server.ParseAndBind(v, fs, arguments); err != nil {
		return nil, logger, err
	}

	configuration, err := server.NewConfiguration(v)
	if err != nil {
		return nil, logger, err
	}

	loggingConfig, err := logging.FromViper(logging.Sub(v))
	if err != nil {
		return nil, logger, err
	}

	if logger, err = logging.New(loggingConfig, configuration.Debug); err != nil {
		return nil, logging.Default(), err
	}

	page, err := unmarshalKey[frontdoor.PageOptions](v, pageKey)
	if err != nil {
		return nil, logger, err
	}

	cors, err := unmarshalKey[frontdoor.CORSOptions](v, corsKey)
	if err != nil {
		return nil, logger, err
	}

	logger.Info(
		"configuration loaded",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Bool("debug", configuration.Debug),
		zap.String("address", configuration.Primary.Address),
	)

	app := fx.New(
		append(
			[]fx.Option{
				fx.WithLogger(func() fxevent.Logger {
					return &fxevent.ZapLogger{Logger: logger.Named("fx")}
				}),
				fx.StopTimeout(configuration.ShutdownTimeout),
				fx.Supply(configuration, logger, page, cors),
				fx.Provide(
					newRegistry,
					newHealth,
					newServers,
				),
				fx.Invoke(func(lc fx.Lifecycle, servers []*server.Server) {
					server.Append(lc, servers...)
				}),
			},
			options...,
		)...,
	)

	return app, logger, app.Err()
}

func run(arguments []string) int {
	app, logger, err := newApp(arguments)
	defer logger.Sync()

	switch {
	case errors.Is(err, pflag.ErrHelp):
		return 0

	case err != nil:
		logger.Error("unable to initialize", zap.Error(err))
		return 1
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Error("unable to start", zap.Error(err))
		return 2
	}

	signal := <-app.Done()
	logger.Info("shutting down", zap.Stringer("signal", signal))

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("unable to stop cleanly", zap.Error(err))
		return 3
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
