// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the core abstraction for this package.  It is a Prometheus registry that also hands
// out the vectors it holds, either directly or wrapped as go-kit metrics.
//
// Lookups of a name that was never declared create and cache an ad hoc, unlabeled metric.  Lookups
// of a declared name with the wrong type panic.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	NewCounterVec(string) *prometheus.CounterVec
	NewGaugeVec(string) *prometheus.GaugeVec
	NewHistogramVec(string) *prometheus.HistogramVec

	NewGauge(string) metrics.Gauge
}

type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string
	cache     map[string]prometheus.Collector
}

func (r *registry) lookup(name string, create func() prometheus.Collector) prometheus.Collector {
	if existing, ok := r.cache[name]; ok {
		return existing
	}

	c := create()
	if err := r.Registry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			panic(err)
		}

		c = already.ExistingCollector
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounterVec(name string) *prometheus.CounterVec {
	c := r.lookup(name, func() prometheus.Collector {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	counterVec, ok := c.(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a counter", name))
	}

	return counterVec
}

func (r *registry) NewGaugeVec(name string) *prometheus.GaugeVec {
	c := r.lookup(name, func() prometheus.Collector {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	gaugeVec, ok := c.(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a gauge", name))
	}

	return gaugeVec
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	return gokitprometheus.NewGauge(r.NewGaugeVec(name))
}

func (r *registry) NewHistogramVec(name string) *prometheus.HistogramVec {
	c := r.lookup(name, func() prometheus.Collector {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	histogramVec, ok := c.(*prometheus.HistogramVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a histogram", name))
	}

	return histogramVec
}

// NewRegistry creates a Registry from a (possibly nil) Options, preregistering every declared Metric.
func NewRegistry(o *Options) (Registry, error) {
	var (
		defaultNamespace = o.namespace()
		defaultSubsystem = o.subsystem()
	)

	r := &registry{
		Registry:  o.registry(),
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		cache:     make(map[string]prometheus.Collector),
	}

	for _, m := range o.metrics() {
		if len(m.Name) == 0 {
			return nil, errors.New("Metric names cannot be empty")
		}

		if _, ok := r.cache[m.Name]; ok {
			return nil, fmt.Errorf("Duplicate metric %s", m.Name)
		}

		var (
			namespace = m.Namespace
			subsystem = m.Subsystem
			help      = m.Help
			c         prometheus.Collector
		)

		if len(namespace) == 0 {
			namespace = defaultNamespace
		}

		if len(subsystem) == 0 {
			subsystem = defaultSubsystem
		}

		if len(help) == 0 {
			help = m.Name
		}

		switch m.Type {
		case CounterType:
			c = prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      help,
			}, m.LabelNames)

		case GaugeType:
			c = prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      help,
			}, m.LabelNames)

		case HistogramType:
			c = prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      help,
				Buckets:   m.Buckets,
			}, m.LabelNames)

		default:
			return nil, fmt.Errorf("Unsupported metric type %q for %s", m.Type, m.Name)
		}

		if err := r.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("Error while preregistering metric %s: %w", m.Name, err)
		}

		r.cache[m.Name] = c
	}

	return r, nil
}

// Handler returns the http.Handler that exposes the given registry in the Prometheus text format.
func Handler(r Registry) http.Handler {
	return promhttp.InstrumentMetricHandler(
		r,
		promhttp.HandlerFor(r, promhttp.HandlerOpts{Registry: r}),
	)
}
