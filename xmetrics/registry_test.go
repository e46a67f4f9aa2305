// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() *Options {
	return &Options{
		Namespace:               "test",
		Subsystem:               "basic",
		DisableGoCollector:      true,
		DisableProcessCollector: true,
		Metrics: []Metric{
			{Name: "counter", Type: CounterType, Help: "a test counter", LabelNames: []string{"code"}},
			{Name: "gauge", Type: GaugeType, Help: "a test gauge", LabelNames: []string{"server"}},
			{Name: "histogram", Type: HistogramType, Buckets: []float64{0.5, 1.0, 1.5}},
		},
	}
}

func TestNewRegistry(t *testing.T) {
	var (
		require = require.New(t)
		r, err  = NewRegistry(testOptions())
	)

	require.NoError(err)
	require.NotNil(r)

	t.Run("NewCounterVec", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewCounterVec("counter")
		assert.NotNil(preregistered)
		assert.Equal(preregistered, r.NewCounterVec("counter"))

		preregistered.WithLabelValues("200").Inc()
		assert.Equal(1.0, testutil.ToFloat64(preregistered.WithLabelValues("200")))

		adHoc := r.NewCounterVec("new_counter")
		assert.NotNil(adHoc)
		assert.Equal(adHoc, r.NewCounterVec("new_counter"))

		assert.Panics(func() { r.NewCounterVec("gauge") })
		assert.Panics(func() { r.NewCounterVec("histogram") })
	})

	t.Run("NewGauge", func(t *testing.T) {
		assert := assert.New(t)
		gauge := r.NewGauge("gauge").With("server", "primary")
		gauge.Add(2.0)
		gauge.Add(-1.0)
		assert.Equal(1.0, testutil.ToFloat64(r.NewGaugeVec("gauge").WithLabelValues("primary")))

		assert.Panics(func() { r.NewGaugeVec("counter") })
	})

	t.Run("NewHistogramVec", func(t *testing.T) {
		assert := assert.New(t)
		assert.NotNil(r.NewHistogramVec("histogram"))
		assert.Panics(func() { r.NewHistogramVec("counter") })
	})

	t.Run("Handler", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			response = httptest.NewRecorder()
			request  = httptest.NewRequest("GET", "/metrics", nil)
		)

		Handler(r).ServeHTTP(response, request)
		assert.Equal(http.StatusOK, response.Code)
		assert.Contains(response.Body.String(), "test_basic_counter")
	})
}

func TestNewRegistryDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := NewRegistry(nil)
	require.NoError(err)
	require.NotNil(r)

	families, err := r.Gather()
	require.NoError(err)
	assert.NotEmpty(families)
}

func TestNewRegistryErrors(t *testing.T) {
	testData := []struct {
		name    string
		metrics []Metric
	}{
		{"EmptyName", []Metric{{Type: CounterType}}},
		{"BadType", []Metric{{Name: "foo", Type: "summary"}}},
		{"Duplicate", []Metric{{Name: "foo", Type: CounterType}, {Name: "foo", Type: GaugeType}}},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			o := testOptions()
			o.Metrics = record.metrics

			r, err := NewRegistry(o)
			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}
