// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import "github.com/pyplayground/frontdoor/xmetrics"

// Names for our metrics
const (
	APIRequestsTotal       = "api_requests_total"
	InFlightRequests       = "in_flight_requests"
	RequestDurationSeconds = "request_duration_seconds"
	ActiveConnections      = "active_connections"
)

// labels
const (
	CodeLabel   = "code"
	MethodLabel = "method"
	ServerLabel = "server"
)

// Metrics returns the request handling metrics used by frontdoor's servers.
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       APIRequestsTotal,
			Type:       xmetrics.CounterType,
			Help:       "A counter for requests to the handler",
			LabelNames: []string{CodeLabel, MethodLabel},
		},
		{
			Name: InFlightRequests,
			Type: xmetrics.GaugeType,
			Help: "A gauge of requests currently being served by the handler.",
		},
		{
			Name:       RequestDurationSeconds,
			Type:       xmetrics.HistogramType,
			Help:       "A histogram of latencies for requests.",
			Buckets:    []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			LabelNames: []string{CodeLabel, MethodLabel},
		},
		{
			Name:       ActiveConnections,
			Type:       xmetrics.GaugeType,
			Help:       "The number of active connections associated with a listener",
			LabelNames: []string{ServerLabel},
		},
	}
}
