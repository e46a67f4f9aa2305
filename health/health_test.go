// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pyplayground/frontdoor/xhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// setupHealth supplies a started Health object with useful test configuration
func setupHealth(t *testing.T, interval time.Duration) *Health {
	h := New(interval, zaptest.NewLogger(t))
	require.NoError(t, h.Start(context.Background()))
	t.Cleanup(func() {
		h.Stop(context.Background())
	})

	return h
}

func TestNewDefaults(t *testing.T) {
	assert := assert.New(t)
	h := New(0, nil)
	assert.Equal(DefaultInterval, h.interval)
	assert.NotNil(h.logger)
	assert.Equal(NewStats(), h.stats)
}

func TestLifecycle(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		h       = setupHealth(t, time.Hour)
	)

	h.SendEvent(Inc(TotalRequestsReceived, 2))
	stats, err := h.Snapshot(context.Background())
	require.NoError(err)
	assert.Equal(2, stats[TotalRequestsReceived])

	// snapshots are copies
	stats[TotalRequestsReceived] = 100
	stats, err = h.Snapshot(context.Background())
	require.NoError(err)
	assert.Equal(2, stats[TotalRequestsReceived])

	assert.NoError(h.Start(context.Background()))
	assert.NoError(h.Stop(context.Background()))
	assert.NoError(h.Stop(context.Background()))

	// events after stop are dropped rather than blocking
	for i := 0; i < 2*eventQueueSize; i++ {
		h.SendEvent(Inc(TotalRequestsReceived, 1))
	}

	_, err = h.Snapshot(context.Background())
	assert.Equal(ErrStopped, err)
}

func TestStopNeverStarted(t *testing.T) {
	h := New(time.Hour, zaptest.NewLogger(t))
	assert.NoError(t, h.Stop(context.Background()))
}

func TestSnapshotContextDone(t *testing.T) {
	var (
		assert      = assert.New(t)
		h           = New(time.Hour, zaptest.NewLogger(t))
		ctx, cancel = context.WithCancel(context.Background())
	)

	// never started, so the event is queued but never processed
	cancel()
	_, err := h.Snapshot(ctx)
	assert.Equal(context.Canceled, err)
}

func TestStatsListener(t *testing.T) {
	var (
		assert     = assert.New(t)
		h          = setupHealth(t, 10*time.Millisecond)
		dispatched = make(chan Stats, 10)
	)

	h.AddStatsListener(LogListener(zaptest.NewLogger(t)))
	h.AddStatsListener(StatsListenerFunc(func(s Stats) {
		select {
		case dispatched <- s:
		default:
		}
	}))

	select {
	case s := <-dispatched:
		assert.Positive(s[CurrentMemoryUtilizationAlloc])
	case <-time.After(5 * time.Second):
		assert.Fail("no stats were dispatched")
	}
}

func TestServeHTTP(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		h        = setupHealth(t, time.Hour)
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/health", nil)
	)

	h.SendEvent(Inc(TotalRequestDenied, 3))
	h.ServeHTTP(response, request)

	assert.Equal(http.StatusOK, response.Code)
	assert.Equal(xhttp.ContentTypeJSON, response.Header().Get("Content-Type"))

	var stats map[string]int
	require.NoError(json.Unmarshal(response.Body.Bytes(), &stats))
	assert.Equal(3, stats[string(TotalRequestDenied)])
	assert.Contains(stats, string(TotalRequestsReceived))
}

func TestServeHTTPStopped(t *testing.T) {
	var (
		assert   = assert.New(t)
		h        = setupHealth(t, time.Hour)
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/health", nil)
	)

	assert.NoError(h.Stop(context.Background()))
	h.ServeHTTP(response, request)
	assert.Equal(http.StatusServiceUnavailable, response.Code)
}
