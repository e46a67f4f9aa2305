// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTracker(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		h       = setupHealth(t, time.Hour)
	)

	for _, code := range []int{0, http.StatusOK, http.StatusNotFound, http.StatusMethodNotAllowed} {
		code := code
		handler := h.RequestTracker(http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
			if code > 0 {
				response.WriteHeader(code)
			}
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	stats, err := h.Snapshot(context.Background())
	require.NoError(err)
	assert.Equal(4, stats[TotalRequestsReceived])
	assert.Equal(2, stats[TotalRequestSuccessfullyServiced])
	assert.Equal(2, stats[TotalRequestDenied])
}

func TestResponseWriter(t *testing.T) {
	var (
		assert   = assert.New(t)
		recorder = httptest.NewRecorder()
		w        = Wrap(recorder)
	)

	assert.Equal(http.StatusOK, w.StatusCode())
	w.WriteHeader(http.StatusTeapot)
	assert.Equal(http.StatusTeapot, w.StatusCode())
	assert.Equal(recorder, w.Unwrap())

	assert.NotPanics(w.Flush)
	assert.True(recorder.Flushed)

	_, _, err := w.Hijack()
	assert.Error(err)
}
