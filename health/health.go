// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/pyplayground/frontdoor/logging"
	"github.com/pyplayground/frontdoor/xhttp"
	"go.uber.org/zap"
)

const (
	// DefaultInterval is used when a Health is created with a nonpositive interval.
	DefaultInterval = time.Minute

	eventQueueSize = 100
)

// ErrStopped is returned by Snapshot once the Health has been stopped.
var ErrStopped = errors.New("health monitor is stopped")

// StatsListener receives Stats on regular intervals.
type StatsListener interface {
	// OnStats is called with a copy of the health's stats map
	// at regular intervals.
	OnStats(Stats)
}

// StatsListenerFunc is a function type that implements StatsListener.
type StatsListenerFunc func(Stats)

func (f StatsListenerFunc) OnStats(stats Stats) {
	f(stats)
}

// LogListener returns a StatsListener that writes each dispatched Stats at the debug level.
func LogListener(logger *zap.Logger) StatsListener {
	return StatsListenerFunc(func(stats Stats) {
		logger.Debug("health stats", zap.Any("stats", stats))
	})
}

// Health is the central type of this package.  It owns a Stats map that is only ever touched
// by its event goroutine, and it dispatches copies of that map to StatsListeners at regular intervals.
type Health struct {
	stats          Stats
	interval       time.Duration
	logger         *zap.Logger
	event          chan HealthFunc
	shutdown       chan struct{}
	stopped        chan struct{}
	statsListeners []StatsListener
	memInfoReader  *MemInfoReader

	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates a Health object seeded with the common stats plus any options.
func New(interval time.Duration, logger *zap.Logger, options ...Option) *Health {
	if interval <= 0 {
		interval = DefaultInterval
	}

	if logger == nil {
		logger = logging.Default()
	}

	return &Health{
		stats:         NewStats(options...),
		interval:      interval,
		logger:        logger,
		event:         make(chan HealthFunc, eventQueueSize),
		shutdown:      make(chan struct{}),
		stopped:       make(chan struct{}),
		memInfoReader: &MemInfoReader{},
	}
}

// AddStatsListener adds a new listener to this Health.  This method
// is asynchronous.  The listener will eventually receive events, but callers
// should not assume events will be dispatched immediately after this method call.
func (h *Health) AddStatsListener(listener StatsListener) {
	h.SendEvent(func(Stats) {
		h.statsListeners = append(h.statsListeners, listener)
	})
}

// SendEvent dispatches a HealthFunc to the internal event queue.  Events sent after
// Stop are dropped.
func (h *Health) SendEvent(healthFunc HealthFunc) {
	select {
	case h.event <- healthFunc:
	case <-h.shutdown:
	}
}

// Start launches the event goroutine.  It is idempotent and never fails; the signature
// matches an fx lifecycle hook.
func (h *Health) Start(context.Context) error {
	h.startOnce.Do(func() {
		h.logger.Debug("health monitor started", zap.Duration("interval", h.interval))
		go h.run()
	})

	return nil
}

// Stop shuts down the event goroutine, waiting for it to exit or for the context to be done.
func (h *Health) Stop(ctx context.Context) error {
	h.stopOnce.Do(func() {
		close(h.shutdown)
	})

	// a Health that was never started has no goroutine to wait for
	h.startOnce.Do(func() {
		close(h.stopped)
	})

	select {
	case <-h.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Health) run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer close(h.stopped)
	defer h.logger.Debug("health monitor stopped")

	for {
		select {
		case <-h.shutdown:
			return

		case hf := <-h.event:
			hf(h.stats)

		case <-ticker.C:
			h.stats.UpdateMemory(h.memInfoReader)
			dispatchStats := h.stats.Clone()
			for _, statsListener := range h.statsListeners {
				statsListener.OnStats(dispatchStats)
			}
		}
	}
}

// Snapshot returns a copy of the current stats, with memory stats refreshed.
func (h *Health) Snapshot(ctx context.Context) (Stats, error) {
	result := make(chan Stats, 1)
	h.SendEvent(func(stats Stats) {
		stats.UpdateMemory(h.memInfoReader)
		result <- stats.Clone()
	})

	select {
	case s := <-result:
		return s, nil
	case <-h.shutdown:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ServeHTTP writes the current stats as a JSON object.
func (h *Health) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	stats, err := h.Snapshot(request.Context())
	if err != nil {
		xhttp.WriteErrorf(response, http.StatusServiceUnavailable, "health unavailable: %s", err)
		return
	}

	body, err := xhttp.EncodeJSON(stats)
	if err != nil {
		logging.GetLogger(request.Context()).Error("could not marshal stats", zap.Error(err))
		xhttp.WriteError(response, http.StatusInternalServerError, err)
		return
	}

	response.Header().Set("Content-Type", xhttp.ContentTypeJSON)
	response.Write(body)
}
