// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"net/http"
)

// RequestTracker is an Alice constructor that counts every request as received, and then
// as either successfully serviced (status below 400) or denied.
func (h *Health) RequestTracker(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		h.SendEvent(Inc(TotalRequestsReceived, 1))

		w := Wrap(response)
		next.ServeHTTP(w, request)

		if w.StatusCode() < 400 {
			h.SendEvent(Inc(TotalRequestSuccessfullyServiced, 1))
		} else {
			h.SendEvent(Inc(TotalRequestDenied, 1))
		}
	})
}
