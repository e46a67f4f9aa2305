// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frontdoor

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	RootPath = "/"
	RunPath  = "/run"
)

// NewRouter binds the index page and the run handler.  Unknown paths get mux's 404, and known
// paths requested with the wrong method get a 405.
func NewRouter(page, run http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle(RootPath, page).Methods(http.MethodGet, http.MethodHead)
	r.Handle(RunPath, run).Methods(http.MethodPost)

	return r
}
