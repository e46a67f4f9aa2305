// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frontdoor

import (
	"net/http"

	"github.com/pyplayground/frontdoor/xhttp"
)

const StatusSuccess = "success"

// RunResponse is the body of every /run response.
type RunResponse struct {
	Status string `json:"status"`
}

// NewRunHandler returns the /run handler.  Code is executed by the browser, so this handler only
// acknowledges the submission:  the response is encoded once and the request body is never read.
func NewRunHandler() (http.Handler, error) {
	c, err := xhttp.NewJSONConstant(http.StatusOK, RunResponse{Status: StatusSuccess})
	if err != nil {
		return nil, err
	}

	return c, nil
}
