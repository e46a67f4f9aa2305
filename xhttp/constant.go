// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"fmt"
	"net/http"
)

// Constant represents an http.Handler that writes prebuilt, constant information to the response writer.
// The request, including its body, is never examined.
type Constant struct {
	Code   int
	Header http.Header
	Body   []byte
}

// NewJSONConstant encodes v once and returns a Constant that writes it with the given status code
// and a JSON content type.
func NewJSONConstant(code int, v interface{}) (Constant, error) {
	body, err := EncodeJSON(v)
	if err != nil {
		return Constant{}, fmt.Errorf("unable to encode constant response: %w", err)
	}

	return Constant{
		Code:   code,
		Header: http.Header{"Content-Type": {ContentTypeJSON}},
		Body:   body,
	}, nil
}

// ServeHTTP simply writes the configured information out to the response.
func (c Constant) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	for k, values := range c.Header {
		for _, v := range values {
			response.Header().Add(k, v)
		}
	}

	response.WriteHeader(c.Code)
	if len(c.Body) > 0 {
		response.Write(c.Body)
	}
}
