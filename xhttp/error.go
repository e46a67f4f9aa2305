// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"fmt"
	"net/http"
)

// errorBody is the JSON shape of every error written by this package.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WriteErrorf writes a JSON message of the form {"code": %d, "message": "%s"} with the given status code.
// fmt.Sprintf is used to turn the format and parameters into a single string for the message.
//
// Although the typical use case for this function is to return a JSON error, this function can be used
// for non-error responses.
func WriteErrorf(response http.ResponseWriter, code int, format string, parameters ...interface{}) (int, error) {
	return WriteError(response, code, fmt.Sprintf(format, parameters...))
}

// WriteError writes a JSON message as a response.  The value parameter is subjected to the default
// stringizing rules of the fmt package.  Unlike a hand-formatted body, the message is properly escaped.
func WriteError(response http.ResponseWriter, code int, value interface{}) (int, error) {
	body, err := EncodeJSON(errorBody{Code: code, Message: fmt.Sprint(value)})
	if err != nil {
		http.Error(response, http.StatusText(code), code)
		return 0, err
	}

	response.Header().Set("Content-Type", ContentTypeJSON)
	response.Header().Set("X-Content-Type-Options", "nosniff")
	response.WriteHeader(code)
	return response.Write(body)
}
