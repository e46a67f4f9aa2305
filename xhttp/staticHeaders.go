// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"net/textproto"

	"github.com/justinas/alice"
)

// StaticHeaders returns an Alice constructor that emits a static set of headers into every
// response before the decorated handler runs, so the handler may still override them.  Keys are
// canonicalized once, which allows the headers to come from sources such as unmarshaled
// configuration.  An empty set yields a constructor that does no decoration.
func StaticHeaders(extra http.Header) alice.Constructor {
	if len(extra) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	canonical := make(http.Header, len(extra))
	for k, v := range extra {
		canonical[textproto.CanonicalMIMEHeaderKey(k)] = v
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			header := response.Header()
			for k, v := range canonical {
				header[k] = v
			}

			next.ServeHTTP(response, request)
		})
	}
}
