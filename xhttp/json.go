// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"github.com/ugorji/go/codec"
)

const (
	// ContentTypeJSON is the media type written with every JSON response body.
	ContentTypeJSON = "application/json"

	// ContentTypeHTML is the media type written with rendered pages.
	ContentTypeHTML = "text/html; charset=utf-8"
)

// jsonHandle is shared by all encoders in this package.  Handles are safe for concurrent
// use once configured.
var jsonHandle = &codec.JsonHandle{}

// EncodeJSON marshals v into a new byte slice.  Struct fields are named by their codec
// or json tags.
func EncodeJSON(v interface{}) ([]byte, error) {
	var b []byte
	if err := codec.NewEncoderBytes(&b, jsonHandle).Encode(v); err != nil {
		return nil, err
	}

	return b, nil
}
