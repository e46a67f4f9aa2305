// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frontdoor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pyplayground/frontdoor/xhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreadable fails the test if the handler touches the request body
type unreadable struct {
	t *testing.T
}

func (u unreadable) Read([]byte) (int, error) {
	u.t.Error("the request body should not be read")
	return 0, io.EOF
}

func TestRunHandler(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	run, err := NewRunHandler()
	require.NoError(err)

	for _, body := range []io.Reader{nil, strings.NewReader("print('hi')"), strings.NewReader("{not json"), unreadable{t}} {
		response := httptest.NewRecorder()
		run.ServeHTTP(response, httptest.NewRequest("POST", "/run", body))

		assert.Equal(http.StatusOK, response.Code)
		assert.Equal(xhttp.ContentTypeJSON, response.Header().Get("Content-Type"))
		assert.JSONEq(`{"status":"success"}`, response.Body.String())
	}
}
