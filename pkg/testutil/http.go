// Package testutil provides HTTP helpers for handler and router tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purl/pkg/platform/httputil"
)

// Get serves a GET for path on handler, sending one Accept header per value.
func Get(t *testing.T, handler http.Handler, path string, accept ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, a := range accept {
		req.Header.Add("Accept", a)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// DecodeJSON decodes the recorded body into a T.
func DecodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body is not valid JSON: %s", rr.Body.String())
	return out
}

// AssertStatusOK asserts the response status is 200 OK.
func AssertStatusOK(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusOK, rr.Code, "unexpected status code, body: %s", rr.Body.String())
}

// AssertPlainText asserts a text/plain response whose first line is statusLine.
func AssertPlainText(t *testing.T, rr *httptest.ResponseRecorder, statusLine string) {
	t.Helper()
	assert.Equal(t, httputil.ContentTypeText, rr.Header().Get("Content-Type"))
	first, _, _ := strings.Cut(rr.Body.String(), "\n")
	assert.Equal(t, statusLine, first)
}
