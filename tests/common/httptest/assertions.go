//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DecodeResponse asserts the status code and unmarshals the body into target.
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code,
		"unexpected status, response: %s", w.Body.String())
	if target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
			"failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse asserts the status code and the error message in the
// {"error": "..."} envelope the handlers emit.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		"unexpected status, response: %s", w.Body.String())

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"failed to decode error response JSON: %s", w.Body.String())
	if expectedErrorMsg != "" {
		assert.Contains(t, envelope.Error, expectedErrorMsg)
	}
}
