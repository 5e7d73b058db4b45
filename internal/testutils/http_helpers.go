package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulens/edulens-api/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// DoRequest sends a request to server and returns the response. A non-empty
// body is sent as JSON. The response body is closed at test cleanup.
func DoRequest(t *testing.T, server *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	CleanupResponseBody(t, resp)
	return resp
}

// ReadBody reads the whole response body as a string.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return string(body)
}

// DecodeJSONResponse checks the status code and decodes the body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	body := ReadBody(t, resp)
	require.Equal(t, expectedStatus, resp.StatusCode, "Unexpected status, body: %s", body)
	require.NoError(t, json.Unmarshal([]byte(body), v), "Failed to unmarshal response: %s", body)
}

// AssertErrorResponse checks that a response contains an error with the
// expected status code and message, and returns the parsed error.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	var errResp shared.ErrorResponse
	DecodeJSONResponse(t, resp, expectedStatus, &errResp)

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message %q does not contain %q", errResp.Error, expectedErrorMsgPart)
	assert.NotEmpty(t, errResp.TraceID, "Error response should carry a trace ID")

	return errResp
}
