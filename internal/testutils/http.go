package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestServer struct {
	*httptest.Server
	t *testing.T
}

func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &TestServer{
		Server: server,
		t:      t,
	}
}

func (ts *TestServer) GET(path string) *http.Response {
	return ts.Do(http.MethodGet, path, nil, nil)
}

// POST sends body as-is so callers can exercise malformed payloads.
func (ts *TestServer) POST(path, contentType string, body []byte) *http.Response {
	var header http.Header
	if contentType != "" {
		header = http.Header{"Content-Type": []string{contentType}}
	}
	return ts.Do(http.MethodPost, path, header, body)
}

// POSTJSON marshals body and posts it as application/json.
func (ts *TestServer) POSTJSON(path string, body interface{}) *http.Response {
	jsonBody, err := json.Marshal(body)
	require.NoError(ts.t, err)
	return ts.POST(path, "application/json", jsonBody)
}

func (ts *TestServer) Do(method, path string, header http.Header, body []byte) *http.Response {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+path, bodyReader)
	require.NoError(ts.t, err)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := ts.Client().Do(req)
	require.NoError(ts.t, err)
	return resp
}

// ReadBody drains and closes the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()
	require.Equal(t, expectedStatus, resp.StatusCode)

	defer resp.Body.Close()
	var errorResp map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&errorResp)
	require.NoError(t, err)

	if expectedMessage != "" {
		require.Equal(t, expectedMessage, errorResp["detail"])
	}
}
