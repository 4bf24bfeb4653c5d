package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	h := NewHealthHandlers()

	requests := map[string]*http.Request{
		"plain":      httptest.NewRequest(http.MethodGet, "/ping", nil),
		"with query": httptest.NewRequest(http.MethodGet, "/ping?verbose=1&x=y", nil),
	}
	withHeaders := httptest.NewRequest(http.MethodGet, "/ping", nil)
	withHeaders.Header.Set("Accept", "application/json")
	withHeaders.Header.Set("Authorization", "Bearer ignored")
	requests["with headers"] = withHeaders

	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Ping(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "I am alive", rr.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
		})
	}
}
