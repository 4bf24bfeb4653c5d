package user

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateUser_AcceptsAnyBody(t *testing.T) {
	h := NewUserHandlers(zap.NewNop())

	bodies := map[string]io.Reader{
		"no body":      nil,
		"empty":        bytes.NewReader(nil),
		"valid json":   bytes.NewBufferString(`{"username":"ada","email":"ada@example.com"}`),
		"invalid json": bytes.NewBufferString(`{"username":`),
		"binary":       bytes.NewReader([]byte{0x00, 0xff, 0x10, 0x80, 0x7f}),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.CreateUser(rr, httptest.NewRequest(http.MethodPost, "/users", body))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "null", rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestCreateUser_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewUserHandlers(zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{}"))
	h.CreateUser(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("user creation requested").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.EqualValues(t, 2, entries[0].ContextMap()["content_length"])
}
