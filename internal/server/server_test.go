package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"userservice/internal/testutils"
	"userservice/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := testutils.GetTestConfig()
	srv := New(cfg, web.NewHandler(cfg, zap.NewNop()), zap.NewNop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "I am alive", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/ping")
	assert.Error(t, err)
}

func TestServer_RunPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testutils.GetTestConfig()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	cfg.Port = port

	srv := New(cfg, http.NotFoundHandler(), zap.NewNop())
	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not available")
}

func TestNew_AppliesTimeouts(t *testing.T) {
	cfg := testutils.GetTestConfig()
	srv := New(cfg, http.NotFoundHandler(), zap.NewNop())

	assert.Equal(t, "127.0.0.1:8000", srv.httpServer.Addr)
	assert.Equal(t, cfg.ReadHeaderTimeout, srv.httpServer.ReadHeaderTimeout)
	assert.Equal(t, cfg.WriteTimeout, srv.httpServer.WriteTimeout)
	assert.Equal(t, cfg.IdleTimeout, srv.httpServer.IdleTimeout)
}
