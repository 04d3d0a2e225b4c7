package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/handler"
	handlerhttp "github.com/MKhiriev/client-admin/internal/handler/http"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/unknown")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: l.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
}
