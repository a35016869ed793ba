package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/cart/internal/health"
	"github.com/vladislavdragonenkov/cart/internal/version"
)

func TestStartMetricsServer_Endpoints(t *testing.T) {
	logger := log.WithField("test", "http")

	port := findFreePort(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	srv := startMetricsServer(ctx, fmt.Sprintf("127.0.0.1:%d", port), logger, healthHandler)
	if srv == nil {
		t.Fatal("startMetricsServer should not return nil")
	}
	waitForServer(t, port)

	cases := []struct {
		path string
		body string
	}{
		{path: "/metrics"},
		{path: "/healthz"},
		{path: "/livez", body: "ok"},
		{path: "/readyz", body: "ready"},
	}
	for _, tc := range cases {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d%s", port, tc.path))
		if err != nil {
			t.Fatalf("failed to get %s: %v", tc.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s returned status %d, expected 200", tc.path, resp.StatusCode)
		}
		if len(body) == 0 {
			t.Errorf("%s returned empty body", tc.path)
		}
		if tc.body != "" && string(body) != tc.body {
			t.Errorf("expected %q from %s, got %q", tc.body, tc.path, string(body))
		}
	}
}

func TestStartMetricsServer_ReadinessFailsWhenStorageIsDown(t *testing.T) {
	logger := log.WithField("test", "http-readyz")

	port := findFreePort(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", healthcheck.NewFuncChecker("storage", func(context.Context) error {
		return fmt.Errorf("connection refused")
	}))
	startMetricsServer(ctx, fmt.Sprintf("127.0.0.1:%d", port), logger, healthHandler)
	waitForServer(t, port)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/readyz", port))
	if err != nil {
		t.Fatalf("failed to get /readyz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 from /readyz, got %d", resp.StatusCode)
	}
}

func TestStartHTTPServer_ShutdownOnCancel(t *testing.T) {
	logger := log.WithField("test", "http-shutdown")

	port := findFreePort(t)
	ctx, cancel := context.WithCancel(context.Background())

	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("test"))
	})
	startHTTPServer(ctx, fmt.Sprintf("127.0.0.1:%d", port), logger, mux)
	waitForServer(t, port)

	cancel()
	time.Sleep(200 * time.Millisecond)

	if _, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/test", port)); err == nil {
		t.Error("server should be stopped after context cancellation")
	}
}

func TestShutdownHTTP_NilServer(_ *testing.T) {
	// Не должно паниковать
	shutdownHTTP(nil, log.WithField("test", "http-nil"))
}

// findFreePort находит свободный порт для тестов
func findFreePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	defer listener.Close()

	return listener.Addr().(*net.TCPAddr).Port
}

func waitForServer(t *testing.T, port int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("server on port %d did not start", port)
}
