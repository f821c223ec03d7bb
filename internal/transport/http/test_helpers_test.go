package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bidchat/bidchat-server/internal/auth"
	"github.com/bidchat/bidchat-server/internal/config"
	"github.com/bidchat/bidchat-server/internal/core"
	"github.com/bidchat/bidchat-server/internal/store"
	"github.com/bidchat/bidchat-server/internal/store/sqlite"
)

// createTestStore creates an in-memory SQLite store with schema applied.
func createTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// createTestAuthService creates an auth service for testing.
func createTestAuthService(t *testing.T, st store.Store, jwtSecret string) *auth.Service {
	t.Helper()

	jwtConfig := &auth.JWTConfig{
		Secret:   []byte(jwtSecret),
		Issuer:   "test",
		Audience: "test",
		TTL:      24 * time.Hour,
	}

	return auth.NewService(st, jwtConfig)
}

// startTestServer wires a hub, store and auth service into an httptest
// server. The returned config can be customized via mutate.
func startTestServer(t *testing.T, mutate func(*config.Config)) (*httptest.Server, store.Store) {
	t.Helper()

	testStore := createTestStore(t)
	authService := createTestAuthService(t, testStore, "test-secret")

	hub := core.NewHub(testStore, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	disabledLogger := zerolog.New(nil)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second
	cfg.ShutdownTimeout = time.Second
	cfg.UploadDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}

	server := NewServer(hub, authService, testStore, &cfg, &disabledLogger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, testStore
}
