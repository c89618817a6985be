package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/faultline/internal/adapters/dto"
	"github.com/bnema/faultline/internal/adapters/out/toxiproxy"
	"github.com/bnema/faultline/internal/adapters/out/toxiproxy/toxiproxytest"
	"github.com/bnema/faultline/internal/config"
	"github.com/bnema/faultline/internal/domain"
	"github.com/bnema/faultline/pkg/logger"
)

// fakeRuntime keeps container state in memory.
type fakeRuntime struct {
	mu      sync.Mutex
	running map[string]bool
}

func newFakeRuntime(units ...string) *fakeRuntime {
	r := &fakeRuntime{running: make(map[string]bool)}
	for _, u := range units {
		r.running[u] = true
	}
	return r
}

func (r *fakeRuntime) set(name string, running bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running[name] = running
	return nil
}

func (r *fakeRuntime) IsRunning(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running[name], nil
}

func (r *fakeRuntime) Stop(_ context.Context, name string) error  { return r.set(name, false) }
func (r *fakeRuntime) Kill(_ context.Context, name string) error  { return r.set(name, false) }
func (r *fakeRuntime) Start(_ context.Context, name string) error { return r.set(name, true) }

func (r *fakeRuntime) DisconnectNetwork(context.Context, string, string) error { return nil }
func (r *fakeRuntime) ReconnectNetwork(context.Context, string, string) error  { return nil }
func (r *fakeRuntime) ResolveNetworkID(context.Context) string                 { return "bridge" }

func testConfig(t *testing.T, proxyAPI string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Addr:      "127.0.0.1:0",
			Token:     "s3cret",
			RateLimit: config.RateLimitConfig{Enabled: true, RPS: 100, Burst: 100},
		},
		Regions: []config.RegionConfig{
			{ID: "us-east-1", ProxyAPI: proxyAPI, Proxies: []string{"e1a", "e1b"}, Units: []string{"crdb-e1a", "crdb-e1b"}},
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, runtime *fakeRuntime) *httptest.Server {
	t.Helper()

	registry, err := cfg.Registry()
	require.NoError(t, err)

	subs := Substrates{
		Proxies: toxiproxy.New(logger.Discard()),
		Runtime: runtime,
	}
	svc, err := createServices(context.Background(), cfg, registry, subs, "test", logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { svc.close(context.Background()) })

	server := httptest.NewServer(newEcho(cfg, svc, "test", logger.Discard()))
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, method, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestControlSurface_KillAndRecover(t *testing.T) {
	proxies := toxiproxytest.NewServer("e1a", "e1b")
	defer proxies.Close()
	runtime := newFakeRuntime("crdb-e1a", "crdb-e1b")
	server := newTestServer(t, testConfig(t, proxies.URL), runtime)

	resp := call(t, http.MethodPost, server.URL+"/api/kill/us-east-1", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.True(t, proxies.Enabled("e1a"), "unauthorized request must not reach the proxies")

	resp = call(t, http.MethodPost, server.URL+"/api/kill/us-east-1", "s3cret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var op dto.OperationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&op))
	assert.True(t, op.OK)
	assert.ElementsMatch(t, []string{"e1a", "e1b", "crdb-e1a", "crdb-e1b"}, op.AffectedHandles)
	assert.False(t, proxies.Enabled("e1a"))

	resp = call(t, http.MethodGet, server.URL+"/api/status/us-east-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status dto.RegionStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.False(t, status.Up)

	resp = call(t, http.MethodPost, server.URL+"/api/recover/us-east-1", "s3cret")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, http.MethodGet, server.URL+"/api/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all map[string]dto.RegionStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.True(t, all["us-east-1"].Up)

	resp = call(t, http.MethodGet, server.URL+"/api/operations", "")
	var ops dto.OperationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ops))
	assert.Equal(t, int64(1), ops.Operations["kill"])
	assert.Equal(t, int64(1), ops.Operations["recover"])
	assert.Equal(t, int64(2), ops.Total)
}

func TestControlSurface_Metrics(t *testing.T) {
	proxies := toxiproxytest.NewServer("e1a", "e1b")
	defer proxies.Close()
	server := newTestServer(t, testConfig(t, proxies.URL), newFakeRuntime("crdb-e1a", "crdb-e1b"))

	call(t, http.MethodPost, server.URL+"/api/brownout/us-east-1?latencyMs=500", "s3cret")

	resp := call(t, http.MethodGet, server.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "faultline_operations_total")
	assert.Contains(t, string(body), "faultline_http_requests_total")
}

func TestControlSurface_ClusterProbeDisabled(t *testing.T) {
	proxies := toxiproxytest.NewServer("e1a", "e1b")
	defer proxies.Close()
	server := newTestServer(t, testConfig(t, proxies.URL), newFakeRuntime())

	resp := call(t, http.MethodGet, server.URL+"/api/cluster-health", "")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestControlSurface_UnknownRegion(t *testing.T) {
	proxies := toxiproxytest.NewServer("e1a", "e1b")
	defer proxies.Close()
	server := newTestServer(t, testConfig(t, proxies.URL), newFakeRuntime())

	resp := call(t, http.MethodPost, server.URL+"/api/partition/eu-north-9", "s3cret")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	proxies := toxiproxytest.NewServer("e1a", "e1b")
	defer proxies.Close()
	cfg := testConfig(t, proxies.URL)
	cfg.Server.ShutdownGrace = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, cfg, Substrates{Proxies: toxiproxy.New(logger.Discard()), Runtime: newFakeRuntime()}, "test", logger.Discard())
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServe_UsesGivenRegistry(t *testing.T) {
	proxies := toxiproxytest.NewServer("e1a", "e1b")
	defer proxies.Close()
	cfg := testConfig(t, proxies.URL)
	cfg.Server.ShutdownGrace = time.Second

	registry, err := cfg.Registry()
	require.NoError(t, err)
	// Rebuilding from this config would fail, so serve must run on the registry it was handed.
	cfg.Regions = nil

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		subs := Substrates{Proxies: toxiproxy.New(logger.Discard()), Runtime: newFakeRuntime("crdb-e1a", "crdb-e1b")}
		done <- serve(ctx, cfg, registry, subs, "test", logger.Discard())
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_InvalidRegistry(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.Regions = nil

	err := Serve(context.Background(), cfg, Substrates{Proxies: toxiproxy.New(logger.Discard()), Runtime: newFakeRuntime()}, "test", logger.Discard())

	assert.ErrorIs(t, err, domain.ErrInvalidRegistry)
}
