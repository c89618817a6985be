package docker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/faultline/internal/domain"
	"github.com/bnema/faultline/pkg/logger"
)

// fakeDocker records the calls it receives and answers from a route table.
type fakeDocker struct {
	mu     sync.Mutex
	calls  []string
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeDocker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/v1.41")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	handler, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		writeDockerJSON(w, http.StatusNotFound, `{"message":"No such object"}`)
		return
	}
	handler(w, r)
}

func (f *fakeDocker) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == key {
			return true
		}
	}
	return false
}

func writeDockerJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func reply(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeDockerJSON(w, status, body)
	}
}

func newTestRuntime(t *testing.T, cfg Config, routes map[string]func(w http.ResponseWriter, r *http.Request)) (*Runtime, *fakeDocker) {
	t.Helper()

	fake := &fakeDocker{routes: routes}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	cli, err := client.NewClientWithOpts(client.WithHost("tcp://"+host), client.WithVersion("1.41"), client.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("failed to create docker client: %v", err)
	}

	return NewRuntimeWithClient(cli, cfg, logger.Discard()), fake
}

const inspectRunning = `{
	"Id": "abc123",
	"Name": "/e1a",
	"State": {"Status": "running", "Running": true},
	"NetworkSettings": {
		"Networks": {
			"bridge": {"NetworkID": "n-bridge"},
			"roachnet": {"NetworkID": "n-roach"}
		}
	}
}`

const inspectExited = `{
	"Id": "abc123",
	"Name": "/e1a",
	"State": {"Status": "exited", "Running": false},
	"NetworkSettings": {"Networks": {}}
}`

func TestRuntime_IsRunning(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusOK, inspectRunning),
		"GET /containers/w2a/json": reply(http.StatusOK, inspectExited),
	})

	running, err := runtime.IsRunning(context.Background(), "e1a")
	require.NoError(t, err)
	assert.True(t, running)

	running, err = runtime.IsRunning(context.Background(), "w2a")
	require.NoError(t, err)
	assert.False(t, running)
}

func TestRuntime_IsRunning_MissingContainer(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{}, nil)

	running, err := runtime.IsRunning(context.Background(), "ghost")

	require.NoError(t, err)
	assert.False(t, running)
}

func TestRuntime_IsRunning_DaemonError(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusInternalServerError, `{"message":"daemon on fire"}`),
	})

	_, err := runtime.IsRunning(context.Background(), "e1a")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnreachableBackend)
}

func TestRuntime_Kill(t *testing.T) {
	var signal string
	runtime, fake := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"POST /containers/e1a/kill": func(w http.ResponseWriter, r *http.Request) {
			signal = r.URL.Query().Get("signal")
			w.WriteHeader(http.StatusNoContent)
		},
	})

	err := runtime.Kill(context.Background(), "e1a")

	require.NoError(t, err)
	assert.True(t, fake.called("POST /containers/e1a/kill"))
	assert.Equal(t, "SIGKILL", signal)
}

func TestRuntime_Kill_AlreadyStopped(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"POST /containers/e1a/kill": reply(http.StatusConflict, `{"message":"container e1a is not running"}`),
	})

	assert.NoError(t, runtime.Kill(context.Background(), "e1a"))
}

func TestRuntime_Kill_Missing(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{}, nil)

	err := runtime.Kill(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRuntime_Stop_UsesGracePeriod(t *testing.T) {
	var grace string
	runtime, _ := newTestRuntime(t, Config{StopTimeout: 3}, map[string]func(w http.ResponseWriter, r *http.Request){
		"POST /containers/e1a/stop": func(w http.ResponseWriter, r *http.Request) {
			grace = r.URL.Query().Get("t")
			w.WriteHeader(http.StatusNoContent)
		},
	})

	require.NoError(t, runtime.Stop(context.Background(), "e1a"))
	assert.Equal(t, "3", grace)
}

func TestRuntime_Start(t *testing.T) {
	runtime, fake := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"POST /containers/e1a/start": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	require.NoError(t, runtime.Start(context.Background(), "e1a"))
	assert.True(t, fake.called("POST /containers/e1a/start"))
}

func TestRuntime_DisconnectNetwork(t *testing.T) {
	runtime, fake := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusOK, inspectRunning),
		"POST /networks/roachnet/disconnect": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	require.NoError(t, runtime.DisconnectNetwork(context.Background(), "e1a", "roachnet"))
	assert.True(t, fake.called("POST /networks/roachnet/disconnect"))
}

func TestRuntime_DisconnectNetwork_NotAttached(t *testing.T) {
	runtime, fake := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusOK, inspectExited),
	})

	require.NoError(t, runtime.DisconnectNetwork(context.Background(), "e1a", "roachnet"))
	assert.False(t, fake.called("POST /networks/roachnet/disconnect"))
}

func TestRuntime_ReconnectNetwork(t *testing.T) {
	runtime, fake := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusOK, inspectExited),
		"POST /networks/roachnet/connect": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	require.NoError(t, runtime.ReconnectNetwork(context.Background(), "e1a", "roachnet"))
	assert.True(t, fake.called("POST /networks/roachnet/connect"))
}

func TestRuntime_ReconnectNetwork_AlreadyAttached(t *testing.T) {
	runtime, fake := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusOK, inspectRunning),
	})

	// Matched by network id as well as by name.
	require.NoError(t, runtime.ReconnectNetwork(context.Background(), "e1a", "n-roach"))
	assert.False(t, fake.called("POST /networks/n-roach/connect"))
}

func TestRuntime_ReconnectNetwork_LostRace(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json":        reply(http.StatusOK, inspectExited),
		"POST /networks/roachnet/connect": reply(http.StatusForbidden, `{"message":"endpoint with name e1a already exists in network roachnet"}`),
	})

	assert.NoError(t, runtime.ReconnectNetwork(context.Background(), "e1a", "roachnet"))
}

func TestRuntime_ResolveNetworkID_Candidate(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{NetworkCandidates: []string{"missing", "roachnet"}}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /networks/roachnet": reply(http.StatusOK, `{"Name":"roachnet","Id":"n-roach"}`),
	})

	assert.Equal(t, "roachnet", runtime.ResolveNetworkID(context.Background()))
}

func TestRuntime_ResolveNetworkID_Attachment(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{
		NetworkCandidates: []string{"missing"},
		KnownUnits:        []string{"ghost", "e1a"},
	}, map[string]func(w http.ResponseWriter, r *http.Request){
		"GET /containers/e1a/json": reply(http.StatusOK, inspectRunning),
	})

	assert.Equal(t, "roachnet", runtime.ResolveNetworkID(context.Background()))
}

func TestRuntime_ResolveNetworkID_Fallback(t *testing.T) {
	runtime, _ := newTestRuntime(t, Config{
		NetworkCandidates: []string{"missing"},
		KnownUnits:        []string{"ghost"},
		FallbackNetwork:   "default-net",
	}, nil)

	assert.Equal(t, "default-net", runtime.ResolveNetworkID(context.Background()))
}
