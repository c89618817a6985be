package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/faultline/internal/domain"
)

func loadFrom(t *testing.T, content string) (*Config, error) {
	t.Helper()

	file := ""
	if content != "" {
		file = filepath.Join(t.TempDir(), "faultline.yaml")
		require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	}

	v := viper.New()
	if file != "" {
		require.NoError(t, Init(v, file))
	} else {
		SetDefaults(v)
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
	}
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(t, "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Toxiproxy.Timeout)
	assert.Equal(t, "bridge", cfg.Docker.FallbackNetwork)
	assert.Equal(t, "haproxy", cfg.Cluster.Host)
	assert.Equal(t, 26257, cfg.Cluster.Port)

	require.Len(t, cfg.Regions, 3)
	assert.Equal(t, "us-east-1", cfg.Regions[0].ID)
	assert.Equal(t, []string{"e1a", "e1b"}, cfg.Regions[0].Proxies)
	assert.Equal(t, []string{"crdb-c1"}, cfg.Regions[2].Units)
}

func TestLoad_File(t *testing.T) {
	cfg, err := loadFrom(t, `
server:
  addr: 127.0.0.1:9090
  token: s3cret
  allowed_cidrs: [10.0.0.0/8]
log:
  level: debug
docker:
  networks: [lab-net]
cluster:
  enabled: false
regions:
  - id: eu-west-1
    proxy_api: http://toxiproxy-eu:8474/
    proxies: [eu1, eu2]
    units: [node-eu1]
`)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "s3cret", cfg.Server.Token)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.Server.AllowedCIDRs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"lab-net"}, cfg.Docker.Networks)
	assert.False(t, cfg.Cluster.Enabled)

	require.Len(t, cfg.Regions, 1)
	registry, err := cfg.Registry()
	require.NoError(t, err)
	region, err := registry.Get("eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "http://toxiproxy-eu:8474", region.ProxyAPI)
	assert.Equal(t, []string{"eu1", "eu2"}, region.Proxies)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FAULTLINE_SERVER_ADDR", ":7070")
	t.Setenv("FAULTLINE_LOG_FORMAT", "json")

	cfg, err := loadFrom(t, "server:\n  addr: :9090\n")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_LegacyEnvironment(t *testing.T) {
	t.Setenv("EAST_API", "http://localhost:18474")
	t.Setenv("WEST_PROXIES", "w2a, w2b ,w2c")
	t.Setenv("DB_HOST", "roach-lb")
	t.Setenv("DB_PORT", "26000")
	t.Setenv("DB_USER", "demo")
	t.Setenv("DB_NAME", "bank")

	cfg, err := loadFrom(t, "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:18474", cfg.Regions[0].ProxyAPI)
	assert.Equal(t, []string{"w2a", "w2b", "w2c"}, cfg.Regions[1].Proxies)
	assert.Equal(t, "http://toxiproxy-central:8474", cfg.Regions[2].ProxyAPI)
	assert.Equal(t, "roach-lb", cfg.Cluster.Host)
	assert.Equal(t, 26000, cfg.Cluster.Port)
	assert.Equal(t, "demo", cfg.Cluster.User)
	assert.Equal(t, "bank", cfg.Cluster.Database)
}

func TestLoad_InvalidRegistry(t *testing.T) {
	_, err := loadFrom(t, `
regions:
  - id: a
    proxy_api: http://x:8474
    proxies: [p1]
  - id: b
    proxy_api: http://y:8474
    proxies: [p1]
`)

	assert.ErrorIs(t, err, domain.ErrInvalidRegistry)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	_, err := loadFrom(t, "server:\n  rate_limit:\n    rps: 0\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit")
}

func TestInit_MissingExplicitFile(t *testing.T) {
	err := Init(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestConfig_YAMLRedactsSecrets(t *testing.T) {
	cfg, err := loadFrom(t, "server:\n  token: s3cret\ncluster:\n  password: hunter2\n")
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	assert.NotContains(t, string(out), "s3cret")
	assert.NotContains(t, string(out), "hunter2")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "<redacted>", decoded.Server.Token)
	assert.Len(t, decoded.Regions, 3)
	assert.Equal(t, cfg.Server.Addr, decoded.Server.Addr)

	// The loaded config keeps its secrets.
	assert.Equal(t, "s3cret", cfg.Server.Token)
}
