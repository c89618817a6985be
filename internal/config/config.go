// Package config loads the controller configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bnema/faultline/internal/domain"
)

// EnvPrefix prefixes every environment variable read by viper.
const EnvPrefix = "FAULTLINE"

// Config is the effective configuration of the controller.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Toxiproxy ToxiproxyConfig `mapstructure:"toxiproxy" yaml:"toxiproxy"`
	Docker    DockerConfig    `mapstructure:"docker" yaml:"docker"`
	Cluster   ClusterConfig   `mapstructure:"cluster" yaml:"cluster"`
	Regions   []RegionConfig  `mapstructure:"regions" yaml:"regions"`
}

type ServerConfig struct {
	Addr           string          `mapstructure:"addr" yaml:"addr"`
	Token          string          `mapstructure:"token" yaml:"token,omitempty"`
	TrustedProxies []string        `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
	AllowedCIDRs   []string        `mapstructure:"allowed_cidrs" yaml:"allowed_cidrs"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	ShutdownGrace  time.Duration   `mapstructure:"shutdown_grace" yaml:"shutdown_grace"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	RPS     float64 `mapstructure:"rps" yaml:"rps"`
	Burst   int     `mapstructure:"burst" yaml:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type ToxiproxyConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type DockerConfig struct {
	CallTimeout     time.Duration `mapstructure:"call_timeout" yaml:"call_timeout"`
	StopTimeout     int           `mapstructure:"stop_timeout" yaml:"stop_timeout"`
	Networks        []string      `mapstructure:"networks" yaml:"networks"`
	FallbackNetwork string        `mapstructure:"fallback_network" yaml:"fallback_network"`
}

type ClusterConfig struct {
	Enabled       bool          `mapstructure:"enabled" yaml:"enabled"`
	Host          string        `mapstructure:"host" yaml:"host"`
	Port          int           `mapstructure:"port" yaml:"port"`
	User          string        `mapstructure:"user" yaml:"user"`
	Password      string        `mapstructure:"password" yaml:"password,omitempty"`
	Database      string        `mapstructure:"database" yaml:"database"`
	SSLMode       string        `mapstructure:"sslmode" yaml:"sslmode"`
	WriteInterval time.Duration `mapstructure:"write_interval" yaml:"write_interval"`
}

type RegionConfig struct {
	ID       string   `mapstructure:"id" yaml:"id"`
	ProxyAPI string   `mapstructure:"proxy_api" yaml:"proxy_api"`
	Proxies  []string `mapstructure:"proxies" yaml:"proxies"`
	Units    []string `mapstructure:"units" yaml:"units"`
	Color    string   `mapstructure:"color" yaml:"color,omitempty"`
}

// legacyRegion binds a default region to the environment variables of the
// docker compose deployment.
type legacyRegion struct {
	id         string
	apiEnv     string
	proxiesEnv string
}

var legacyRegions = []legacyRegion{
	{id: "us-east-1", apiEnv: "EAST_API", proxiesEnv: "EAST_PROXIES"},
	{id: "us-west-2", apiEnv: "WEST_API", proxiesEnv: "WEST_PROXIES"},
	{id: "us-central-1", apiEnv: "CENTRAL_API", proxiesEnv: "CENTRAL_PROXIES"},
}

// DefaultRegions reproduces the three-region demo topology.
func DefaultRegions() []RegionConfig {
	return []RegionConfig{
		{ID: "us-east-1", ProxyAPI: "http://toxiproxy-east:8474", Proxies: []string{"e1a", "e1b"}, Units: []string{"crdb-e1a", "crdb-e1b"}, Color: "#16a34a"},
		{ID: "us-west-2", ProxyAPI: "http://toxiproxy-west:8474", Proxies: []string{"w2a", "w2b"}, Units: []string{"crdb-w2a", "crdb-w2b"}, Color: "#2563eb"},
		{ID: "us-central-1", ProxyAPI: "http://toxiproxy-central:8474", Proxies: []string{"c1"}, Units: []string{"crdb-c1"}, Color: "#f59e0b"},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.token", "")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.allowed_cidrs", []string{})
	v.SetDefault("server.rate_limit.enabled", true)
	v.SetDefault("server.rate_limit.rps", 5.0)
	v.SetDefault("server.rate_limit.burst", 10)
	v.SetDefault("server.shutdown_grace", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("toxiproxy.timeout", 3*time.Second)

	v.SetDefault("docker.call_timeout", 10*time.Second)
	v.SetDefault("docker.stop_timeout", 10)
	v.SetDefault("docker.networks", []string{"crdb-net", "cockroach_default", "roach-net"})
	v.SetDefault("docker.fallback_network", "bridge")

	v.SetDefault("cluster.enabled", true)
	v.SetDefault("cluster.host", "haproxy")
	v.SetDefault("cluster.port", 26257)
	v.SetDefault("cluster.user", "root")
	v.SetDefault("cluster.password", "")
	v.SetDefault("cluster.database", "defaultdb")
	v.SetDefault("cluster.sslmode", "disable")
	v.SetDefault("cluster.write_interval", 10*time.Millisecond)
}

// Init points v at the config file and the environment. An explicit file must
// exist; otherwise the standard locations are searched and a missing file is fine.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName("faultline")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "faultline"))
	}
	v.AddConfigPath("/etc/faultline")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load decodes the configuration held by v and applies the legacy environment overrides.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Regions come from the file only. Without them the demo topology applies.
	if len(cfg.Regions) == 0 {
		cfg.Regions = DefaultRegions()
		applyLegacyRegionEnv(cfg.Regions)
	}
	applyLegacyClusterEnv(&cfg.Cluster)

	for i := range cfg.Regions {
		cfg.Regions[i].Proxies = splitList(cfg.Regions[i].Proxies)
		cfg.Regions[i].Units = splitList(cfg.Regions[i].Units)
	}
	cfg.Server.TrustedProxies = splitList(cfg.Server.TrustedProxies)
	cfg.Server.AllowedCIDRs = splitList(cfg.Server.AllowedCIDRs)
	cfg.Docker.Networks = splitList(cfg.Docker.Networks)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that have no safe fallback.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.RPS <= 0 || c.Server.RateLimit.Burst <= 0) {
		return fmt.Errorf("server.rate_limit.rps and server.rate_limit.burst must be positive")
	}
	if c.Cluster.Enabled && c.Cluster.Host == "" {
		return fmt.Errorf("cluster.host is required when the cluster probe is enabled")
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}

// Registry builds the immutable region registry.
func (c *Config) Registry() (*domain.Registry, error) {
	regions := make([]domain.Region, 0, len(c.Regions))
	for _, r := range c.Regions {
		regions = append(regions, domain.Region{
			ID:       r.ID,
			ProxyAPI: strings.TrimSuffix(r.ProxyAPI, "/"),
			Proxies:  r.Proxies,
			Units:    r.Units,
			Color:    r.Color,
		})
	}
	return domain.NewRegistry(regions)
}

// YAML renders the configuration with the token and password redacted.
func (c *Config) YAML() ([]byte, error) {
	redacted := *c
	if redacted.Server.Token != "" {
		redacted.Server.Token = "<redacted>"
	}
	if redacted.Cluster.Password != "" {
		redacted.Cluster.Password = "<redacted>"
	}
	return yaml.Marshal(redacted)
}

func applyLegacyRegionEnv(regions []RegionConfig) {
	for _, legacy := range legacyRegions {
		for i := range regions {
			if regions[i].ID != legacy.id {
				continue
			}
			if api := os.Getenv(legacy.apiEnv); api != "" {
				regions[i].ProxyAPI = api
			}
			if proxies := os.Getenv(legacy.proxiesEnv); proxies != "" {
				regions[i].Proxies = strings.Split(proxies, ",")
			}
		}
	}
}

func applyLegacyClusterEnv(c *ClusterConfig) {
	if host := os.Getenv("DB_HOST"); host != "" {
		c.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			c.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		c.User = user
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		c.Database = name
	}
}

// splitList accepts both YAML lists and comma separated environment values.
func splitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
