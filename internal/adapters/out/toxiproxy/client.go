// Package toxiproxy implements the proxy client adapter over the Toxiproxy HTTP API.
package toxiproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/domain"
)

// DefaultTimeout bounds every call to a Toxiproxy endpoint.
const DefaultTimeout = 3 * time.Second

// maxErrorBody caps how much of an error response is kept in error messages.
const maxErrorBody = 512

// Ensure Client implements out.ProxyClient.
var _ out.ProxyClient = (*Client)(nil)

// Client talks to one or more Toxiproxy API endpoints.
type Client struct {
	http    *http.Client
	timeout time.Duration
	log     *log.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// New creates a new Toxiproxy client.
func New(logger *log.Logger, opts ...Option) *Client {
	c := &Client{
		timeout: DefaultTimeout,
		log:     logger.With("adapter", "toxiproxy"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}

	return c
}

type proxyPayload struct {
	Name     string         `json:"name"`
	Listen   string         `json:"listen"`
	Upstream string         `json:"upstream"`
	Enabled  bool           `json:"enabled"`
	Toxics   []toxicPayload `json:"toxics"`
}

type toxicPayload struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Stream     string         `json:"stream"`
	Toxicity   float64        `json:"toxicity"`
	Attributes map[string]int `json:"attributes"`
}

// List returns every proxy on the endpoint keyed by name. Toxiproxy answers with an
// object keyed by name; an array of records is accepted as well.
func (c *Client) List(ctx context.Context, endpoint string) (map[string]domain.Proxy, error) {
	body, status, err := c.do(ctx, http.MethodGet, endpoint, "/proxies", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: list proxies at %s: status %d: %s", domain.ErrUnreachableBackend, endpoint, status, truncate(body))
	}

	proxies, err := decodeProxies(body)
	if err != nil {
		return nil, fmt.Errorf("%w: list proxies at %s: %v", domain.ErrUnreachableBackend, endpoint, err)
	}

	return proxies, nil
}

// SetEnabled enables or disables a proxy.
func (c *Client) SetEnabled(ctx context.Context, endpoint, name string, enabled bool) error {
	body, status, err := c.do(ctx, http.MethodPost, endpoint, "/proxies/"+url.PathEscape(name), map[string]bool{"enabled": enabled})
	if err != nil {
		return err
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: proxy %s at %s", domain.ErrNotFound, name, endpoint)
	case status < 200 || status > 299:
		return fmt.Errorf("%w: set proxy %s enabled=%t: status %d: %s", domain.ErrUnreachableBackend, name, enabled, status, truncate(body))
	}

	c.log.Debug("proxy updated", "endpoint", endpoint, "proxy", name, "enabled", enabled)
	return nil
}

// AddLatency installs the downstream latency toxic, replacing an existing one.
// Failures are logged and swallowed.
func (c *Client) AddLatency(ctx context.Context, endpoint, name string, ms int) {
	toxic := domain.LatencyToxic(ms)
	payload := toPayload(toxic)
	path := "/proxies/" + url.PathEscape(name) + "/toxics"

	body, status, err := c.do(ctx, http.MethodPost, endpoint, path, payload)
	if err == nil && status == http.StatusConflict {
		body, status, err = c.do(ctx, http.MethodPost, endpoint, path+"/"+url.PathEscape(toxic.Name), payload)
	}

	switch {
	case err != nil:
		c.log.Warn("failed to install latency", "endpoint", endpoint, "proxy", name, "latency_ms", ms, "error", err)
	case status < 200 || status > 299:
		c.log.Warn("failed to install latency", "endpoint", endpoint, "proxy", name, "latency_ms", ms, "status", status, "body", truncate(body))
	default:
		c.log.Debug("latency installed", "endpoint", endpoint, "proxy", name, "latency_ms", ms, "jitter_ms", toxic.Attributes["jitter"])
	}
}

// ClearToxics removes every toxic from a proxy. Failures are logged and swallowed.
func (c *Client) ClearToxics(ctx context.Context, endpoint, name string) {
	path := "/proxies/" + url.PathEscape(name) + "/toxics"

	body, status, err := c.do(ctx, http.MethodGet, endpoint, path, nil)
	if err != nil {
		c.log.Warn("failed to list toxics", "endpoint", endpoint, "proxy", name, "error", err)
		return
	}
	if status != http.StatusOK {
		c.log.Debug("no toxics to clear", "endpoint", endpoint, "proxy", name, "status", status)
		return
	}

	var toxics []toxicPayload
	if err := json.Unmarshal(body, &toxics); err != nil {
		c.log.Warn("failed to decode toxics", "endpoint", endpoint, "proxy", name, "error", err)
		return
	}

	for _, toxic := range toxics {
		_, status, err := c.do(ctx, http.MethodDelete, endpoint, path+"/"+url.PathEscape(toxic.Name), nil)
		if err != nil || (status != http.StatusNoContent && status != http.StatusOK && status != http.StatusNotFound) {
			c.log.Warn("failed to delete toxic", "endpoint", endpoint, "proxy", name, "toxic", toxic.Name, "status", status, "error", err)
			continue
		}
		c.log.Debug("toxic removed", "endpoint", endpoint, "proxy", name, "toxic", toxic.Name)
	}
}

// do sends one request and returns the response body and status code.
// Transport errors are wrapped with domain.ErrUnreachableBackend.
func (c *Client) do(ctx context.Context, method, endpoint, path string, payload any) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(endpoint, "/")+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to create request: %v", domain.ErrUnreachableBackend, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "faultline/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %v", domain.ErrUnreachableBackend, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response: %v", domain.ErrUnreachableBackend, err)
	}

	return body, resp.StatusCode, nil
}

// decodeProxies normalizes a keyed object or a flat array of proxy records.
func decodeProxies(body []byte) (map[string]domain.Proxy, error) {
	trimmed := bytes.TrimSpace(body)
	result := make(map[string]domain.Proxy)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []proxyPayload
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode proxy list: %w", err)
		}
		for _, rec := range records {
			if rec.Name == "" {
				continue
			}
			result[rec.Name] = rec.toDomain(rec.Name)
		}
		return result, nil
	}

	var keyed map[string]proxyPayload
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, fmt.Errorf("decode proxy map: %w", err)
	}
	for name, rec := range keyed {
		result[name] = rec.toDomain(name)
	}

	return result, nil
}

func (p proxyPayload) toDomain(name string) domain.Proxy {
	proxy := domain.Proxy{
		Name:     name,
		Listen:   p.Listen,
		Upstream: p.Upstream,
		Enabled:  p.Enabled,
		Toxics:   make([]domain.Toxic, 0, len(p.Toxics)),
	}
	for _, t := range p.Toxics {
		proxy.Toxics = append(proxy.Toxics, domain.Toxic{
			Name:       t.Name,
			Type:       t.Type,
			Stream:     t.Stream,
			Toxicity:   t.Toxicity,
			Attributes: t.Attributes,
		})
	}
	return proxy
}

func toPayload(t domain.Toxic) toxicPayload {
	return toxicPayload{
		Name:       t.Name,
		Type:       t.Type,
		Stream:     t.Stream,
		Toxicity:   t.Toxicity,
		Attributes: t.Attributes,
	}
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
