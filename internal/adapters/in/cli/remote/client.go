// Package remote provides an HTTP client for a running faultline controller.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/faultline/internal/adapters/dto"
)

// DefaultServer is the controller address used when none is configured.
const DefaultServer = "http://localhost:8080"

// APIError is returned for every non-2xx answer of the controller.
// Result is set when a fault operation was applied partially before failing.
type APIError struct {
	StatusCode int
	Message    string
	Result     *dto.OperationResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// IsNotFound reports whether err is a 404 from the controller.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client is an HTTP client for the control surface.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// NewClient creates a new controller client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultServer
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			// Operations walk every handle of a region.
			Timeout: 2 * time.Minute,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// BaseURL returns the controller address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach controller at %s: %w", c.baseURL, err)
	}
	return resp, nil
}

// parseResponse decodes a JSON body into target, or an APIError for 4xx and 5xx.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errResp dto.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.Result = errResp.Result
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	resp, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, target any) error {
	resp, err := c.request(ctx, http.MethodPost, path, query)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// Status returns the verdict of every region.
func (c *Client) Status(ctx context.Context) (map[string]dto.RegionStatusResponse, error) {
	var result map[string]dto.RegionStatusResponse
	if err := c.get(ctx, "/api/status", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RegionStatus returns the verdict of one region. When the proxy endpoint is
// unreachable the partial status is returned with the error.
func (c *Client) RegionStatus(ctx context.Context, region string) (*dto.RegionStatusResponse, error) {
	resp, err := c.request(ctx, http.MethodGet, "/api/status/"+url.PathEscape(region), nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusBadGateway {
		defer resp.Body.Close()
		var result dto.RegionStatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "proxy endpoint unreachable"}
		}
		return &result, &APIError{StatusCode: resp.StatusCode, Message: result.Error}
	}

	var result dto.RegionStatusResponse
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Operate applies a fault action (kill, stop, partition, recover) to a region.
func (c *Client) Operate(ctx context.Context, action, region string) (*dto.OperationResponse, error) {
	return c.operate(ctx, action, region, nil)
}

// Brownout adds latencyMs of latency to every proxy of a region.
func (c *Client) Brownout(ctx context.Context, region string, latencyMs int) (*dto.OperationResponse, error) {
	query := url.Values{"latencyMs": []string{strconv.Itoa(latencyMs)}}
	return c.operate(ctx, "brownout", region, query)
}

func (c *Client) operate(ctx context.Context, action, region string, query url.Values) (*dto.OperationResponse, error) {
	var result dto.OperationResponse
	err := c.post(ctx, "/api/"+url.PathEscape(action)+"/"+url.PathEscape(region), query, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Result != nil {
			return apiErr.Result, err
		}
		return nil, err
	}
	return &result, nil
}

// Regions lists the configured regions.
func (c *Client) Regions(ctx context.Context) ([]dto.RegionResponse, error) {
	var result dto.RegionsResponse
	if err := c.get(ctx, "/api/regions", &result); err != nil {
		return nil, err
	}
	return result.Regions, nil
}

// Operations returns the operation counts per action.
func (c *Client) Operations(ctx context.Context) (*dto.OperationsResponse, error) {
	var result dto.OperationsResponse
	if err := c.get(ctx, "/api/operations", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClusterHealth returns the node, range and replica counts of the cluster.
func (c *Client) ClusterHealth(ctx context.Context) (*dto.ClusterHealthResponse, error) {
	var result dto.ClusterHealthResponse
	if err := c.get(ctx, "/api/cluster-health", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Transactions returns the number of successful simulated writes.
func (c *Client) Transactions(ctx context.Context) (*dto.TransactionsResponse, error) {
	var result dto.TransactionsResponse
	if err := c.get(ctx, "/api/transactions", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SimulateWrites asks the controller to insert count rows.
func (c *Client) SimulateWrites(ctx context.Context, count int) (*dto.WriteReportResponse, error) {
	var result dto.WriteReportResponse
	query := url.Values{"count": []string{strconv.Itoa(count)}}
	if err := c.post(ctx, "/api/simulate-writes", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Healthz checks that the controller answers.
func (c *Client) Healthz(ctx context.Context) (*dto.HealthzResponse, error) {
	var result dto.HealthzResponse
	if err := c.get(ctx, "/healthz", &result); err != nil {
		return nil, err
	}
	return &result, nil
}
