package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/compozy/n8n-go/model"
	"github.com/compozy/n8n-go/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	apiBasePath      = "/api/v1"
	defaultTimeout   = 30 * time.Second
	defaultListLimit = 100
)

// -----------------------------------------------------------------------------
// Config
// -----------------------------------------------------------------------------

// Config holds the connection settings for one n8n instance.
type Config struct {
	// BaseURL is the root address of the instance, without the /api/v1 suffix.
	BaseURL string
	// APIKey is sent as X-N8N-API-KEY on every request when non-empty.
	APIKey string
	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("base URL must be absolute with a host, got: %s", c.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL scheme must be http or https, got: %s", parsed.Scheme)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

// Client provides typed access to the n8n public API. It owns a single HTTP
// transport shared by all sub-clients; sequential reuse is safe, concurrent
// use from multiple goroutines is not guaranteed.
type Client struct {
	http    *resty.Client
	baseURL string

	workflows   *WorkflowsClient
	executions  *ExecutionsClient
	credentials *CredentialsClient
	tags        *TagsClient
	audit       *AuditClient
}

// New builds a client for the instance at cfg.BaseURL and verifies it is
// reachable before returning. A failed probe yields a *ConnectionError and no
// client, so callers never hold a half-usable handle.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/") + apiBasePath
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		httpClient.SetHeader("X-N8N-API-KEY", cfg.APIKey)
	}

	client := &Client{
		http:    httpClient,
		baseURL: baseURL,
	}
	client.workflows = &WorkflowsClient{client: client}
	client.executions = &ExecutionsClient{client: client}
	client.credentials = &CredentialsClient{client: client}
	client.tags = &TagsClient{client: client}
	client.audit = &AuditClient{client: client}

	if err := client.probe(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// probe checks connectivity with a minimal workflow listing, discarding the
// payload. Any failure, transport or HTTP, surfaces as a *ConnectionError.
func (c *Client) probe(ctx context.Context) error {
	log := logger.FromContext(ctx)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Get("/workflows")
	if err != nil {
		return &ConnectionError{URL: c.baseURL, Err: err}
	}
	if !resp.IsSuccess() {
		return &ConnectionError{URL: c.baseURL, Err: newAPIError(resp)}
	}
	log.Debug("connectivity verified", "base_url", c.baseURL)
	return nil
}

// Close releases idle connections held by the transport. It is safe to call
// more than once and the client must not be used afterwards.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// Sub-client accessors

func (c *Client) Workflows() *WorkflowsClient {
	return c.workflows
}

func (c *Client) Executions() *ExecutionsClient {
	return c.executions
}

func (c *Client) Credentials() *CredentialsClient {
	return c.credentials
}

func (c *Client) Tags() *TagsClient {
	return c.tags
}

func (c *Client) Audit() *AuditClient {
	return c.audit
}

// -----------------------------------------------------------------------------
// Request core
// -----------------------------------------------------------------------------

// do is the single entry point for every sub-client call. Transport failures
// become *ConnectionError, non-2xx responses become *APIError, and a 2xx body
// that cannot be decoded into out becomes *model.ValidationError. The body is
// decoded here rather than through resty's SetResult so that decode failures
// stay distinguishable from transport ones.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	log := logger.FromContext(ctx)

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := executeRequest(req, method, path)
	if err != nil {
		log.Error("request failed", "method", method, "path", path, "error", err)
		return &ConnectionError{URL: c.baseURL, Err: err}
	}
	if !resp.IsSuccess() {
		apiErr := newAPIError(resp)
		log.Error("request rejected", "method", method, "path", path, "status", apiErr.Status)
		return apiErr
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			log.Error("response decoding failed", "method", method, "path", path, "error", err)
			return model.NewDecodeError("response", err)
		}
	}

	log.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode())
	return nil
}

func executeRequest(req *resty.Request, method, path string) (*resty.Response, error) {
	switch method {
	case "GET":
		return req.Get(path)
	case "POST":
		return req.Post(path)
	case "PUT":
		return req.Put(path)
	case "DELETE":
		return req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

// -----------------------------------------------------------------------------
// Pagination
// -----------------------------------------------------------------------------

// ListOptions is the common pagination shape. Cursor is the opaque NextCursor
// from a previous page; callers drive pagination by feeding it back until the
// envelope comes back without one.
type ListOptions struct {
	Limit  int
	Cursor string
}

func (o ListOptions) queryParams() map[string]string {
	limit := o.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if o.Cursor != "" {
		query["cursor"] = o.Cursor
	}
	return query
}
