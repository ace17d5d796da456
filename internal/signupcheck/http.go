package signupcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/okian/activities/pkg/logger"
)

// Client talks to the registry API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Result is a decoded API response.
type Result struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHealthCheck, err)
	}
	defer closeBody(resp)

	// The service returns Prometheus metrics; any 200 is healthy.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrHealthCheck, resp.StatusCode)
	}
	return nil
}

// List fetches GET /activities.
func (c *Client) List(ctx context.Context) (map[string]Activity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: list activities: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out map[string]Activity
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return out, nil
}

// Signup posts to /activities/{name}/signup.
func (c *Client) Signup(ctx context.Context, activity, email string) (Result, error) {
	return c.membership(ctx, http.MethodPost, activity, "signup", email)
}

// Unregister deletes via /activities/{name}/unregister.
func (c *Client) Unregister(ctx context.Context, activity, email string) (Result, error) {
	return c.membership(ctx, http.MethodDelete, activity, "unregister", email)
}

func (c *Client) membership(ctx context.Context, method, activity, action, email string) (Result, error) {
	path := "/activities/" + url.PathEscape(activity) + "/" + action + "?email=" + url.QueryEscape(email)

	resp, err := c.do(ctx, method, path)
	if err != nil {
		return Result{}, err
	}
	defer closeBody(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read %s response: %w", action, err)
	}

	res := Result{Status: resp.StatusCode}
	if err := json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("decode %s response: %w", action, err)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
	}
}
