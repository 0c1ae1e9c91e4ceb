package moto

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// API is the device surface the dashboard consumes. *Client implements it;
// tests substitute fakes.
type API interface {
	FetchStatus(ctx context.Context, s Subsystem) (StatusMap, error)
	FetchGPS(ctx context.Context) (GPSFix, error)
	Trigger(ctx context.Context, a Action) (ActionResponse, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the device HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "10.10.10.1:8080"
	defaultUserAgent = "motodash/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given host:port or URL.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchStatus reads a subsystem's status map.
func (c *Client) FetchStatus(ctx context.Context, s Subsystem) (StatusMap, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StatusMap
	if err := c.do(ctx, http.MethodGet, s.Path(), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchGPS reads the motorcycle's position.
func (c *Client) FetchGPS(ctx context.Context) (GPSFix, error) {
	if c == nil {
		return GPSFix{}, fmt.Errorf("client is nil")
	}
	var payload GPSFix
	if err := c.do(ctx, http.MethodGet, GPSPath, &payload); err != nil {
		return GPSFix{}, err
	}
	return payload, nil
}

// Trigger posts an action command.
func (c *Client) Trigger(ctx context.Context, a Action) (ActionResponse, error) {
	if c == nil {
		return ActionResponse{}, fmt.Errorf("client is nil")
	}
	var payload ActionResponse
	if err := c.do(ctx, http.MethodPost, a.Path(), &payload); err != nil {
		return ActionResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w: %w", ErrParse, err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
