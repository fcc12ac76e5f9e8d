package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mdartmann/oeffimonitor-cli/internal/models"
)

const (
	defaultTimeout = 10 * time.Second

	userAgent = "oeffimonitor-cli"
)

// Client is the API client for the Wiener Linien OGD realtime service
type Client struct {
	httpClient *http.Client
	baseURL    string
	timezone   *time.Location
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation("Europe/Vienna")
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:  BaseURL,
		timezone: tz,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// MonitorRequest contains parameters for a monitor query
type MonitorRequest struct {
	StopIDs     []int  // RBL stop identifiers (at least one required)
	TrafficInfo string // activateTrafficInfo category (default: TrafficInfoLong)
}

// GetMonitors fetches and normalizes the monitors for the requested stops.
// The departure list comes back sorted by countdown; traffic notes are nil
// when the feed omitted or garbled the traffic section.
func (c *Client) GetMonitors(ctx context.Context, req MonitorRequest) ([]models.Departure, []models.TrafficNote, error) {
	body, err := c.GetMonitorsRaw(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	resp, err := models.ParseMonitorResponse(body)
	if err != nil {
		return nil, nil, err
	}

	return resp.Normalize(c.timezone)
}

// GetMonitorsRaw fetches the monitors and returns raw JSON
func (c *Client) GetMonitorsRaw(ctx context.Context, req MonitorRequest) (json.RawMessage, error) {
	if len(req.StopIDs) == 0 {
		return nil, NewValidationError("stopId", "at least one stop id is required")
	}

	trafficInfo := req.TrafficInfo
	if trafficInfo == "" {
		trafficInfo = TrafficInfoLong
	}

	params := url.Values{}
	params.Set("activateTrafficInfo", trafficInfo)
	for _, id := range req.StopIDs {
		params.Add("stopId", fmt.Sprintf("%d", id))
	}

	reqURL := c.baseURL + EndpointMonitor + "?" + params.Encode()

	return c.doRequest(ctx, reqURL)
}

// doRequest performs an HTTP GET request
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
