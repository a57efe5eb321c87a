package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"vitals/internal/health"
)

// DefaultBaseURL is the production endpoint of the health-data vendor.
const DefaultBaseURL = "https://api.pulseweave.io/v1"

// Client fetches metric samples from the vendor API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates an API client authenticated by the token source.
// An empty baseURL selects DefaultBaseURL.
func NewClient(tokenSource oauth2.TokenSource, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     baseURL,
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		rateLimiter: NewRateLimiter(),
	}
}

// samplesResponse is the wire envelope for a sample query.
type samplesResponse struct {
	Metric  string             `json:"metric"`
	Samples []health.RawSample `json:"samples"`
}

// FetchSamples retrieves the raw samples for one metric type over a
// period. The samples are unvalidated; callers run them through
// health.ValidateSeries.
func (c *Client) FetchSamples(ctx context.Context, metric health.MetricType, period health.Period) ([]health.RawSample, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	params := url.Values{}
	params.Set("metric", string(metric))
	params.Set("start", strconv.FormatInt(period.Start(now).Unix(), 10))
	params.Set("end", strconv.FormatInt(now.Unix(), 10))

	resp, err := c.get(ctx, "/samples", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload samplesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding %s samples: %w", metric, err)
	}

	return payload.Samples, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
