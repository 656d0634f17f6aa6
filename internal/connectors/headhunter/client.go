package headhunter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
)

// Ensure HTTPClient implements the interface.
var _ driven.HTTPClient = (*HTTPClient)(nil)

// HTTPClient performs GET requests against the hh.ru API.
type HTTPClient struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewHTTPClient creates an HTTP client from API settings.
// An empty AccessToken sends unauthenticated requests; a RequestsPerSecond
// of 0 disables pacing.
func NewHTTPClient(s domain.APISettings) *HTTPClient {
	client := &http.Client{}
	if s.AccessToken != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: s.AccessToken},
		)
		client = oauth2.NewClient(context.Background(), ts)
	}
	client.Timeout = s.Timeout
	if client.Timeout <= 0 {
		client.Timeout = domain.DefaultAPITimeout
	}

	return &HTTPClient{
		http:    client,
		limiter: newLimiter(s.RequestsPerSecond),
	}
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// Get sends a GET request to rawURL with params merged into its query.
func (c *HTTPClient) Get(
	ctx context.Context, rawURL string, headers map[string]string, params url.Values,
) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, nil, fmt.Errorf("parse url: %w", err)
	}
	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, nil
}
